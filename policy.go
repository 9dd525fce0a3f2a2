// Copyright (c) 2026 The MFKDF Authors
//
//

package mfkdf

import mfkdfPolicy "mfkdf/internal/policy"

// ParsePolicy schema-validates and decodes raw into a Policy (spec section
// 4.8). Returned policies can be passed directly to Derive.
func ParsePolicy(raw []byte) (*Policy, error) {
	return mfkdfPolicy.Parse(raw)
}
