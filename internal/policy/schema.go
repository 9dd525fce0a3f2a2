// Copyright (c) 2026 The MFKDF Authors
//
//

package policy

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	mfkdfApperr "mfkdf/internal/apperr"
)

// SchemaURI identifies the policy schema version this package implements
// (spec section 6).
const SchemaURI = "https://mfkdf.com/schema/v1.0.0/policy.json"

// schemaDocument is the JSON Schema for a v1.0.0 policy document. kdf is
// validated loosely (any object whose "type" is one of the six algorithm
// tags) since its shape is an algorithm-tagged union the KDF engine itself
// validates after parse. The schema enforces required fields, value types
// and the absence of unknown top-level/per-factor fields. It does not check
// that factor ids are unique (Parse does that) or that pad and salt are
// valid base64 (Derive rejects undecodable values with ErrInvalidPolicy).
const schemaDocument = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$id": "https://mfkdf.com/schema/v1.0.0/policy.json",
	"type": "object",
	"additionalProperties": false,
	"required": ["$schema", "$id", "size", "threshold", "salt", "kdf", "factors"],
	"properties": {
		"$schema": { "type": "string", "minLength": 1 },
		"$id": { "type": "string", "minLength": 1 },
		"size": { "type": "integer", "minimum": 1 },
		"threshold": { "type": "integer", "minimum": 1 },
		"salt": { "type": "string", "minLength": 1 },
		"kdf": {
			"type": "object",
			"required": ["type"],
			"properties": {
				"type": { "type": "string", "enum": ["pbkdf2", "bcrypt", "scrypt", "argon2i", "argon2d", "argon2id"] }
			}
		},
		"factors": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"additionalProperties": false,
				"required": ["id", "type", "pad", "params"],
				"properties": {
					"id": { "type": "string", "minLength": 1 },
					"type": { "type": "string", "minLength": 1 },
					"pad": { "type": "string" },
					"params": {}
				}
			}
		}
	}
}`

var (
	compileOnce   sync.Once
	compiledSchem *jsonschema.Schema
	compileErr    error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaDocument))
		if err != nil {
			compileErr = fmt.Errorf("policy: decoding schema document: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()

		if err := compiler.AddResource(SchemaURI, doc); err != nil {
			compileErr = fmt.Errorf("policy: adding schema resource: %w", err)
			return
		}

		sch, err := compiler.Compile(SchemaURI)
		if err != nil {
			compileErr = fmt.Errorf("policy: compiling schema: %w", err)
			return
		}

		compiledSchem = sch
	})

	return compiledSchem, compileErr
}

// ValidateBytes checks raw against the v1.0.0 policy schema.
func ValidateBytes(raw []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}

	instance, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return fmt.Errorf("policy: %v: %w", err, mfkdfApperr.ErrInvalidPolicy)
	}

	if err := sch.Validate(instance); err != nil {
		return fmt.Errorf("policy: schema validation: %v: %w", err, mfkdfApperr.ErrInvalidPolicy)
	}

	return nil
}
