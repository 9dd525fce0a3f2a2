package factors_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mfkdf"
	"mfkdf/factors"
)

func TestPasswordSetupDerive(t *testing.T) {
	t.Parallel()

	setupFactor := factors.SetupPassword("pw", "correct horse battery staple")

	dk, err := mfkdf.Setup(context.Background(), []mfkdf.SetupFactor{setupFactor}, mfkdf.Options{Size: 16})
	require.NoError(t, err)

	derived, err := mfkdf.Derive(context.Background(), dk.Policy, map[string]mfkdf.DeriveProducer{
		"pw": factors.DerivePassword("correct horse battery staple"),
	}, mfkdf.DeriveOptions{})
	require.NoError(t, err)
	require.Equal(t, dk.Key, derived.Key)
}

func TestPasswordWrongPasswordGivesWrongKey(t *testing.T) {
	t.Parallel()

	setupFactor := factors.SetupPassword("pw", "right")

	dk, err := mfkdf.Setup(context.Background(), []mfkdf.SetupFactor{setupFactor}, mfkdf.Options{Size: 16})
	require.NoError(t, err)

	derived, err := mfkdf.Derive(context.Background(), dk.Policy, map[string]mfkdf.DeriveProducer{
		"pw": factors.DerivePassword("wrong"),
	}, mfkdf.DeriveOptions{})
	require.NoError(t, err)
	require.NotEqual(t, dk.Key, derived.Key)
}

func TestUUIDSetupDerive(t *testing.T) {
	t.Parallel()

	u := uuid.New()
	setupFactor := factors.SetupUUID("recovery", u)

	dk, err := mfkdf.Setup(context.Background(), []mfkdf.SetupFactor{setupFactor}, mfkdf.Options{Size: 16})
	require.NoError(t, err)
	require.Equal(t, u.String(), dk.Outputs["recovery"].(map[string]any)["uuid"])

	derived, err := mfkdf.Derive(context.Background(), dk.Policy, map[string]mfkdf.DeriveProducer{
		"recovery": factors.DeriveUUID(u),
	}, mfkdf.DeriveOptions{})
	require.NoError(t, err)
	require.Equal(t, dk.Key, derived.Key)
}

func TestUUIDParseRoundTrip(t *testing.T) {
	t.Parallel()

	u := uuid.New()
	parsed, err := factors.ParseUUID(u.String())
	require.NoError(t, err)
	require.Equal(t, u, parsed)

	_, err = factors.ParseUUID("not-a-uuid")
	require.Error(t, err)
}

func TestHOTPRotatesCounter(t *testing.T) {
	t.Parallel()

	secret := []byte("hello world")
	setupFactor, err := factors.SetupHOTP("hotp", secret)
	require.NoError(t, err)

	dk, err := mfkdf.Setup(context.Background(), []mfkdf.SetupFactor{setupFactor}, mfkdf.Options{Size: 16})
	require.NoError(t, err)
	require.Contains(t, dk.Outputs["hotp"].(map[string]any), "code")

	first, err := mfkdf.Derive(context.Background(), dk.Policy, map[string]mfkdf.DeriveProducer{
		"hotp": factors.DeriveHOTP(secret),
	}, mfkdf.DeriveOptions{})
	require.NoError(t, err)
	require.Equal(t, dk.Key, first.Key)
	require.JSONEq(t, `{"counter":1}`, string(first.Policy.Factors[0].Params))

	second, err := mfkdf.Derive(context.Background(), first.Policy, map[string]mfkdf.DeriveProducer{
		"hotp": factors.DeriveHOTP(secret),
	}, mfkdf.DeriveOptions{})
	require.NoError(t, err)
	require.Equal(t, dk.Key, second.Key)
	require.JSONEq(t, `{"counter":2}`, string(second.Policy.Factors[0].Params))
}

func TestCodeIsDeterministic(t *testing.T) {
	t.Parallel()

	secret := []byte("a shared secret")

	a, err := factors.Code(secret, 5)
	require.NoError(t, err)
	b, err := factors.Code(secret, 5)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := factors.Code(secret, 6)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestRecoverySetupDerive(t *testing.T) {
	t.Parallel()

	pw := factors.SetupPassword("pw", "password123")
	rec := factors.SetupRecovery("recovery", []byte("some high entropy recovery seed"))

	dk, err := mfkdf.Setup(context.Background(), []mfkdf.SetupFactor{pw, rec}, mfkdf.Options{Size: 16, Threshold: 1})
	require.NoError(t, err)

	recoveryIndex := dk.Policy.FindFactor("recovery")
	require.GreaterOrEqual(t, recoveryIndex, 0)
	share := dk.Shares[recoveryIndex]

	derived, err := mfkdf.Derive(context.Background(), dk.Policy, map[string]mfkdf.DeriveProducer{
		"recovery": factors.DeriveRecovery(share),
	}, mfkdf.DeriveOptions{})
	require.NoError(t, err)
	require.Equal(t, dk.Key, derived.Key)
}
