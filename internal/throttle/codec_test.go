package throttle_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rom943/ecommerce-template/internal/throttle"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := throttle.NewCodec("a-cookie-secret")

	original := throttle.Record{
		Attempts:     2,
		TimeoutLevel: 4,
		TimeoutUntil: time.Now().Add(2 * time.Hour).UnixMilli(),
	}

	value, err := codec.Encrypt(original)
	require.NoError(t, err)
	require.Contains(t, value, ":")

	decoded, ok := codec.Decrypt(value)
	require.True(t, ok)
	require.Equal(t, original, decoded)
}

func TestCodecShortSecretIsPadded(t *testing.T) {
	// Secrets shorter than the key size still produce a working codec.
	codec := throttle.NewCodec("short")

	value, err := codec.Encrypt(throttle.Record{Attempts: 1})
	require.NoError(t, err)

	decoded, ok := codec.Decrypt(value)
	require.True(t, ok)
	require.Equal(t, 1, decoded.Attempts)
}

func TestCodecDecryptFailsOpen(t *testing.T) {
	codec := throttle.NewCodec("a-cookie-secret")

	value, err := codec.Encrypt(throttle.Record{Attempts: 2, TimeoutLevel: 3})
	require.NoError(t, err)

	cases := map[string]string{
		"no separator":       strings.ReplaceAll(value, ":", ""),
		"bad hex iv":         "zz" + value[2:],
		"truncated cipher":   value[:len(value)-4],
		"flipped cipher bit": flipLastHexDigit(value),
		"empty value":        "",
		"garbage":            "not-a-cookie",
	}

	for name, corrupted := range cases {
		rec, ok := codec.Decrypt(corrupted)
		require.False(t, ok, "case %q should fail open", name)
		require.Equal(t, throttle.Record{}, rec, "case %q must yield the clear record", name)
	}
}

func TestCodecRejectsWrongKey(t *testing.T) {
	value, err := throttle.NewCodec("secret-one").Encrypt(throttle.Record{TimeoutLevel: 5})
	require.NoError(t, err)

	rec, ok := throttle.NewCodec("secret-two").Decrypt(value)
	require.False(t, ok)
	require.Equal(t, throttle.Record{}, rec)
}

func TestCodecRejectsOutOfRangeRecord(t *testing.T) {
	codec := throttle.NewCodec("a-cookie-secret")

	// A record outside the machine's valid state space is treated as
	// corruption even when it decrypts cleanly.
	value, err := codec.Encrypt(throttle.Record{TimeoutLevel: throttle.MaxLevel + 3})
	require.NoError(t, err)

	rec, ok := codec.Decrypt(value)
	require.False(t, ok)
	require.Equal(t, throttle.Record{}, rec)
}

func flipLastHexDigit(value string) string {
	last := value[len(value)-1]
	replacement := byte('0')
	if last == '0' {
		replacement = '1'
	}
	return value[:len(value)-1] + string(replacement)
}
