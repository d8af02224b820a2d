package settings

import (
	"testing"

	"github.com/ptribble/jumble/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestNewSettings_Defaults(t *testing.T) {
	s := NewSettings()
	assert.Equal(t, "UTF-8", s.Encoding)
	assert.False(t, s.DetectBOM)
	assert.Equal(t, logging.Info, s.Verbosity)
}

func TestApplyEnv(t *testing.T) {
	s := NewSettings()
	err := s.ApplyEnv(lookupFrom(map[string]string{
		EnvEncoding:  " ISO-8859-1 ",
		EnvDetectBOM: "true",
		EnvVerbosity: "warning",
	}))
	require.NoError(t, err)
	assert.Equal(t, "ISO-8859-1", s.Encoding)
	assert.True(t, s.DetectBOM)
	assert.Equal(t, logging.Warning, s.Verbosity)
}

func TestApplyEnv_BlankValuesKeepDefaults(t *testing.T) {
	s := NewSettings()
	require.NoError(t, s.ApplyEnv(lookupFrom(map[string]string{EnvEncoding: "  "})))
	assert.Equal(t, DefaultEncoding, s.Encoding)
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	assert.Error(t, NewSettings().ApplyEnv(lookupFrom(map[string]string{EnvDetectBOM: "maybe"})))
	assert.Error(t, NewSettings().ApplyEnv(lookupFrom(map[string]string{EnvVerbosity: "shouty"})))
}

func decode(t *testing.T, name string, raw string) string {
	t.Helper()
	enc, err := LookupEncoding(name)
	require.NoError(t, err)
	out, err := enc.NewDecoder().String(raw)
	require.NoError(t, err)
	return out
}

func TestLookupEncoding(t *testing.T) {
	assert.Equal(t, "café", decode(t, "", "caf\xc3\xa9"), "empty name means UTF-8")
	assert.Equal(t, "café", decode(t, "utf-8", "caf\xc3\xa9"))
	assert.Equal(t, "café", decode(t, "ISO-8859-1", "caf\xe9"))
	assert.Equal(t, "café", decode(t, "latin1", "caf\xe9"))

	_, err := LookupEncoding("no-such-charset")
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestTextEncoding(t *testing.T) {
	s := NewSettings()
	s.Encoding = "bogus"
	_, err := s.TextEncoding()
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}
