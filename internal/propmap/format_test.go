package propmap

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ptribble/jumble/internal/filtering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	m := map[string]string{"b": "2", "a": "1", "c": "x = y"}
	assert.Equal(t, "a = 1\nb = 2\nc = x = y\n", Format(m))
	assert.Equal(t, "", Format(map[string]string{}))
}

func TestFormat_ParsesBackWithSpaces(t *testing.T) {
	m := map[string]string{"k": "v"}
	// "k = v" splits at the first '=' into "k " and " v".
	assert.Equal(t, map[string]string{"k ": " v"}, ParseLines(Format(m)))
}

func TestPrintKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintKeys(&buf, map[string]string{"z": "1", "a": "2"}))
	assert.Equal(t, "Key: a\nKey: z\n", buf.String())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestPrintKeys_WriteError(t *testing.T) {
	err := PrintKeys(failingWriter{}, map[string]string{"a": "1"})
	assert.ErrorIs(t, err, errWrite)
}

func TestFromPairs(t *testing.T) {
	got := FromPairs([]string{"PATH=/bin:/usr/bin", "EMPTY=", "NOEQ", "", "OPTS=a=b", "PATH=/sbin"})
	assert.Equal(t, map[string]string{"PATH": "/sbin", "EMPTY": "", "OPTS": "a=b"}, got)
}

func TestFromPairs_MatchesParse(t *testing.T) {
	pairs := []string{"a=1", "=", "b==2", "c", "a=3", " d = 4 "}
	assert.Equal(t, Parse(strings.Join(pairs, "\n"), "\n"), FromPairs(pairs))
}

func TestEnviron(t *testing.T) {
	t.Setenv("JUMBLE_TEST_VALUE", "x=1\ny")
	env := Environ()
	assert.Equal(t, "x=1\ny", env["JUMBLE_TEST_VALUE"])
}

func TestFilter(t *testing.T) {
	f, err := filtering.ParseFilterList("+db.*;-db.password")
	require.NoError(t, err)

	m := map[string]string{"db.host": "h", "db.password": "p", "cache.size": "10"}
	assert.Equal(t, map[string]string{"db.host": "h"}, Filter(m, f))
	assert.Len(t, m, 3, "input map is not modified")
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Keys(map[string]string{"c": "", "a": "", "b": ""}))
	assert.Empty(t, Keys(nil))
}
