// Package propmap turns delimited "key=value" text into a map and provides
// a few helpers around such maps.
package propmap

import (
	"strings"

	"github.com/ptribble/jumble/internal/filereader"
	"github.com/ptribble/jumble/internal/utils"
)

// DefaultDelimiter separates entries in ParseLines and ParseFile.
const DefaultDelimiter = "\n"

// unsafeFilenameChars are replaced by SanitizeFilename.
const unsafeFilenameChars = ":/ ><;\\"

// Parse splits text at every character in delim and turns each token into a
// map entry. The key is everything before the token's first '=', the value is
// everything after it. Tokens without '=' are dropped and later keys
// overwrite earlier ones. The result is never nil.
func Parse(text, delim string) map[string]string {
	m := make(map[string]string)
	for _, token := range utils.SplitAny(text, delim) {
		putPair(m, token)
	}
	return m
}

// putPair stores token in m split at its first '='. Tokens without '=' are
// ignored.
func putPair(m map[string]string, token string) {
	if key, value, found := strings.Cut(token, "="); found {
		m[key] = value
	}
}

// ParseLines parses newline-separated "key=value" text.
func ParseLines(text string) map[string]string {
	return Parse(text, DefaultDelimiter)
}

// ParseFile parses a newline-separated file. A file that cannot be read
// yields an empty map.
func ParseFile(path string) map[string]string {
	return ParseFileWith(filereader.Default(), path)
}

// ParseFileWith is ParseFile reading through r.
func ParseFileWith(r *filereader.Reader, path string) map[string]string {
	return ParseLines(r.ReadText(path))
}

// SanitizeFilename replaces each of the characters : / space > < ; \ with an
// underscore. Every other byte is kept, so the result has the same length
// as the input, even when s is not valid UTF-8.
func SanitizeFilename(s string) string {
	return utils.ReplaceChars(s, unsafeFilenameChars, '_')
}
