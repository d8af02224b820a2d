package utils

import (
	"strings"
	"unicode/utf8"
)

// SplitAny splits s at every rune found in separators and drops empty parts,
// the way a classic string tokenizer does. An empty separator set yields s
// as a single token.
func SplitAny(s string, separators string) []string {
	if s == "" {
		return nil
	}
	if separators == "" {
		return []string{s}
	}

	var parts []string
	start := -1
	for i, char := range s {
		if strings.ContainsRune(separators, char) {
			if start >= 0 {
				parts = append(parts, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 { // Add the last part
		parts = append(parts, s[start:])
	}
	return parts
}

// ReplaceChars replaces each rune of s that appears in set with repl.
// Bytes that are not valid UTF-8 are copied through untouched, so only the
// matched runes change.
func ReplaceChars(s string, set string, repl rune) string {
	if !strings.ContainsAny(s, set) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			sb.WriteByte(s[i])
		case strings.ContainsRune(set, r):
			sb.WriteRune(repl)
		default:
			sb.WriteString(s[i : i+size])
		}
		i += size
	}
	return sb.String()
}
