package propmap

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ptribble/jumble/internal/filtering"
)

// Keys returns the keys of m in sorted order.
func Keys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Format renders m as one "key = value" line per entry, sorted by key.
func Format(m map[string]string) string {
	var sb strings.Builder
	for _, k := range Keys(m) {
		sb.WriteString(k)
		sb.WriteString(" = ")
		sb.WriteString(m[k])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrintKeys writes "Key: <key>" for every key of m, sorted.
func PrintKeys(w io.Writer, m map[string]string) error {
	for _, k := range Keys(m) {
		if _, err := fmt.Fprintf(w, "Key: %s\n", k); err != nil {
			return err
		}
	}
	return nil
}

// Environ returns the process environment as a property map.
func Environ() map[string]string {
	return FromPairs(os.Environ())
}

// FromPairs builds a map from "key=value" strings, with the same rules as
// Parse applied to each element.
func FromPairs(pairs []string) map[string]string {
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		putPair(m, p)
	}
	return m
}

// Filter returns the entries of m whose keys f includes.
func Filter(m map[string]string, f filtering.Filter) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if f.Includes(k) {
			out[k] = v
		}
	}
	return out
}
