// Package filtering implements include/exclude name filters of the form
// "+pattern" and "-pattern", where '*' matches any run of characters and '?'
// matches exactly one. Matching is anchored and case-insensitive.
package filtering

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/ptribble/jumble/internal/utils"
)

// ErrInvalidFilter is wrapped by the errors for malformed filter entries.
var ErrInvalidFilter = errors.New("invalid filter")

// Filter decides whether a name is kept.
type Filter interface {
	Includes(name string) bool
	HasCustomFilters() bool
}

// DefaultFilter is the default implementation of Filter.
type DefaultFilter struct {
	includeFilters []*regexp.Regexp
	excludeFilters []*regexp.Regexp
	hasCustom      bool
}

// NewDefaultFilter creates a new DefaultFilter from "+..." and "-..." entries.
// Empty entries are ignored. The first malformed entry is reported.
func NewDefaultFilter(filters []string) (*DefaultFilter, error) {
	df := &DefaultFilter{}
	for _, f := range filters {
		if err := df.add(strings.TrimSpace(f)); err != nil {
			return nil, err
		}
	}

	df.hasCustom = len(df.includeFilters) > 0 || len(df.excludeFilters) > 0

	// If no include filters are specified, default to including everything.
	if len(df.includeFilters) == 0 {
		df.includeFilters = append(df.includeFilters, regexp.MustCompile("(?i)^.*$"))
	}

	return df, nil
}

func (df *DefaultFilter) add(entry string) error {
	if entry == "" {
		return nil
	}
	var list *[]*regexp.Regexp
	switch entry[0] {
	case '+':
		list = &df.includeFilters
	case '-':
		list = &df.excludeFilters
	default:
		return errors.Wrapf(ErrInvalidFilter, "%q must start with '+' or '-'", entry)
	}
	re, err := createFilterRegex(entry[1:])
	if err != nil {
		return errors.Wrapf(err, "%q", entry)
	}
	*list = append(*list, re)
	return nil
}

// ParseFilterList builds a filter from a ';'-separated list such as
// "+db.*;-db.password".
func ParseFilterList(list string) (*DefaultFilter, error) {
	return NewDefaultFilter(utils.SplitAny(list, ";"))
}

// Includes reports whether name passes the filter. Excludes win over includes.
func (df *DefaultFilter) Includes(name string) bool {
	for _, excludeRe := range df.excludeFilters {
		if excludeRe.MatchString(name) {
			return false
		}
	}

	for _, includeRe := range df.includeFilters {
		if includeRe.MatchString(name) {
			return true
		}
	}
	return false
}

// HasCustomFilters returns true if any include or exclude filters were specified.
func (df *DefaultFilter) HasCustomFilters() bool {
	return df.hasCustom
}

// createFilterRegex converts a wildcard pattern such as "db.*" to a regex.
func createFilterRegex(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, errors.Wrap(ErrInvalidFilter, "empty pattern")
	}
	expr := regexp.QuoteMeta(pattern)

	// QuoteMeta escapes the wildcards too, so undo that for '*' and '?'.
	expr = strings.ReplaceAll(expr, `\*`, ".*")
	expr = strings.ReplaceAll(expr, `\?`, ".")

	return regexp.Compile("(?i)^" + expr + "$")
}
