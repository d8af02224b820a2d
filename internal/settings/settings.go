// Package settings holds reader and CLI configuration: the text encoding,
// BOM handling and log verbosity.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ptribble/jumble/internal/logging"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

const (
	// DefaultEncoding is used when nothing else is configured.
	DefaultEncoding = "UTF-8"

	EnvEncoding  = "JUMBLE_ENCODING"
	EnvDetectBOM = "JUMBLE_DETECT_BOM"
	EnvVerbosity = "JUMBLE_VERBOSITY"
)

// ErrUnknownEncoding is returned for encoding names that cannot be resolved
// to a decoder.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// Settings configures readers and the CLI.
type Settings struct {
	// Encoding is an IANA charset name, e.g. "UTF-8" or "ISO-8859-1".
	Encoding string
	// DetectBOM lets a leading byte-order mark override Encoding.
	DetectBOM bool
	Verbosity logging.VerbosityLevel
}

// NewSettings returns the defaults: UTF-8, no BOM detection, Info verbosity.
func NewSettings() *Settings {
	return &Settings{
		Encoding:  DefaultEncoding,
		DetectBOM: false,
		Verbosity: logging.Info,
	}
}

// ApplyEnv overrides fields from JUMBLE_* variables found through lookup.
// Pass os.LookupEnv in production.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvEncoding); ok && strings.TrimSpace(v) != "" {
		s.Encoding = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvDetectBOM); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s value '%s': %w", EnvDetectBOM, v, err)
		}
		s.DetectBOM = b
	}
	if v, ok := lookup(EnvVerbosity); ok && strings.TrimSpace(v) != "" {
		level, err := logging.ParseVerbosity(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvVerbosity, err)
		}
		s.Verbosity = level
	}
	return nil
}

// TextEncoding resolves s.Encoding.
func (s *Settings) TextEncoding() (encoding.Encoding, error) {
	return LookupEncoding(s.Encoding)
}

// LookupEncoding resolves an IANA charset name. An empty name means UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultEncoding
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	// ianaindex knows some names it has no implementation for.
	if enc == nil {
		return nil, fmt.Errorf("%w: %q is not supported", ErrUnknownEncoding, name)
	}
	return enc, nil
}
