package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ptribble/jumble/internal/filtering"
	"github.com/ptribble/jumble/internal/propmap"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// supportedFormats defines the available property output formats
var supportedFormats = map[string]bool{
	"text": true,
	"yaml": true,
	"json": true,
}

func propsCmd(appBuilder *AppBuilder) *cobra.Command {
	var delim, format, keys string
	propsCmd := &cobra.Command{
		Use:   "props <file>",
		Short: "Parse a file of key=value entries and print the resulting map",
		Long: `Parse a file of key=value entries and print the resulting map.

The file is split at every character of --delim (escapes such as \n, \t
and \r are understood). Each piece is split at its first '=' into key and
value; pieces without '=' are skipped and later keys win. An unreadable
file prints an empty map.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			separators, err := unescapeDelim(delim)
			if err != nil {
				return err
			}
			filter, err := filtering.ParseFilterList(keys)
			if err != nil {
				return err
			}
			m := propmap.Parse(readText(appBuilder, args[0]), separators)
			return writeProps(cmd.OutOrStdout(), propmap.Filter(m, filter), format)
		},
	}
	propsCmd.Flags().StringVar(&delim, "delim", `\n`, "Characters that separate entries")
	propsCmd.Flags().StringVar(&format, "format", "text", "Output format (text, yaml, json)")
	propsCmd.Flags().StringVar(&keys, "keys", "", `Key filters, ';'-separated (e.g. "+db.*;-db.password")`)
	return propsCmd
}

func envCmd(appBuilder *AppBuilder) *cobra.Command {
	var format, keys string
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Print the process environment as properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filtering.ParseFilterList(keys)
			if err != nil {
				return err
			}
			m := propmap.Filter(propmap.Environ(), filter)
			appBuilder.logger.Debug("Listing environment.", "entries", len(m))
			return writeProps(cmd.OutOrStdout(), m, format)
		},
	}
	envCmd.Flags().StringVar(&format, "format", "text", "Output format (text, yaml, json)")
	envCmd.Flags().StringVar(&keys, "keys", "", "Key filters, ';'-separated")
	return envCmd
}

func sanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize <name>...",
		Short: `Replace : / space > < ; and \ in each name with _`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), propmap.SanitizeFilename(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func writeProps(w io.Writer, m map[string]string, format string) error {
	if !supportedFormats[format] {
		return fmt.Errorf("unsupported format: %s", format)
	}
	switch format {
	case "yaml":
		out, err := yaml.Marshal(m)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "json":
		out, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	}
	_, err := io.WriteString(w, propmap.Format(m))
	return err
}

// unescapeDelim interprets Go escapes such as \n and \t in a --delim value.
func unescapeDelim(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	out, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid --delim %q: %w", s, err)
	}
	return out, nil
}
