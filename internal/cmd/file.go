package cmd

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func bytesCmd(appBuilder *AppBuilder) *cobra.Command {
	var dump bool
	bytesCmd := &cobra.Command{
		Use:   "bytes <file>",
		Short: "Print the size of a file, or a hex dump of its contents",
		Long: `Print the size of a file, or a hex dump of its contents.

Unlike the other commands, bytes exits non-zero when the file cannot be
read, so "no data" can be told apart from an empty file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := appBuilder.reader.Bytes(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if dump {
				_, err = io.WriteString(out, hex.Dump(data))
				return err
			}
			_, err = fmt.Fprintf(out, "%d bytes\n", len(data))
			return err
		},
	}
	bytesCmd.Flags().BoolVar(&dump, "hex", false, "Print a hex dump instead of the size")
	return bytesCmd
}

func catCmd(appBuilder *AppBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <file>",
		Short: "Print a file decoded as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), readText(appBuilder, args[0]))
			return err
		},
	}
}

func linesCmd(appBuilder *AppBuilder) *cobra.Command {
	var number bool
	linesCmd := &cobra.Command{
		Use:   "lines <file>",
		Short: "Print a file line by line (CR, LF and CRLF all end a line)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := appBuilder.reader.Lines(args[0])
			if err != nil {
				appBuilder.logger.Warn("Could not read file, printing no lines.", "file", args[0], "error", err)
			}
			out := cmd.OutOrStdout()
			for i, line := range lines {
				if number {
					_, err = fmt.Fprintf(out, "%6d  %s\n", i+1, line)
				} else {
					_, err = fmt.Fprintln(out, line)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	linesCmd.Flags().BoolVarP(&number, "number", "n", false, "Number the output lines")
	return linesCmd
}

func putCmd(appBuilder *AppBuilder) *cobra.Command {
	var asText bool
	putCmd := &cobra.Command{
		Use:   "put <file>",
		Short: "Write standard input to a file, replacing its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read standard input: %w", err)
			}
			if asText {
				err = appBuilder.reader.PutText(args[0], string(data))
			} else {
				err = appBuilder.reader.Put(args[0], data)
			}
			if err != nil {
				return err
			}
			appBuilder.logger.Info("File written.", "file", args[0], "bytes", len(data))
			return nil
		},
	}
	putCmd.Flags().BoolVar(&asText, "text", false, "Treat input as UTF-8 text and re-encode it with --encoding")
	return putCmd
}

// readText reads path as text, logging a warning when it falls back to "".
func readText(appBuilder *AppBuilder, path string) string {
	text, err := appBuilder.reader.Text(path)
	if err != nil {
		appBuilder.logger.Warn("Could not read file, using empty text.", "file", path, "error", err)
		return ""
	}
	return text
}
