package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ptribble/jumble/internal/filereader"
	"github.com/ptribble/jumble/internal/filesystem"
	"github.com/ptribble/jumble/internal/logging"
	"github.com/ptribble/jumble/internal/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AppBuilder collects what the commands need before any of them runs.
type AppBuilder struct {
	fs        filesystem.Filesystem
	lookupEnv func(string) (string, bool)

	logger *slog.Logger
	reader *filereader.Reader
}

// NewAppBuilder returns a builder for the host filesystem and environment.
func NewAppBuilder() *AppBuilder {
	return &AppBuilder{
		fs:        filesystem.DefaultFS{},
		lookupEnv: os.LookupEnv,
	}
}

// WithFilesystem makes every command read and write through fsys.
func (b *AppBuilder) WithFilesystem(fsys filesystem.Filesystem) *AppBuilder {
	b.fs = fsys
	return b
}

// WithLookupEnv replaces os.LookupEnv as the source of JUMBLE_* settings.
func (b *AppBuilder) WithLookupEnv(lookup func(string) (string, bool)) *AppBuilder {
	b.lookupEnv = lookup
	return b
}

// Build resolves settings from the environment and then from any flags the
// user set explicitly, and creates the logger and reader.
func (b *AppBuilder) Build(cmd *cobra.Command) error {
	s := settings.NewSettings()
	if err := s.ApplyEnv(b.lookupEnv); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("encoding") {
		s.Encoding, _ = flags.GetString("encoding")
	}
	if flags.Changed("detect-bom") {
		s.DetectBOM, _ = flags.GetBool("detect-bom")
	}
	if flags.Changed("verbosity") {
		v, _ := flags.GetString("verbosity")
		level, err := logging.ParseVerbosity(v)
		if err != nil {
			return err
		}
		s.Verbosity = level
	}

	b.logger = logging.NewLogger(cmd.ErrOrStderr(), s.Verbosity)
	reader, err := filereader.NewFromSettings(s,
		filereader.WithFilesystem(b.fs),
		filereader.WithLogger(b.logger),
	)
	if err != nil {
		return fmt.Errorf("invalid encoding: %w", err)
	}
	b.reader = reader
	return nil
}

// RootCmd creates the jumble command tree. Settings are resolved by
// appBuilder before any subcommand runs.
func RootCmd(appBuilder *AppBuilder) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jumble",
		Short: "Read files as bytes, text or lines and parse key=value properties",
		Long: `jumble reads whole files as bytes, decoded text or lines, parses
delimited key=value text into property maps, and sanitizes filenames.

Defaults come from JUMBLE_ENCODING, JUMBLE_DETECT_BOM and JUMBLE_VERBOSITY
(a .env file in the working directory is loaded first); flags win.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return appBuilder.Build(cmd)
		},
	}
	rootFlags := pflag.NewFlagSet("root", pflag.ContinueOnError)
	rootFlags.String("encoding", settings.DefaultEncoding, "IANA name of the text encoding used to decode and encode files")
	rootFlags.Bool("detect-bom", false, "Let a leading byte-order mark override --encoding")
	rootFlags.String("verbosity", logging.Info.String(), "Logging verbosity level (Verbose, Info, Warning, Error, Off)")
	rootCmd.PersistentFlags().AddFlagSet(rootFlags)

	rootCmd.AddCommand(bytesCmd(appBuilder))
	rootCmd.AddCommand(catCmd(appBuilder))
	rootCmd.AddCommand(linesCmd(appBuilder))
	rootCmd.AddCommand(propsCmd(appBuilder))
	rootCmd.AddCommand(envCmd(appBuilder))
	rootCmd.AddCommand(sanitizeCmd())
	rootCmd.AddCommand(putCmd(appBuilder))

	return rootCmd
}
