package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/provide-io/savecodec/pkg"
	"github.com/provide-io/savecodec/pkg/logging"
	"github.com/provide-io/savecodec/pkg/utils/permissions"
)

const version = "0.1.0"

type cliConfig struct {
	inPath   string
	outPath  string
	logLevel string
	logJSON  bool
	mode     string
	version  bool
	stdout   io.Writer
	stderr   io.Writer
}

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func newRootCmd(cfg *cliConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "savecodec",
		Short:         "A converter between Slay the Spire save files and plain JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.version {
				printVersion(cfg.stdout)
				return nil
			}
			return fmt.Errorf("a subcommand is required: %s or %s", pkg.ToJSONDirection, pkg.FromJSONDirection)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.inPath, "in-path", "i", "", "Input file path (required)")
	flags.StringVarP(&cfg.outPath, "out-path", "o", "", "Output file path (required)")
	flags.StringVar(&cfg.logLevel, "log-level", logging.DefaultLevel, "Log level (trace, debug, info, warn, error)")
	flags.BoolVar(&cfg.logJSON, "log-json", false, "Write log lines as JSON")
	flags.StringVar(&cfg.mode, "mode", permissions.FormatOctal(permissions.DefaultFilePerms), "Permissions of the written file (octal)")
	flags.BoolVarP(&cfg.version, "version", "V", false, "Show version information")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   string(pkg.ToJSONDirection),
			Short: "Convert the Slay the Spire save to JSON",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return convert(cfg, pkg.ToJSONDirection)
			},
		},
		&cobra.Command{
			Use:   string(pkg.FromJSONDirection),
			Short: "Convert the JSON to a Slay the Spire save",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return convert(cfg, pkg.FromJSONDirection)
			},
		},
	)

	return rootCmd
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "savecodec %s\n", version)
	fmt.Fprintf(w, "Built: %s\n", getBuildTimestamp())
}

// checkRequired reports unset path flags once --version has been handled
func checkRequired(cfg *cliConfig) error {
	var missing []string
	if cfg.inPath == "" {
		missing = append(missing, `"in-path"`)
	}
	if cfg.outPath == "" {
		missing = append(missing, `"out-path"`)
	}
	if len(missing) > 0 {
		return fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
	}
	return nil
}

func convert(cfg *cliConfig, direction pkg.Direction) error {
	if cfg.version {
		printVersion(cfg.stdout)
		return nil
	}
	if err := checkRequired(cfg); err != nil {
		return err
	}
	if !logging.ValidLevel(cfg.logLevel) {
		return fmt.Errorf("invalid log level %q", cfg.logLevel)
	}

	mode, err := permissions.ParseOctalString(cfg.mode)
	if err != nil {
		return err
	}

	logger := logging.NewLogger("savecodec", logging.Options{
		Level:      cfg.logLevel,
		JSONFormat: cfg.logJSON,
		Output:     cfg.stderr,
	})
	logger.Debug("🚀 Starting conversion",
		"direction", direction,
		"in_path", cfg.inPath,
		"out_path", cfg.outPath,
		"mode", permissions.FormatOctal(mode))

	return pkg.Convert(direction, pkg.Options{
		InPath:  cfg.inPath,
		OutPath: cfg.outPath,
		Mode:    mode,
		Logger:  logger,
	})
}

// run executes the CLI and returns the process exit code
func run(args []string, stdout, stderr io.Writer, colorize bool) int {
	rootCmd := newRootCmd(&cliConfig{stdout: stdout, stderr: stderr})
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		red := color.New(color.FgRed, color.Bold)
		if colorize {
			red.EnableColor()
		} else {
			red.DisableColor()
		}
		red.Fprintf(stderr, "❌ %v\n", err)
		return 1
	}
	return 0
}

func main() {
	fd := os.Stderr.Fd()
	colorize := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, colorize))
}
