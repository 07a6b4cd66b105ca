// Package commands implements the CLI commands for confkit.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/confkit"
	"github.com/thoreinstein/confkit/internal/config"
	cerrors "github.com/thoreinstein/confkit/internal/errors"
	"github.com/thoreinstein/confkit/internal/logging"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// noColor holds the value of the --no-color flag.
var noColor bool

// cliConfig holds the loaded CLI settings.
var cliConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colored output")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("confkit version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	cliConfig, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "confkit",
	Short: "Read, convert, and inspect configuration files in any format",
	Long: `confkit works with configuration files without caring about their
encoding. It reads and writes JSON, YAML, TOML, and XML, picking the
format from an explicit flag or the file extension, and reports every
failure with structured diagnostic context.

Paths may contain a leading ~ and $VAR/${VAR} environment references;
unresolved variables are left literal.`,
	Example: `  # Convert a YAML config to TOML
  confkit convert app.yaml app.toml

  # Print a single value by dotted key
  confkit get app.yaml server.port

  # Validate a batch of files
  confkit check deploy/*.json`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if configLoadErr != nil && cmd.Name() != "help" {
			return cerrors.NewUserError(configLoadErr, "check your confkit config file")
		}
		switch {
		case noColor:
			color.NoColor = true
		case cliConfig != nil && cliConfig.Color == "never":
			color.NoColor = true
		case cliConfig != nil && cliConfig.Color == "always":
			color.NoColor = false
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags and
// points the confkit library at it.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return cerrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, then the env var, then the settings file
		if v == 0 {
			if val, ok := os.LookupEnv("CONFKIT_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1
				case "2":
					v = 2
				}
			}
		}
		if v == 0 && cliConfig != nil {
			v = cliConfig.Verbose
		}
		level = logging.LevelFromVerbosity(v)
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(logger)
	confkit.SetLogger(logger)

	return nil
}

// operationContext is the diagnostic context attached to library calls so
// failures identify the originating command in logs.
func operationContext(cmd *cobra.Command) confkit.Context {
	return confkit.Context{{Key: "command", Value: fmt.Sprintf("confkit %s", cmd.Name())}}
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
