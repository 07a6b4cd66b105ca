package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/confkit"
	cerrors "github.com/thoreinstein/confkit/internal/errors"
)

var checkFormat string

func init() {
	checkCmd.Flags().StringVar(&checkFormat, "format", "",
		"file format: json, yaml, toml, xml (default: infer from extension)")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Verify that configuration files parse cleanly",
	Long: `Check parses each file with the format inferred from its extension
(or forced with --format) and reports a per-file result. The exit code
is non-zero if any file fails.`,
	Example: `  confkit check app.yaml
  confkit check deploy/*.json --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := parseFormatFlag(checkFormat)
	if err != nil {
		return cerrors.NewUserError(err, "valid formats: json, yaml, toml, xml")
	}

	failed := 0
	for _, path := range args {
		_, err := confkit.ReadConfig[map[string]any](path, format, operationContext(cmd))
		if err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %v\n", color.RedString("fail"), path, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("ok"), path)
	}

	if failed > 0 {
		return cerrors.NewUserError(
			errors.Newf("%d of %d files failed", failed, len(args)), "")
	}
	return nil
}
