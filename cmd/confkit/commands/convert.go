package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/confkit"
	cerrors "github.com/thoreinstein/confkit/internal/errors"
)

var (
	convertFrom string
	convertTo   string
)

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "",
		"input format: json, yaml, toml, xml (default: infer from extension)")
	convertCmd.Flags().StringVar(&convertTo, "to", "",
		"output format: json, yaml, toml, xml (default: infer from extension)")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a configuration file between formats",
	Long: `Convert reads a configuration file in one format and writes it in
another. Formats are inferred from the file extensions unless forced
with --from/--to. The output is written atomically; a failed conversion
leaves no partial file.`,
	Example: `  confkit convert app.yaml app.toml
  confkit convert settings.conf settings.yaml --from json`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	fromFormat, err := parseFormatFlag(convertFrom)
	if err != nil {
		return cerrors.NewUserError(err, "valid formats: json, yaml, toml, xml")
	}
	toFormat, err := parseFormatFlag(convertTo)
	if err != nil {
		return cerrors.NewUserError(err, "valid formats: json, yaml, toml, xml")
	}

	ctx := operationContext(cmd)
	tree, err := confkit.ReadConfig[map[string]any](in, fromFormat, ctx)
	if err != nil {
		return exitErr(err)
	}

	if err := confkit.WriteConfig(out, toFormat, tree, ctx); err != nil {
		return exitErr(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", color.GreenString("converted"), in, out)
	return nil
}
