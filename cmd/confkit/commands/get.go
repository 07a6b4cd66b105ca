package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/confkit"
	cerrors "github.com/thoreinstein/confkit/internal/errors"
	"github.com/thoreinstein/confkit/internal/logging"
)

var (
	getFormat string
	getRaw    bool
)

func init() {
	getCmd.Flags().StringVar(&getFormat, "format", "",
		"file format: json, yaml, toml, xml (default: infer from extension)")
	getCmd.Flags().BoolVar(&getRaw, "raw", false,
		"print scalar values without JSON quoting")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <file> [key]",
	Short: "Print a value from a configuration file",
	Long: `Get looks up a dotted key path in a configuration file and prints
its value. With no key, it lists all key paths; on a terminal it opens
an interactive fuzzy picker instead.`,
	Example: `  confkit get app.yaml server.port
  confkit get app.yaml            # pick a key interactively
  confkit get app.yaml db.host --raw`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	format, err := parseFormatFlag(getFormat)
	if err != nil {
		return cerrors.NewUserError(err, "valid formats: json, yaml, toml, xml")
	}

	tree, err := confkit.ReadConfig[map[string]any](args[0], format, operationContext(cmd))
	if err != nil {
		return exitErr(err)
	}

	var key string
	if len(args) == 2 {
		key = args[1]
	} else {
		keys := flattenKeys(tree)
		if len(keys) == 0 {
			return cerrors.NewUserError(errors.Newf("no keys in %s", args[0]), "")
		}
		if !logging.IsTTY(os.Stdout) {
			// Non-interactive: just list the key paths
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		}
		idx, err := fuzzyfinder.Find(keys, func(i int) string { return keys[i] })
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil
			}
			return cerrors.NewSystemError(err, "")
		}
		key = keys[idx]
	}

	val, ok := lookupKey(tree, key)
	if !ok {
		return cerrors.NewUserError(errors.Newf("key %q not found in %s", key, args[0]),
			"run 'confkit get <file>' to list available keys")
	}

	return printValue(cmd, val)
}

func printValue(cmd *cobra.Command, val any) error {
	if getRaw {
		switch val.(type) {
		case map[string]any, []any:
			// fall through to JSON for trees
		default:
			fmt.Fprintln(cmd.OutOrStdout(), val)
			return nil
		}
	}
	data, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return cerrors.NewSystemError(err, "")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
