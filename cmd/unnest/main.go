package main

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/bjaus/detab"
	"github.com/bjaus/detab/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "unnest",
	Short: "Flatten a nested JSON or YAML document into delimited rows",
	Long: `unnest reads one JSON (or YAML) document on stdin and writes a flat
table on stdout: a header of every column name seen, then one row per
flattened record.

Nested object keys join into dotted column names. An array fans out
into one row per element with sibling fields repeated; sibling arrays
combine as a cross product. The header is sorted, so permuted input
produces identical columns.

Environment variables prefixed UNNEST_ override flag defaults, e.g.
UNNEST_MISSING=NA.`,
	Args:          cobra.NoArgs,
	Version:       version,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

const version = "0.2.0"

func init() {
	f := rootCmd.Flags()
	f.StringP("format", "f", "json", "input format: json or yaml")
	f.StringP("output-delimiter", "O", " ", "between columns of output")
	f.Bool("unit-separator", false, "separate output columns with ASCII US (0x1F)")
	f.String("line-delimiter", "", "between lines of output (default newline)")
	f.Bool("record-separator", false, "terminate output lines with ASCII RS (0x1E)")
	f.BoolP("null", "z", false, "terminate output lines with NUL")
	f.String("attribute-separator", ".", "in column names, between nested object keys")
	f.String("missing", "", "output representation of missing values")
	f.BoolP("verbose", "v", false, "verbose diagnostics on stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log := cli.Logger(false)
		log.Fatal().Err(err).Msg("unnest failed")
	}
}

func run(cmd *cobra.Command, _ []string) error {
	v, err := cli.Bind(cmd, "UNNEST")
	if err != nil {
		return err
	}
	log := cli.Logger(v.GetBool("verbose"))

	root, err := cli.DecodeTree(cmd.InOrStdin(), v.GetString("format"))
	if err != nil {
		return err
	}
	log.Debug().Str("format", v.GetString("format")).Msg("input decoded")

	opts := detab.NestOptions{
		Policy: detab.Policy{
			OutputSep: v.GetString("output-delimiter"),
			UnitSep:   v.GetBool("unit-separator"),
			LineSep:   v.GetString("line-delimiter"),
			RecordSep: v.GetBool("record-separator"),
			NullSep:   v.GetBool("null"),
			Missing:   v.GetString("missing"),
		},
		Sep: v.GetString("attribute-separator"),
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := detab.Unnest(out, root, opts); err != nil {
		return err
	}
	return out.Flush()
}
