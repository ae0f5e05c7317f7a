package main

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/bjaus/detab"
	"github.com/bjaus/detab/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "unjustify",
	Short: "Convert a justified text table into delimited rows",
	Long: `unjustify reads a whitespace-aligned (or border-drawn) table on stdin,
infers the column layout shared by all lines, and writes one delimited
row per input line on stdout.

Column boundaries are character positions where every line agrees a
column ends, so the whole input is read before anything is written.
Short lines yield empty fields.

Environment variables prefixed UNJUSTIFY_ override flag defaults, e.g.
UNJUSTIFY_OUTPUT_DELIMITER='	'.`,
	Args:          cobra.NoArgs,
	Version:       version,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

const version = "0.2.0"

func init() {
	f := rootCmd.Flags()
	f.StringSliceP("columns", "c", nil, "output columns, in order (default all)")
	f.BoolP("ignore-case", "i", false, "match column names case-insensitively")
	f.StringP("delimiters", "d", "", "additional column delimiter characters")
	f.StringP("whitespace", "w", "any", "whitespace handling: any, double, or ignore")
	f.BoolP("borders", "b", false, "treat box-drawing characters as delimiters")
	f.StringP("output-delimiter", "O", ",", "between columns of output")
	f.Bool("unit-separator", false, "separate output columns with ASCII US (0x1F)")
	f.String("line-delimiter", "", "between lines of output (default newline)")
	f.Bool("record-separator", false, "terminate output lines with ASCII RS (0x1E)")
	f.BoolP("null", "z", false, "terminate output lines with NUL")
	f.BoolP("header", "H", false, "treat the first row as column names")
	f.Bool("header-only", false, "infer the column layout from the first line only (implies --header)")
	f.BoolP("verbose", "v", false, "verbose diagnostics on stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log := cli.Logger(false)
		log.Fatal().Err(err).Msg("unjustify failed")
	}
}

func run(cmd *cobra.Command, _ []string) error {
	v, err := cli.Bind(cmd, "UNJUSTIFY")
	if err != nil {
		return err
	}
	log := cli.Logger(v.GetBool("verbose"))

	mode, err := detab.ParseWhitespaceMode(v.GetString("whitespace"))
	if err != nil {
		return err
	}
	opts := detab.TableOptions{
		Policy: detab.Policy{
			Whitespace: mode,
			Delimiters: v.GetString("delimiters"),
			Borders:    v.GetBool("borders"),
			OutputSep:  v.GetString("output-delimiter"),
			UnitSep:    v.GetBool("unit-separator"),
			LineSep:    v.GetString("line-delimiter"),
			RecordSep:  v.GetBool("record-separator"),
			NullSep:    v.GetBool("null"),
		},
		Columns:    v.GetStringSlice("columns"),
		IgnoreCase: v.GetBool("ignore-case"),
		Header:     v.GetBool("header"),
		HeaderOnly: v.GetBool("header-only"),
	}

	lines, err := cli.Lines(cmd.InOrStdin())
	if err != nil {
		return err
	}
	log.Debug().Int("lines", len(lines)).Str("whitespace", mode.String()).Msg("input read")

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := detab.Unjustify(out, lines, opts); err != nil {
		return err
	}
	return out.Flush()
}
