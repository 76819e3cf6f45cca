package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/syntree/internal/ui/pretty"
	"github.com/yaklabco/syntree/pkg/parser"
	"github.com/yaklabco/syntree/pkg/syntax"
)

type parseFlags struct {
	tokens bool
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse <file> [files...]",
		Short: "Parse files and dump their syntax trees",
		Long: `Parse source files and print the resulting syntax tree.

The dump shows every node and token with its byte range. Token text is
quoted, so whitespace and comments are visible; concatenating all token
text reproduces the input exactly. Malformed input still produces a
complete tree, with Error nodes around the unparseable regions.

Examples:
  syntree parse main.sy            # Dump the syntax tree
  syntree parse --tokens main.sy   # Dump the flat token stream`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.tokens, "tokens", false, "dump the flat token stream instead of the tree")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	colorEnabled := pretty.IsColorEnabled(colorMode, cmd.OutOrStdout())
	styles := pretty.NewStyles(colorEnabled)

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	hadErrors := false
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		result := parser.Parse(string(content))

		if len(args) > 1 {
			fmt.Fprintf(out, "== %s\n", path)
		}

		if flags.tokens {
			fmt.Fprint(out, styles.FormatTokens(result.Root()))
		} else {
			fmt.Fprint(out, styles.FormatTree(result.Root()))
		}

		if !result.Ok() {
			hadErrors = true
			lines := syntax.NewLineIndex(result.Source)
			for _, parseErr := range result.Errors {
				line, col := lines.LineAt(parseErr.Range.Start)
				fmt.Fprintf(errOut, "%s:%d:%d: %s\n", path, line, col, parseErr.Message)
			}
		}
	}

	if hadErrors {
		return ErrIssuesFound
	}
	return nil
}
