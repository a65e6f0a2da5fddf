package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dhamidi/syntree/format"
	"github.com/dhamidi/syntree/parser"
	"github.com/dhamidi/syntree/text"
)

func newTokensCmd(gs *globalState) *cobra.Command {
	var raw bool
	var includeTrivia bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "List the tokens of a source file",
		Long: `List the tokens of a source file with their positions.

By default the tokens come from the parsed tree, so tokens the parser
inserted during error recovery show up as <missing>. With --raw the
lexer output is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !raw {
				tree, err := parseInput(gs, args[0], "module")
				if err != nil {
					return err
				}
				enc := format.NewLineEncoder(gs.stdout)
				if includeTrivia {
					enc.WithTrivia()
				}
				return enc.EncodeTree(tree)
			}

			data, err := readSource(gs, args[0])
			if err != nil {
				return err
			}
			lines := text.NewLineMap(data)
			for _, tok := range parser.Tokenize(data, args[0]) {
				start := tok.TextStart()
				fmt.Fprintf(gs.stdout, "%s\t%s\t%s\t%s\n",
					tok.Kind,
					lines.Position(start),
					text.Range{Start: start, End: start + len(tok.Text)},
					strconv.Quote(tok.Text),
				)
				for _, d := range tok.Diagnostics {
					fmt.Fprintf(gs.stdout, "\t%s\n", d)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print lexer tokens without parsing")
	cmd.Flags().BoolVar(&includeTrivia, "trivia", false, "include leading and trailing trivia")

	return cmd
}
