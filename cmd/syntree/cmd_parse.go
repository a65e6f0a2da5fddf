package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dhamidi/syntree/format"
	"github.com/dhamidi/syntree/parser"
	"github.com/dhamidi/syntree/syntax"
)

func newParseCmd(gs *globalState) *cobra.Command {
	var outputFormat string
	var mode string
	var selectPath string
	var includePositions bool
	var includeTrivia bool

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a source file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := parseInput(gs, args[0], mode)
			if err != nil {
				return err
			}

			if selectPath != "" {
				data, err := format.NewTreeJSONEncoder(nil).MarshalText(tree.InternalRoot())
				if err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				selected, err := format.SelectJSON(data, selectPath)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(gs.stdout, selected)
				return err
			}

			var encoder format.TreeEncoder
			switch outputFormat {
			case "text":
				enc := format.NewDumpEncoder(gs.stdout, includePositions)
				if includeTrivia {
					enc.WithTrivia()
				}
				encoder = enc
			case "json":
				encoder = format.NewTreeJSONEncoder(gs.stdout)
			case "lines":
				enc := format.NewLineEncoder(gs.stdout)
				if includeTrivia {
					enc.WithTrivia()
				}
				encoder = enc
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.EncodeTree(tree); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Fprintln(gs.stdout)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, lines)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "module", "what the input holds (module, expression, statement)")
	cmd.Flags().StringVar(&selectPath, "select", "", "print only the part of the JSON tree at this gjson path")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include text ranges in text output")
	cmd.Flags().BoolVar(&includeTrivia, "trivia", false, "include trivia in text and lines output")

	return cmd
}

// parseInput parses path, or standard input for "-", using the entry point
// named by mode.
func parseInput(gs *globalState, path, mode string) (*syntax.SyntaxTree, error) {
	var r io.Reader
	name := path
	if path == "-" {
		r = gs.stdin
		name = "<stdin>"
	} else {
		f, err := gs.fs.Open(path)
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}
		defer f.Close()
		r = f
	}

	opts := []parser.Option{parser.WithFile(name)}
	if gs.cfg.Dedup.Bool {
		opts = append(opts, parser.WithBuilder(syntax.NewBuilder(syntax.WithDeduplication())))
	}

	var p *parser.Parser
	switch mode {
	case "module":
		p = parser.ParseModule(r, opts...)
	case "expression":
		p = parser.ParseExpression(r, opts...)
	case "statement":
		p = parser.ParseStatement(r, opts...)
	default:
		return nil, fmt.Errorf("unknown mode: %s", mode)
	}
	return p.Finish()
}

// readSource reads a whole file from the state's filesystem.
func readSource(gs *globalState, path string) ([]byte, error) {
	data, err := afero.ReadFile(gs.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return data, nil
}
