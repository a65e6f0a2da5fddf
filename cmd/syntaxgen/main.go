// Command syntaxgen renders syntax/nodes_gen.go from the node layouts in
// syntax/nodes.yaml.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "syntaxgen",
		Short: "Generate typed syntax tree facades from a node layout file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := loadSpec(in)
			if err != nil {
				return err
			}
			src, err := render(spec)
			if err != nil {
				return err
			}
			if out == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			return os.WriteFile(out, src, 0644)
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "nodes.yaml", "node layout file")
	cmd.Flags().StringVarP(&out, "out", "o", "nodes_gen.go", "output file, - for stdout")

	return cmd
}
