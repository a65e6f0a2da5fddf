package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/syntree/workspace"
)

func newLSPCmd(gs *globalState) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []workspace.Option{
				workspace.WithFs(gs.fs),
				workspace.WithExclude(gs.cfg.Exclude...),
			}
			if gs.cfg.Dedup.Bool {
				opts = append(opts, workspace.WithDeduplication())
			}
			poll, err := gs.cfg.Poll()
			if err != nil {
				return err
			}
			if !watch {
				poll = 0
			}
			server := workspace.NewLSPServer(version, poll, opts...)
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", true, "poll the workspace for changes made outside the editor")

	return cmd
}
