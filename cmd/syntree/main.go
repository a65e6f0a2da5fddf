package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"gopkg.in/guregu/null.v3"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/syntree/config"
)

const version = "0.1.0"

// globalState carries the filesystem, environment and streams every
// subcommand works against.
type globalState struct {
	fs        afero.Fs
	lookup    func(string) (string, bool)
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	stdoutTTY bool

	configFile string
	flags      config.Config
	cfg        config.Config
}

func newGlobalState() *globalState {
	return &globalState{
		fs:        afero.NewOsFs(),
		lookup:    os.LookupEnv,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		stdoutTTY: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

func newRootCmd(gs *globalState) *cobra.Command {
	var verbose int
	var logFile string

	rootCmd := &cobra.Command{
		Use:           "syntree",
		Short:         "Lossless syntax trees for Ballerina sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("verbose") {
				gs.flags.Verbosity = null.IntFrom(int64(verbose))
			}
			if cmd.Flags().Changed("log-file") {
				gs.flags.LogFile = null.StringFrom(logFile)
			}
			cfg, err := config.Load(gs.fs, gs.configFile, gs.lookup)
			if err != nil {
				return err
			}
			gs.cfg = cfg.Apply(gs.flags)
			if err := gs.cfg.Validate(); err != nil {
				return err
			}
			commonlog.Configure(int(gs.cfg.Verbosity.Int64), gs.cfg.LogPath())
			return nil
		},
	}
	rootCmd.SetIn(gs.stdin)
	rootCmd.SetOut(gs.stdout)
	rootCmd.SetErr(gs.stderr)

	rootCmd.PersistentFlags().StringVarP(&gs.configFile, "config", "c", "", "config file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log verbosity, repeat for more")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd(gs))
	rootCmd.AddCommand(newTokensCmd(gs))
	rootCmd.AddCommand(newCheckCmd(gs))
	rootCmd.AddCommand(newRoundtripCmd(gs))
	rootCmd.AddCommand(newLSPCmd(gs))

	return rootCmd
}

func main() {
	gs := newGlobalState()
	if err := newRootCmd(gs).Execute(); err != nil {
		fmt.Fprintln(gs.stderr, "error:", err)
		os.Exit(1)
	}
}
