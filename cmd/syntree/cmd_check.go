package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dhamidi/syntree/project"
	"github.com/dhamidi/syntree/syntax"
)

func newCheckCmd(gs *globalState) *cobra.Command {
	var colorMode string

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Report syntax diagnostics for files or directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			mode := gs.cfg.Color.String
			if cmd.Flags().Changed("color") {
				mode = colorMode
			}
			p, err := newPalette(mode, gs.stdoutTTY)
			if err != nil {
				return err
			}

			files, err := expandPaths(gs, args)
			if err != nil {
				return err
			}

			var errorCount, fileCount int
			for _, path := range files {
				tree, err := project.ParseFile(gs.fs, path)
				if err != nil {
					return err
				}
				diags := tree.Diagnostics()
				if len(diags) > 0 {
					fileCount++
				}
				for _, d := range diags {
					if d.Severity == syntax.SeverityError {
						errorCount++
					}
					pos := tree.LinePosition(d.Range.Start)
					fmt.Fprintf(gs.stdout, "%s %s %s %s\n",
						p.location.Sprintf("%s:%d:%d:", path, pos.Line+1, pos.Column+1),
						p.severity(d.Severity).Sprint(d.Severity),
						p.code.Sprint(d.Code),
						d.Message,
					)
				}
			}
			if errorCount > 0 {
				return fmt.Errorf("%d syntax errors in %d of %d files", errorCount, fileCount, len(files))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&colorMode, "color", "auto", "colorize output (auto, always, never)")

	return cmd
}

// expandPaths replaces every directory argument by the source files under it.
func expandPaths(gs *globalState, args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		isDir, err := afero.IsDir(gs.fs, arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !isDir {
			files = append(files, arg)
			continue
		}
		found, err := project.SourceFiles(gs.fs, arg, gs.cfg.Exclude...)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

type palette struct {
	location *color.Color
	code     *color.Color
	errors   *color.Color
	warnings *color.Color
	info     *color.Color
}

func newPalette(mode string, tty bool) (*palette, error) {
	var enabled bool
	switch mode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	case "auto":
		enabled = tty
	default:
		return nil, fmt.Errorf("unknown color mode: %s", mode)
	}
	p := &palette{
		location: color.New(color.Bold),
		code:     color.New(color.Faint),
		errors:   color.New(color.FgRed, color.Bold),
		warnings: color.New(color.FgYellow),
		info:     color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.location, p.code, p.errors, p.warnings, p.info} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p, nil
}

func (p *palette) severity(s syntax.Severity) *color.Color {
	switch s {
	case syntax.SeverityWarning:
		return p.warnings
	case syntax.SeverityInfo:
		return p.info
	default:
		return p.errors
	}
}
