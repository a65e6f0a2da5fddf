package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/syntree/format"
	"github.com/dhamidi/syntree/parser"
	"github.com/dhamidi/syntree/project"
	"github.com/dhamidi/syntree/syntax"
)

func newRoundtripCmd(gs *globalState) *cobra.Command {
	var skipJSON bool

	cmd := &cobra.Command{
		Use:   "roundtrip [dir]",
		Short: "Check that every source file survives parsing unchanged",
		Long: `Parse every source file under dir and check that the tree reproduces
the input byte for byte, that cached widths agree with the tree, and that
the JSON form decodes to an equal tree.

When dir holds a Ballerina.toml the modules are checked in dependency order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			groups, err := roundtripGroups(gs, dir)
			if err != nil {
				return err
			}

			var checked, failed int
			for _, g := range groups {
				if g.name != "" {
					fmt.Fprintf(gs.stdout, "module %s\n", g.name)
				}
				for _, path := range g.files {
					checked++
					if err := roundtripFile(gs, path, !skipJSON); err != nil {
						failed++
						fmt.Fprintf(gs.stdout, "FAIL\t%s: %s\n", path, err)
						continue
					}
					fmt.Fprintf(gs.stdout, "ok\t%s\n", path)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed the round trip", failed, checked)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipJSON, "skip-json", false, "only check source fidelity and widths")

	return cmd
}

type fileGroup struct {
	name  string
	files []string
}

func roundtripGroups(gs *globalState, dir string) ([]fileGroup, error) {
	proj, err := project.LoadFrom(gs.fs, dir, gs.cfg.Exclude...)
	if errors.Is(err, project.ErrNoManifest) {
		files, err := project.SourceFiles(gs.fs, dir, gs.cfg.Exclude...)
		if err != nil {
			return nil, err
		}
		return []fileGroup{{files: files}}, nil
	}
	if err != nil {
		return nil, err
	}

	var groups []fileGroup
	for _, m := range proj.ModulesInOrder() {
		files, err := m.Files()
		if err != nil {
			return nil, err
		}
		groups = append(groups, fileGroup{name: m.FullName(), files: files})
	}
	return groups, nil
}

func roundtripFile(gs *globalState, path string, checkJSON bool) error {
	source, err := readSource(gs, path)
	if err != nil {
		return err
	}
	tree, err := parser.ParseModule(bytes.NewReader(source), parser.WithFile(path)).Finish()
	if err != nil {
		return err
	}
	if tree.ToSourceText() != string(source) {
		return errors.New("source text differs from input")
	}
	if err := syntax.VerifyWidth(tree.InternalRoot()); err != nil {
		return err
	}
	if !checkJSON {
		return nil
	}

	var buf bytes.Buffer
	if err := format.NewTreeJSONEncoder(&buf).Compact().Encode(tree.InternalRoot()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	decoded, err := format.DecodeTreeJSON(&buf)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if !syntax.Equal(tree.InternalRoot(), decoded) {
		return errors.New("decoded tree differs from parsed tree")
	}
	return nil
}
