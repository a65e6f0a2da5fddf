// Package project locates the sources of a Ballerina package: the
// Ballerina.toml manifest, its default module and the submodules under
// modules/.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/syntree/parser"
	"github.com/dhamidi/syntree/syntax"
)

const (
	ManifestFile = "Ballerina.toml"
	SourceExt    = ".bal"
	modulesDir   = "modules"
)

var ErrNoManifest = errors.New("no " + ManifestFile + " found")

var log = commonlog.GetLogger("syntree.project")

// Manifest is the decoded Ballerina.toml.
type Manifest struct {
	Package PackageInfo `toml:"package"`
}

type PackageInfo struct {
	Org          string `toml:"org"`
	Name         string `toml:"name"`
	Version      string `toml:"version"`
	Distribution string `toml:"distribution"`
}

// Project is a package rooted at the directory holding its manifest.
type Project struct {
	RootDir  string
	Manifest Manifest
	Modules  []*Module

	fs      afero.Fs
	exclude []string
}

// Module is the default module (Name == "") or one directory under
// modules/.
type Module struct {
	Name         string
	Dir          string
	Project      *Project
	Dependencies []string // names of modules of this package it imports
}

// Load reads the project rooted at rootDir from the OS filesystem.
func Load(rootDir string, exclude ...string) (*Project, error) {
	return LoadFrom(afero.NewOsFs(), rootDir, exclude...)
}

// LoadFrom reads the manifest in rootDir, lists the modules and resolves
// their imports against each other. Directories named in exclude are
// skipped during source discovery.
func LoadFrom(afs afero.Fs, rootDir string, exclude ...string) (*Project, error) {
	manifest, err := ReadManifest(afs, filepath.Join(rootDir, ManifestFile))
	if err != nil {
		return nil, err
	}

	proj := &Project{
		RootDir:  rootDir,
		Manifest: manifest,
		fs:       afs,
		exclude:  exclude,
	}
	proj.Modules = append(proj.Modules, &Module{Dir: rootDir, Project: proj})

	entries, err := afero.ReadDir(afs, filepath.Join(rootDir, modulesDir))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read modules directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() || isHidden(entry.Name()) {
			continue
		}
		proj.Modules = append(proj.Modules, &Module{
			Name:    entry.Name(),
			Dir:     filepath.Join(rootDir, modulesDir, entry.Name()),
			Project: proj,
		})
	}

	for _, m := range proj.Modules {
		deps, err := m.resolveDependencies()
		if err != nil {
			// Non-fatal: the module is still usable without its edges.
			log.Warningf("module %s: %s", m.FullName(), err)
			continue
		}
		m.Dependencies = deps
	}

	return proj, nil
}

// ReadManifest decodes a Ballerina.toml. Unknown keys are logged, not
// rejected.
func ReadManifest(afs afero.Fs, path string) (Manifest, error) {
	var m Manifest
	data, err := afero.ReadFile(afs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, fmt.Errorf("%s: %w", filepath.Dir(path), ErrNoManifest)
		}
		return m, fmt.Errorf("read manifest: %w", err)
	}
	meta, err := toml.Decode(string(data), &m)
	if err != nil {
		return m, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		log.Debugf("%s: ignoring key %s", path, key)
	}
	if m.Package.Name == "" {
		return m, fmt.Errorf("%s: package name is required", path)
	}
	return m, nil
}

// Module returns the module with the given name, or nil if not found. The
// default module has the empty name.
func (p *Project) Module(name string) *Module {
	for _, m := range p.Modules {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// ModulesInOrder returns modules sorted in dependency order (dependencies first).
// Modules with no dependencies come first, then modules that depend only on
// already-listed modules.
func (p *Project) ModulesInOrder() []*Module {
	inDegree := make(map[string]int)
	for _, m := range p.Modules {
		inDegree[m.Name] = len(m.Dependencies)
	}

	var queue []string
	for _, m := range p.Modules {
		if inDegree[m.Name] == 0 {
			queue = append(queue, m.Name)
		}
	}

	var result []*Module
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, p.Module(name))

		for _, m := range p.Modules {
			if slices.Contains(m.Dependencies, name) {
				inDegree[m.Name]--
				if inDegree[m.Name] == 0 {
					queue = append(queue, m.Name)
				}
			}
		}
	}

	// A cycle leaves modules unlisted; fall back to declaration order.
	if len(result) != len(p.Modules) {
		return p.Modules
	}
	return result
}

// SourceFiles lists every source file of the package.
func (p *Project) SourceFiles() ([]string, error) {
	return SourceFiles(p.fs, p.RootDir, p.exclude...)
}

// Fs is the filesystem the project was loaded from.
func (p *Project) Fs() afero.Fs {
	return p.fs
}

// FullName is the import path of the module: the package name for the
// default module, package.module otherwise.
func (m *Module) FullName() string {
	if m.Name == "" {
		return m.Project.Manifest.Package.Name
	}
	return m.Project.Manifest.Package.Name + "." + m.Name
}

// Files returns the module's source files. Nested directories belong to
// other modules or to tests and are not included.
func (m *Module) Files() ([]string, error) {
	entries, err := afero.ReadDir(m.Project.fs, m.Dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", m.Dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != SourceExt {
			continue
		}
		files = append(files, filepath.Join(m.Dir, entry.Name()))
	}
	return files, nil
}

// Parse parses every file of the module.
func (m *Module) Parse(opts ...parser.Option) ([]*syntax.SyntaxTree, error) {
	files, err := m.Files()
	if err != nil {
		return nil, err
	}
	trees := make([]*syntax.SyntaxTree, 0, len(files))
	for _, path := range files {
		tree, err := ParseFile(m.Project.fs, path, opts...)
		if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

// resolveDependencies collects the modules of this package named by the
// import declarations of m's files.
func (m *Module) resolveDependencies() ([]string, error) {
	trees, err := m.Parse()
	if err != nil {
		return nil, err
	}
	pkg := m.Project.Manifest.Package
	var deps []string
	for _, tree := range trees {
		for _, imp := range Imports(tree) {
			if imp.Org != "" && imp.Org != pkg.Org {
				continue
			}
			var name string
			switch {
			case imp.Module == pkg.Name:
				name = ""
			case strings.HasPrefix(imp.Module, pkg.Name+"."):
				name = strings.TrimPrefix(imp.Module, pkg.Name+".")
			default:
				continue
			}
			if name == m.Name || slices.Contains(deps, name) || m.Project.Module(name) == nil {
				continue
			}
			deps = append(deps, name)
		}
	}
	return deps, nil
}

// Import is an import declaration reduced to its names.
type Import struct {
	Org    string
	Module string // dotted module name
	Prefix string
}

// Imports lists the well-formed imports of a tree. Imports with missing
// name tokens are skipped.
func Imports(tree *syntax.SyntaxTree) []Import {
	root := tree.Root()
	if root == nil {
		return nil
	}
	var out []Import
	for _, n := range root.Imports().All() {
		decl, ok := n.(*syntax.ImportDeclaration)
		if !ok {
			continue
		}
		var imp Import
		if org, ok := decl.OrgName(); ok {
			imp.Org = org.OrgName().Text()
		}
		var parts []string
		complete := true
		for _, item := range decl.ModuleName().Items() {
			tok, ok := item.(*syntax.Token)
			if !ok || tok.IsMissing() {
				complete = false
				break
			}
			parts = append(parts, tok.Text())
		}
		if !complete || len(parts) == 0 {
			continue
		}
		imp.Module = strings.Join(parts, ".")
		if prefix, ok := decl.Prefix(); ok {
			imp.Prefix = prefix.Prefix().Text()
		}
		out = append(out, imp)
	}
	return out
}

// ParseFile reads and parses one source file from afs.
func ParseFile(afs afero.Fs, path string, opts ...parser.Option) (*syntax.SyntaxTree, error) {
	f, err := afs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	opts = append([]parser.Option{parser.WithFile(path)}, opts...)
	return parser.ParseModule(f, opts...).Finish()
}

// SourceFiles walks root and returns every .bal file, skipping hidden
// directories, target/ and any directory whose name is in exclude.
func SourceFiles(afs afero.Fs, root string, exclude ...string) ([]string, error) {
	var files []string
	err := afero.Walk(afs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && (isHidden(info.Name()) || info.Name() == "target" || slices.Contains(exclude, info.Name())) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == SourceExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return files, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
