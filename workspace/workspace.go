// Package workspace keeps the parsed trees of a source directory up to date
// and answers the editor queries the language server needs.
package workspace

import (
	"sort"
	"sync"

	"github.com/spf13/afero"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/syntree/parser"
	"github.com/dhamidi/syntree/project"
	"github.com/dhamidi/syntree/syntax"
	"github.com/dhamidi/syntree/text"
)

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	fs      afero.Fs
	exclude []string
	builder *syntax.Builder
	files   map[string]*FileInfo
	log     commonlog.Logger
}

type FileInfo struct {
	Path    string
	Version int32
	Tree    *syntax.SyntaxTree
	Open    bool // owned by an editor buffer; disk scans leave it alone
}

type Option func(*Workspace)

// WithFs reads sources from afs instead of the OS filesystem.
func WithFs(afs afero.Fs) Option {
	return func(w *Workspace) {
		w.fs = afs
	}
}

// WithExclude skips directories with these names during scans.
func WithExclude(names ...string) Option {
	return func(w *Workspace) {
		w.exclude = names
	}
}

// WithDeduplication shares one hash-consing builder across every parse.
func WithDeduplication() Option {
	return func(w *Workspace) {
		w.builder = syntax.NewBuilder(syntax.WithDeduplication())
	}
}

func New(rootDir string, opts ...Option) *Workspace {
	w := &Workspace{
		rootDir: rootDir,
		fs:      afero.NewOsFs(),
		files:   make(map[string]*FileInfo),
		log:     commonlog.GetLogger("syntree.workspace"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

func (w *Workspace) Fs() afero.Fs {
	return w.fs
}

func (w *Workspace) ScanAll() error {
	files, err := project.SourceFiles(w.fs, w.rootDir, w.exclude...)
	if err != nil {
		return err
	}
	for _, path := range files {
		if err := w.ScanFile(path); err != nil {
			w.log.Warningf("scan %s: %s", path, err)
		}
	}
	return nil
}

// ScanFile reparses path from disk unless an editor holds it open.
func (w *Workspace) ScanFile(path string) error {
	if f := w.GetFile(path); f != nil && f.Open {
		return nil
	}
	content, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile reparses path from content. The parse never fails; syntax
// errors end up as diagnostics in the tree.
func (w *Workspace) UpdateFile(path string, content []byte) *FileInfo {
	w.mu.Lock()
	defer w.mu.Unlock()
	open := false
	if f := w.files[path]; f != nil {
		open = f.Open
	}
	return w.updateFileLocked(path, 0, open, content)
}

// OpenFile hands path over to an editor buffer at the given version.
func (w *Workspace) OpenFile(path string, version int32, content []byte) *FileInfo {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.updateFileLocked(path, version, true, content)
}

// CloseFile returns path to disk ownership and rescans it. A file that only
// existed in the editor is dropped.
func (w *Workspace) CloseFile(path string) error {
	w.mu.Lock()
	if f := w.files[path]; f != nil {
		f.Open = false
	}
	w.mu.Unlock()

	if exists, err := afero.Exists(w.fs, path); err != nil || !exists {
		w.RemoveFile(path)
		return err
	}
	return w.ScanFile(path)
}

func (w *Workspace) updateFileLocked(path string, version int32, open bool, content []byte) *FileInfo {
	opts := []parser.Option{parser.WithFile(path), parser.WithLogger(w.log)}
	if w.builder != nil {
		opts = append(opts, parser.WithBuilder(w.builder))
	}
	tree := parser.Parse(string(content), opts...)

	f := &FileInfo{Path: path, Version: version, Tree: tree, Open: open}
	w.files[path] = f
	w.log.Debugf("parsed %s: %d bytes, %d diagnostics", path, len(content), len(tree.Diagnostics()))
	return f
}

// ApplyEdits applies range edits in order to the current text of path and
// reparses it. Each edit addresses the text left by the previous one.
// Unknown files start out empty.
func (w *Workspace) ApplyEdits(path string, version int32, edits ...text.Edit) (*FileInfo, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := text.NewDocument(nil)
	if f := w.files[path]; f != nil {
		doc = f.Tree.Document()
	}
	for _, e := range edits {
		next, err := doc.Apply(e)
		if err != nil {
			return nil, err
		}
		doc = next
	}
	return w.updateFileLocked(path, version, true, doc.Content()), nil
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Paths lists the known files in lexical order.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (w *Workspace) Diagnostics(path string) []syntax.PositionedDiagnostic {
	f := w.GetFile(path)
	if f == nil {
		return nil
	}
	return f.Tree.Diagnostics()
}

type SymbolKind int

const (
	SymbolFunction SymbolKind = iota
	SymbolVariable
)

type Symbol struct {
	Name           string
	Kind           SymbolKind
	Range          text.Range // whole declaration without trivia
	SelectionRange text.Range // the name token
}

// Symbols lists the module-level functions and variables of path. Members
// whose name is missing are left out.
func (w *Workspace) Symbols(path string) []Symbol {
	f := w.GetFile(path)
	if f == nil || f.Tree.Root() == nil {
		return nil
	}
	var out []Symbol
	for _, member := range f.Tree.Root().Members().All() {
		var name *syntax.Token
		var kind SymbolKind
		switch m := member.(type) {
		case *syntax.FunctionDefinition:
			name, kind = m.FunctionName(), SymbolFunction
		case *syntax.ModuleVariableDeclaration:
			name, kind = m.VariableName(), SymbolVariable
		default:
			continue
		}
		if name.IsMissing() {
			continue
		}
		out = append(out, Symbol{
			Name:           name.Text(),
			Kind:           kind,
			Range:          member.TextRangeWithoutTrivia(),
			SelectionRange: name.TextRangeWithoutTrivia(),
		})
	}
	return out
}

type Hover struct {
	Node  syntax.Node
	Range text.Range
	Path  []syntax.SyntaxKind // kinds from the node up to the root
}

// HoverAt describes the innermost node at offset.
func (w *Workspace) HoverAt(path string, offset int) (Hover, bool) {
	f := w.GetFile(path)
	if f == nil {
		return Hover{}, false
	}
	node := syntax.NodeAt(f.Tree.RootNode(), offset, offset)
	if node == nil {
		return Hover{}, false
	}
	h := Hover{Node: node, Range: node.TextRangeWithoutTrivia(), Path: []syntax.SyntaxKind{node.Kind()}}
	for a := range syntax.Ancestors(node) {
		h.Path = append(h.Path, a.Kind())
	}
	return h, true
}

// FoldingRanges returns the line spans of every block that covers more than
// one line, outermost first.
func (w *Workspace) FoldingRanges(path string) []text.LineRange {
	f := w.GetFile(path)
	if f == nil {
		return nil
	}
	var out []text.LineRange
	syntax.Walk(f.Tree.RootNode(), func(n syntax.Node) bool {
		switch n.Kind() {
		case syntax.KindFunctionBodyBlock, syntax.KindBlockStatement:
			lr := f.Tree.LineRange(n.TextRangeWithoutTrivia())
			if lr.End.Line > lr.Start.Line {
				out = append(out, lr)
			}
		}
		return true
	})
	return out
}
