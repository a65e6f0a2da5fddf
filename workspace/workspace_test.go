package workspace

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/syntree/syntax"
	"github.com/dhamidi/syntree/text"
)

const mainSource = `int counter = 0;

function main() {
    if counter > 0 {
        counter += 1;
    }
}
`

func newTestWorkspace(t *testing.T, files map[string]string, opts ...Option) (*Workspace, afero.Fs) {
	t.Helper()
	afs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(afs, filepath.FromSlash(path), []byte(content), 0o644))
	}
	opts = append([]Option{WithFs(afs)}, opts...)
	return New("ws", opts...), afs
}

func TestScanAll(t *testing.T) {
	w, _ := newTestWorkspace(t, map[string]string{
		"ws/main.bal":        mainSource,
		"ws/broken.bal":      "function f( {",
		"ws/target/gen.bal":  "",
		"ws/vendor/skip.bal": "",
		"ws/readme.md":       "",
	}, WithExclude("vendor"))

	require.NoError(t, w.ScanAll())
	assert.Equal(t, []string{filepath.Join("ws", "broken.bal"), filepath.Join("ws", "main.bal")}, w.Paths())

	main := w.GetFile(filepath.Join("ws", "main.bal"))
	require.NotNil(t, main)
	assert.Equal(t, mainSource, main.Tree.ToSourceText())
	assert.False(t, main.Tree.HasDiagnostics())
	assert.NotEmpty(t, w.Diagnostics(filepath.Join("ws", "broken.bal")))
}

func TestUpdateAndRemove(t *testing.T) {
	w, _ := newTestWorkspace(t, nil)

	f := w.UpdateFile("x.bal", []byte("int x = ;"))
	require.NotNil(t, f)
	require.Len(t, w.Diagnostics("x.bal"), 1)
	assert.Equal(t, "SYN0003", w.Diagnostics("x.bal")[0].Code)

	w.UpdateFile("x.bal", []byte("int x = 1;"))
	assert.Empty(t, w.Diagnostics("x.bal"))

	w.RemoveFile("x.bal")
	assert.Nil(t, w.GetFile("x.bal"))
	assert.Nil(t, w.Diagnostics("x.bal"))
}

func TestOpenFileWinsOverDisk(t *testing.T) {
	w, afs := newTestWorkspace(t, map[string]string{"ws/a.bal": "int a = 1;"})
	path := filepath.Join("ws", "a.bal")

	w.OpenFile(path, 3, []byte("int a = 2;"))
	require.NoError(t, w.ScanFile(path))
	f := w.GetFile(path)
	assert.Equal(t, "int a = 2;", f.Tree.ToSourceText())
	assert.Equal(t, int32(3), f.Version)
	assert.True(t, f.Open)

	require.NoError(t, w.CloseFile(path))
	f = w.GetFile(path)
	assert.Equal(t, "int a = 1;", f.Tree.ToSourceText())
	assert.False(t, f.Open)

	w.OpenFile("ws/scratch.bal", 1, []byte("int s;"))
	require.NoError(t, w.CloseFile("ws/scratch.bal"))
	assert.Nil(t, w.GetFile("ws/scratch.bal"))

	exists, err := afero.Exists(afs, "ws/scratch.bal")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestApplyEdits(t *testing.T) {
	w, _ := newTestWorkspace(t, nil)
	w.OpenFile("e.bal", 1, []byte("int x = 1;"))

	f, err := w.ApplyEdits("e.bal", 2,
		text.Edit{Range: text.Range{Start: 8, End: 9}, NewText: "42"},
		text.Edit{Range: text.Range{Start: 0, End: 3}, NewText: "float"},
	)
	require.NoError(t, err)
	assert.Equal(t, "float x = 42;", f.Tree.ToSourceText())
	assert.Equal(t, int32(2), f.Version)

	_, err = w.ApplyEdits("e.bal", 3, text.Edit{Range: text.Range{Start: 10, End: 99}})
	assert.Error(t, err)
}

func TestSymbols(t *testing.T) {
	w, _ := newTestWorkspace(t, nil)
	w.UpdateFile("s.bal", []byte(mainSource+"function (){}\n"))

	symbols := w.Symbols("s.bal")
	require.Len(t, symbols, 2)
	assert.Equal(t, Symbol{
		Name:           "counter",
		Kind:           SymbolVariable,
		Range:          text.Range{Start: 0, End: 16},
		SelectionRange: text.Range{Start: 4, End: 11},
	}, symbols[0])
	assert.Equal(t, "main", symbols[1].Name)
	assert.Equal(t, SymbolFunction, symbols[1].Kind)
	assert.Equal(t, text.Range{Start: 27, End: 31}, symbols[1].SelectionRange)
	assert.Nil(t, w.Symbols("unknown.bal"))
}

func TestHoverAt(t *testing.T) {
	w, _ := newTestWorkspace(t, nil)
	w.UpdateFile("h.bal", []byte(mainSource))

	h, ok := w.HoverAt("h.bal", 28)
	require.True(t, ok)
	assert.Equal(t, syntax.KindIdentifierToken, h.Node.Kind())
	assert.Equal(t, text.Range{Start: 27, End: 31}, h.Range)
	assert.Equal(t, []syntax.SyntaxKind{
		syntax.KindIdentifierToken,
		syntax.KindFunctionDefinition,
		syntax.KindNodeList,
		syntax.KindModulePart,
	}, h.Path)

	_, ok = w.HoverAt("h.bal", 1000)
	assert.False(t, ok)
}

func TestFoldingRanges(t *testing.T) {
	w, _ := newTestWorkspace(t, nil)
	w.UpdateFile("f.bal", []byte(mainSource+"function g() {}\n"))

	ranges := w.FoldingRanges("f.bal")
	require.Len(t, ranges, 2)
	assert.Equal(t, 2, ranges[0].Start.Line)
	assert.Equal(t, 6, ranges[0].End.Line)
	assert.Equal(t, 3, ranges[1].Start.Line)
	assert.Equal(t, 5, ranges[1].End.Line)
}

func TestDeduplicationSharesSubtrees(t *testing.T) {
	w, _ := newTestWorkspace(t, nil, WithDeduplication())
	a := w.UpdateFile("a.bal", []byte("function f() { return 1; }\n"))
	b := w.UpdateFile("b.bal", []byte("function g() { return 1; }\n"))

	bodyA := a.Tree.Root().Members().Get(0).(*syntax.FunctionDefinition).FunctionBody()
	bodyB := b.Tree.Root().Members().Get(0).(*syntax.FunctionDefinition).FunctionBody()
	assert.Same(t, bodyA.Internal(), bodyB.Internal())
}
