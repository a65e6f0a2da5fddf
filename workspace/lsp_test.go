package workspace

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type notification struct {
	method string
	params any
}

func newTestServer(t *testing.T) (*LSPServer, *glsp.Context, *[]notification) {
	t.Helper()
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/proj/lib.bal", []byte("function lib() {}\n"), 0o644))

	ls := NewLSPServer("test", 0, WithFs(afs))
	var sent []notification
	ctx := &glsp.Context{Notify: func(method string, params any) {
		sent = append(sent, notification{method, params})
	}}

	root := "file:///proj"
	_, err := ls.initialize(ctx, &protocol.InitializeParams{RootURI: &root})
	require.NoError(t, err)
	require.NoError(t, ls.initialized(ctx, &protocol.InitializedParams{}))
	return ls, ctx, &sent
}

func lastDiagnostics(t *testing.T, sent []notification) protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, sent)
	n := sent[len(sent)-1]
	require.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, n.method)
	params, ok := n.params.(protocol.PublishDiagnosticsParams)
	require.True(t, ok)
	return params
}

func TestLSPInitializeScansRoot(t *testing.T) {
	ls, _, _ := newTestServer(t)
	assert.Equal(t, "/proj", ls.Workspace().RootDir())
	assert.NotNil(t, ls.Workspace().GetFile("/proj/lib.bal"))
}

func TestLSPDiagnosticsLifecycle(t *testing.T) {
	ls, ctx, sent := newTestServer(t)
	uri := "file:///proj/main.bal"

	require.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "ballerina", Version: 1, Text: "function f() {\n  int x = ;\n}\n"},
	}))
	diags := lastDiagnostics(t, *sent)
	assert.Equal(t, uri, diags.URI)
	require.Len(t, diags.Diagnostics, 1)
	d := diags.Diagnostics[0]
	assert.Equal(t, "SYN0003", d.Code.Value)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, protocol.UInteger(1), d.Range.Start.Line)

	// Incremental change inserting the missing expression.
	insert := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 10},
		End:   protocol.Position{Line: 1, Character: 10},
	}
	require.NoError(t, ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEvent{Range: &insert, Text: "1"}},
	}))
	assert.Empty(t, lastDiagnostics(t, *sent).Diagnostics)
	f := ls.Workspace().GetFile("/proj/main.bal")
	assert.Equal(t, "function f() {\n  int x = 1;\n}\n", f.Tree.ToSourceText())
	assert.Equal(t, int32(2), f.Version)

	require.NoError(t, ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                3,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "function ("}},
	}))
	assert.NotEmpty(t, lastDiagnostics(t, *sent).Diagnostics)

	require.NoError(t, ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	assert.Empty(t, lastDiagnostics(t, *sent).Diagnostics)
	assert.Nil(t, ls.Workspace().GetFile("/proj/main.bal"))
}

func TestLSPQueries(t *testing.T) {
	ls, ctx, _ := newTestServer(t)
	uri := "file:///proj/q.bal"
	require.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Version: 1, Text: mainSource},
	}))
	doc := protocol.TextDocumentIdentifier{URI: uri}

	hover, err := ls.textDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: doc,
			Position:     protocol.Position{Line: 2, Character: 10},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)
	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Contains(t, content.Value, "**IdentifierToken** `[27,31)`")
	assert.Contains(t, content.Value, "ModulePart > NodeList > FunctionDefinition > IdentifierToken")
	assert.Equal(t, protocol.Position{Line: 2, Character: 9}, hover.Range.Start)

	result, err := ls.textDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{TextDocument: doc})
	require.NoError(t, err)
	symbols, ok := result.([]protocol.DocumentSymbol)
	require.True(t, ok)
	require.Len(t, symbols, 2)
	assert.Equal(t, "counter", symbols[0].Name)
	assert.Equal(t, protocol.SymbolKindVariable, symbols[0].Kind)
	assert.Equal(t, "main", symbols[1].Name)
	assert.Equal(t, protocol.SymbolKindFunction, symbols[1].Kind)

	folds, err := ls.textDocumentFoldingRange(ctx, &protocol.FoldingRangeParams{TextDocument: doc})
	require.NoError(t, err)
	require.Len(t, folds, 2)
	assert.Equal(t, protocol.UInteger(2), folds[0].StartLine)
	assert.Equal(t, protocol.UInteger(6), folds[0].EndLine)
}

func TestURIConversion(t *testing.T) {
	path, err := uriToPath("file:///tmp/a%20b/x.bal")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a b/x.bal", path)
	assert.Equal(t, "file:///tmp/a%20b/x.bal", pathToURI(path))
}
