package workspace

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/syntree/syntax"
	"github.com/dhamidi/syntree/text"
)

const lsName = "syntree"

type LSPServer struct {
	workspace *Workspace
	watcher   *FileWatcher
	handler   protocol.Handler
	server    *server.Server
	version   string
	opts      []Option
	poll      time.Duration

	mu     sync.Mutex
	notify glsp.NotifyFunc
}

// NewLSPServer builds a server whose workspace is created on initialize
// with opts. A positive poll interval also starts a FileWatcher.
func NewLSPServer(version string, poll time.Duration, opts ...Option) *LSPServer {
	ls := &LSPServer{
		version: version,
		opts:    opts,
		poll:    poll,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentHover:          ls.textDocumentHover,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
		TextDocumentFoldingRange:   ls.textDocumentFoldingRange,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

// Workspace is nil until the client sent initialize.
func (ls *LSPServer) Workspace() *Workspace {
	return ls.workspace
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.workspace = New(rootDir, ls.opts...)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindIncremental),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.mu.Lock()
	ls.notify = ctx.Notify
	ls.mu.Unlock()

	if err := ls.workspace.ScanAll(); err != nil {
		ls.workspace.log.Errorf("scan workspace: %s", err)
	}
	if ls.poll > 0 {
		ls.watcher = NewFileWatcher(ls.workspace, ls.poll)
		ls.watcher.OnChange(ls.republish)
		ls.watcher.Start()
	}
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
		ls.watcher = nil
	}
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	f := ls.workspace.OpenFile(path, int32(params.TextDocument.Version), []byte(params.TextDocument.Text))
	ls.publish(ctx.Notify, params.TextDocument.URI, f)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	version := int32(params.TextDocument.Version)
	var f *FileInfo
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			f = ls.workspace.OpenFile(path, version, []byte(c.Text))
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				f = ls.workspace.OpenFile(path, version, []byte(c.Text))
				continue
			}
			cur := ls.workspace.GetFile(path)
			if cur == nil {
				return fmt.Errorf("change to unknown document %s", params.TextDocument.URI)
			}
			edit := text.Edit{Range: toTextRange(cur.Tree.Document(), *c.Range), NewText: c.Text}
			if f, err = ls.workspace.ApplyEdits(path, version, edit); err != nil {
				return err
			}
		}
	}
	if f != nil {
		ls.publish(ctx.Notify, params.TextDocument.URI, f)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if err := ls.workspace.CloseFile(path); err != nil {
		ls.workspace.log.Warningf("close %s: %s", path, err)
	}
	// Diagnostics of closed buffers are cleared; the next disk scan
	// republishes them if the file still has errors.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	var f *FileInfo
	if params.Text != nil {
		version := int32(0)
		if cur := ls.workspace.GetFile(path); cur != nil {
			version = cur.Version
		}
		f = ls.workspace.OpenFile(path, version, []byte(*params.Text))
	} else {
		if err := ls.workspace.ScanFile(path); err != nil {
			return nil
		}
		f = ls.workspace.GetFile(path)
	}
	ls.publish(ctx.Notify, params.TextDocument.URI, f)
	return nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	f := ls.workspace.GetFile(path)
	if f == nil {
		return nil, nil
	}
	doc := f.Tree.Document()
	offset := doc.OffsetAtUTF16(int(params.Position.Line), int(params.Position.Character))
	h, ok := ls.workspace.HoverAt(path, offset)
	if !ok {
		return nil, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** `%s`", h.Node.Kind(), h.Range)
	if tok, ok := h.Node.(*syntax.Token); ok && tok.IsMissing() {
		b.WriteString(" (missing)")
	}
	if len(h.Path) > 1 {
		b.WriteString("\n\n")
		for i := len(h.Path) - 1; i > 0; i-- {
			b.WriteString(h.Path[i].String())
			b.WriteString(" > ")
		}
		b.WriteString(h.Path[0].String())
	}
	r := toProtocolRange(doc, h.Range)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: b.String()},
		Range:    &r,
	}, nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	f := ls.workspace.GetFile(path)
	if f == nil {
		return nil, nil
	}
	doc := f.Tree.Document()
	symbols := []protocol.DocumentSymbol{}
	for _, s := range ls.workspace.Symbols(path) {
		kind := protocol.SymbolKindFunction
		if s.Kind == SymbolVariable {
			kind = protocol.SymbolKindVariable
		}
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           s.Name,
			Kind:           kind,
			Range:          toProtocolRange(doc, s.Range),
			SelectionRange: toProtocolRange(doc, s.SelectionRange),
		})
	}
	return symbols, nil
}

func (ls *LSPServer) textDocumentFoldingRange(ctx *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	ranges := []protocol.FoldingRange{}
	for _, lr := range ls.workspace.FoldingRanges(path) {
		ranges = append(ranges, protocol.FoldingRange{
			StartLine: protocol.UInteger(lr.Start.Line),
			EndLine:   protocol.UInteger(lr.End.Line),
		})
	}
	return ranges, nil
}

// republish sends diagnostics for a file the watcher rescanned.
func (ls *LSPServer) republish(path string) {
	ls.mu.Lock()
	notify := ls.notify
	ls.mu.Unlock()
	if notify == nil {
		return
	}
	f := ls.workspace.GetFile(path)
	if f == nil {
		notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         pathToURI(path),
			Diagnostics: []protocol.Diagnostic{},
		})
		return
	}
	ls.publish(notify, pathToURI(path), f)
}

func (ls *LSPServer) publish(notify glsp.NotifyFunc, uri protocol.DocumentUri, f *FileInfo) {
	if f == nil {
		return
	}
	doc := f.Tree.Document()
	diagnostics := []protocol.Diagnostic{}
	for _, d := range f.Tree.Diagnostics() {
		severity := toProtocolSeverity(d.Severity)
		source := lsName
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    toProtocolRange(doc, d.Range),
			Severity: &severity,
			Code:     &protocol.IntegerOrString{Value: d.Code},
			Source:   &source,
			Message:  d.Message,
		})
	}
	notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func toProtocolSeverity(s syntax.Severity) protocol.DiagnosticSeverity {
	switch s {
	case syntax.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	case syntax.SeverityInfo:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityError
	}
}

func toProtocolPosition(doc *text.Document, offset int) protocol.Position {
	pos := doc.Lines().Position(offset)
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line),
		Character: protocol.UInteger(doc.UTF16Column(offset)),
	}
}

func toProtocolRange(doc *text.Document, r text.Range) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(doc, r.Start),
		End:   toProtocolPosition(doc, r.End),
	}
}

func toTextRange(doc *text.Document, r protocol.Range) text.Range {
	return text.Range{
		Start: doc.OffsetAtUTF16(int(r.Start.Line), int(r.Start.Character)),
		End:   doc.OffsetAtUTF16(int(r.End.Line), int(r.End.Character)),
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) protocol.DocumentUri {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return protocol.DocumentUri((&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String())
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
