package workspace

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/chuff-lang/chuff/huff/parser"
)

const lsName = "chuff"

type LSPServer struct {
	workspace *Workspace
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		workspace: New(),
		version:   version,
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
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.DocumentSymbolProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := ls.workspace.Update(params.TextDocument.URI, []byte(params.TextDocument.Text))
	ls.publishDiagnostics(ctx, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		doc := ls.workspace.Update(params.TextDocument.URI, []byte(whole.Text))
		ls.publishDiagnostics(ctx, doc)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		doc := ls.workspace.Update(params.TextDocument.URI, []byte(*params.Text))
		ls.publishDiagnostics(ctx, doc)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.workspace.Close(params.TextDocument.URI)
	return nil
}

func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, doc *Document) {
	diagnostics := make([]protocol.Diagnostic, 0, len(doc.Diagnostics))
	for _, d := range doc.Diagnostics {
		severity := protocol.DiagnosticSeverityError
		if d.Severity == parser.SeverityWarning {
			severity = protocol.DiagnosticSeverityWarning
		}
		source := lsName
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    ls.rangeFor(doc, d.Span),
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Diagnostics: diagnostics,
	})
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc := ls.workspace.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	var symbols []protocol.DocumentSymbol
	for _, item := range doc.Root.Children {
		kind, ok := symbolKindFor(item.Kind)
		if !ok {
			continue
		}
		name := item.Name()
		if name == "" {
			continue
		}
		r := ls.rangeFor(doc, item.Span)
		selection := r
		if ident := item.FirstChildOfKind(parser.KindIdentifier); ident != nil {
			selection = ls.rangeFor(doc, ident.Span)
		}
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           name,
			Kind:           kind,
			Range:          r,
			SelectionRange: selection,
		})
	}
	return symbols, nil
}

func symbolKindFor(kind parser.NodeKind) (protocol.SymbolKind, bool) {
	switch kind {
	case parser.KindMacro:
		return protocol.SymbolKindFunction, true
	case parser.KindFunction:
		return protocol.SymbolKindMethod, true
	case parser.KindEvent:
		return protocol.SymbolKindEvent, true
	case parser.KindErrorDef:
		return protocol.SymbolKindObject, true
	case parser.KindConstant:
		return protocol.SymbolKindConstant, true
	case parser.KindJumpTable, parser.KindCodeTable:
		return protocol.SymbolKindArray, true
	case parser.KindObjectDef:
		return protocol.SymbolKindNamespace, true
	}
	return 0, false
}

func (ls *LSPServer) rangeFor(doc *Document, span parser.Span) protocol.Range {
	startLine, startChar := doc.Lines.Position(span.Start)
	endLine, endChar := doc.Lines.Position(span.End)
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(startLine), Character: protocol.UInteger(startChar)},
		End:   protocol.Position{Line: protocol.UInteger(endLine), Character: protocol.UInteger(endChar)},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
