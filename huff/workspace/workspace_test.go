package workspace

import (
	"testing"

	"github.com/chuff-lang/chuff/huff/parser"
)

func TestWorkspaceUpdateParses(t *testing.T) {
	w := New()

	doc := w.Update("file:///a.huff", []byte("#define constant A = 0x01"))
	if doc == nil {
		t.Fatal("Update returned nil document")
	}
	if doc.Root == nil {
		t.Fatal("document has no syntax tree")
	}
	if len(doc.Root.Children) != 1 {
		t.Fatalf("got %d top-level items, want 1", len(doc.Root.Children))
	}
	if doc.Root.Children[0].Kind != parser.KindConstant {
		t.Errorf("item kind = %v, want Constant", doc.Root.Children[0].Kind)
	}
	if len(doc.Diagnostics) != 0 {
		t.Errorf("got %d diagnostics for well-formed input", len(doc.Diagnostics))
	}
}

func TestWorkspaceUpdateReplacesDocument(t *testing.T) {
	w := New()
	uri := "file:///a.huff"

	w.Update(uri, []byte("#define constant A ="))
	first := w.Get(uri)
	if len(first.Diagnostics) == 0 {
		t.Fatal("expected diagnostics for truncated input")
	}

	w.Update(uri, []byte("#define constant A = 0x01"))
	second := w.Get(uri)
	if len(second.Diagnostics) != 0 {
		t.Errorf("diagnostics not cleared after fixing the document: %v", second.Diagnostics)
	}
}

func TestWorkspaceDiagnosticsCarryURI(t *testing.T) {
	w := New()
	uri := "file:///broken.huff"

	doc := w.Update(uri, []byte("garbage"))
	if len(doc.Diagnostics) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	for _, d := range doc.Diagnostics {
		if d.File != uri {
			t.Errorf("diagnostic file = %q, want %q", d.File, uri)
		}
	}
}

func TestWorkspaceClose(t *testing.T) {
	w := New()
	uri := "file:///a.huff"

	w.Update(uri, []byte("#define constant A = 0x01"))
	w.Close(uri)
	if w.Get(uri) != nil {
		t.Error("document still present after Close")
	}
}

func TestWorkspaceGetUnknown(t *testing.T) {
	w := New()
	if w.Get("file:///missing.huff") != nil {
		t.Error("Get returned a document for an unknown URI")
	}
}

func TestSymbolKindMapping(t *testing.T) {
	tests := []struct {
		kind parser.NodeKind
		want bool
	}{
		{parser.KindMacro, true},
		{parser.KindFunction, true},
		{parser.KindEvent, true},
		{parser.KindErrorDef, true},
		{parser.KindConstant, true},
		{parser.KindJumpTable, true},
		{parser.KindCodeTable, true},
		{parser.KindObjectDef, true},
		{parser.KindImport, false},
		{parser.KindError, false},
	}

	for _, tt := range tests {
		if _, ok := symbolKindFor(tt.kind); ok != tt.want {
			t.Errorf("symbolKindFor(%v) ok = %v, want %v", tt.kind, ok, tt.want)
		}
	}
}
