package workspace

import (
	"sync"

	"github.com/tliron/commonlog"

	"github.com/chuff-lang/chuff/huff/parser"
)

var log = commonlog.GetLogger("chuff.workspace")

// Document is one open source file together with its latest parse result.
type Document struct {
	URI         string
	Content     []byte
	Root        *parser.Node
	Diagnostics []parser.Diagnostic
	Lines       *LineIndex
}

// Workspace tracks open documents for the language server. Each update
// reparses the document from scratch; the parser core is stateless, so
// the only coordination needed is around the document map itself.
type Workspace struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

func New() *Workspace {
	return &Workspace{docs: make(map[string]*Document)}
}

// Update stores new content for uri and reparses it, returning the
// refreshed document.
func (w *Workspace) Update(uri string, content []byte) *Document {
	root, diags := parser.Parse(content, parser.WithFile(uri))
	doc := &Document{
		URI:         uri,
		Content:     content,
		Root:        root,
		Diagnostics: diags,
		Lines:       NewLineIndex(content),
	}

	w.mu.Lock()
	w.docs[uri] = doc
	w.mu.Unlock()

	log.Debugf("parsed %s: %d items, %d diagnostics", uri, len(root.Children), len(diags))
	return doc
}

func (w *Workspace) Get(uri string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.docs[uri]
}

func (w *Workspace) Close(uri string) {
	w.mu.Lock()
	delete(w.docs, uri)
	w.mu.Unlock()
}
