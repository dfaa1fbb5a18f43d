package format

import (
	"encoding/json"
	"io"

	"github.com/chuff-lang/chuff/huff/parser"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node *parser.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(node *parser.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Span     astJSONSpan    `json:"span"`
	Partial  bool           `json:"partial,omitempty"`
	Token    string         `json:"token,omitempty"`
	Error    *astJSONError  `json:"error,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

type astJSONSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type astJSONError struct {
	Message  string   `json:"message"`
	Expected []string `json:"expected,omitempty"`
}

func nodeToJSON(n *parser.Node) *astJSONNode {
	jn := &astJSONNode{
		Kind:    n.Kind.String(),
		Span:    astJSONSpan{Start: n.Span.Start, End: n.Span.End},
		Partial: n.Partial,
	}

	if n.Token != nil {
		jn.Token = n.Token.Lexeme
	}

	if n.Err != nil {
		jn.Error = &astJSONError{
			Message: n.Err.Message,
		}
		for _, exp := range n.Err.Expected {
			jn.Error.Expected = append(jn.Error.Expected, exp.String())
		}
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*astJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}

	return jn
}
