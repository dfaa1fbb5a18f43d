package parser

import "unicode/utf8"

type Option func(*Parser)

// WithFile stamps diagnostics with a document identifier. The parser does
// not interpret it.
func WithFile(file string) Option {
	return func(p *Parser) {
		p.file = file
	}
}

// WithComments retains comment tokens for callers that need them (e.g.
// documentation hovers); they are never handed to the grammar.
func WithComments() Option {
	return func(p *Parser) {
		p.includeComments = true
	}
}

// Parser holds the configuration and per-call state of one parse. A parse
// is a pure function of its input: no state is shared between calls, so
// distinct Parser values may run concurrently.
type Parser struct {
	file            string
	includeComments bool
	comments        []Token
}

func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) Comments() []Token {
	return p.comments
}

// Parse is the convenience entry point: it parses src and returns the
// best-effort tree plus ordered diagnostics.
func Parse(src []byte, opts ...Option) (*Node, []Diagnostic) {
	return New(opts...).Parse(src)
}

// Parse never fails: for any input it returns a Root node spanning
// [0, len(src)) and a diagnostic list ordered by span start. Syntax errors
// surface as error nodes in the tree plus diagnostics, never as a Go error.
func (p *Parser) Parse(src []byte) (*Node, []Diagnostic) {
	root := &Node{Kind: KindRoot, Span: Span{Start: 0, End: len(src)}}
	diags := &collector{file: p.file}

	if !utf8.Valid(src) {
		diags.add(SeverityError, "source text is not valid UTF-8", Span{Start: 0, End: 0}, nil)
		return root, diags.finish()
	}

	p.comments = nil
	var tokens []Token
	for _, t := range Tokenize(src) {
		if t.Kind == TokenComment || t.Kind == TokenLineComment {
			if p.includeComments {
				p.comments = append(p.comments, t)
			}
			continue
		}
		if t.Kind == TokenWhitespace {
			continue
		}
		tokens = append(tokens, t)
	}

	m := &machine{tokens: tokens, diags: diags}
	pos := 0
	for !m.isEOF(pos) {
		res := topLevelItem(m, pos)
		if res.ok {
			for _, node := range res.nodes {
				root.AddChild(node)
			}
			if res.pos == pos {
				// A zero-width match cannot happen with this grammar; guard
				// anyway so the driver always terminates.
				pos++
				continue
			}
			pos = res.pos
			continue
		}
		pos = p.recoverTopLevel(m, root, pos, res)
	}

	return root, diags.finish()
}

// recoverTopLevel handles a failed top-level item: one diagnostic, one
// error node covering everything up to the next item-start keyword (or end
// of input), and a cursor that has strictly advanced. One malformed item
// therefore never prevents subsequent items from parsing.
func (p *Parser) recoverTopLevel(m *machine, root *Node, pos int, res ruleResult) int {
	expected := dedupeKinds(res.expected)
	msg := unexpectedMessage(m.at(res.pos), expected)
	end := skipAhead(m, pos, topLevelSync)
	span := Span{Start: m.at(pos).Span.Start, End: m.at(end - 1).Span.End}
	m.diags.add(SeverityError, msg, span, expected)
	root.AddChild(&Node{
		Kind: KindError,
		Span: span,
		Err:  &ErrorInfo{Message: msg, Expected: expected},
	})
	return end
}
