package parser

import "strings"

// machine carries the per-parse state shared by every rule application:
// the trivia-free token slice (ending in TokenEOF) and the diagnostics
// collector. Rules themselves are immutable and shared across parses.
type machine struct {
	tokens []Token
	diags  *collector
}

func (m *machine) at(pos int) Token {
	if pos >= len(m.tokens) {
		return m.tokens[len(m.tokens)-1]
	}
	return m.tokens[pos]
}

func (m *machine) isEOF(pos int) bool {
	return m.at(pos).Kind == TokenEOF
}

// ruleResult is the outcome of applying a rule at a cursor position. On
// success pos is the new cursor; on failure pos is the point of furthest
// advancement and expected holds the token kinds that would have allowed
// progress there. A failing rule never moves the caller's cursor.
type ruleResult struct {
	ok       bool
	pos      int
	nodes    []*Node
	partial  bool
	expected []TokenKind
}

type rule func(m *machine, pos int) ruleResult

func succeed(pos int, nodes ...*Node) ruleResult {
	return ruleResult{ok: true, pos: pos, nodes: nodes}
}

func failAt(pos int, expected ...TokenKind) ruleResult {
	return ruleResult{pos: pos, expected: expected}
}

// tok matches one token of the given kind and produces no node.
func tok(kind TokenKind) rule {
	return func(m *machine, pos int) ruleResult {
		if m.at(pos).Kind == kind {
			return succeed(pos + 1)
		}
		return failAt(pos, kind)
	}
}

// leaf matches one token of the given kind and produces a leaf node
// carrying it.
func leaf(nodeKind NodeKind, tokenKind TokenKind) rule {
	return func(m *machine, pos int) ruleResult {
		t := m.at(pos)
		if t.Kind != tokenKind {
			return failAt(pos, tokenKind)
		}
		return succeed(pos+1, &Node{Kind: nodeKind, Span: t.Span, Token: &t})
	}
}

// seq applies sub-rules in order; all must succeed. On failure the whole
// sequence fails at the failing sub-rule's position without consuming
// anything from the caller's point of view.
func seq(rules ...rule) rule {
	return func(m *machine, pos int) ruleResult {
		out := ruleResult{ok: true, pos: pos}
		for _, r := range rules {
			res := r(m, out.pos)
			if !res.ok {
				return ruleResult{pos: res.pos, expected: res.expected}
			}
			out.pos = res.pos
			out.nodes = append(out.nodes, res.nodes...)
			out.partial = out.partial || res.partial
		}
		return out
	}
}

// choice tries alternatives in declaration order and returns the first
// success. When all fail, the reported expected-set is the union of the
// alternatives' expected-sets at the point of furthest advancement, so the
// failure reflects the most specific near-miss.
func choice(rules ...rule) rule {
	return func(m *machine, pos int) ruleResult {
		best := failAt(pos)
		for _, r := range rules {
			res := r(m, pos)
			if res.ok {
				return res
			}
			if res.pos > best.pos {
				best = res
			} else if res.pos == best.pos {
				best.expected = append(best.expected, res.expected...)
			}
		}
		best.expected = dedupeKinds(best.expected)
		return best
	}
}

// many greedily matches r zero or more times, stopping at the first
// failure without consuming it. A match that consumes no tokens stops the
// loop; otherwise repetition over an empty match would never terminate.
func many(r rule) rule {
	return func(m *machine, pos int) ruleResult {
		out := ruleResult{ok: true, pos: pos}
		for {
			res := r(m, out.pos)
			if !res.ok || res.pos == out.pos {
				return out
			}
			out.pos = res.pos
			out.nodes = append(out.nodes, res.nodes...)
			out.partial = out.partial || res.partial
		}
	}
}

// opt matches r or nothing.
func opt(r rule) rule {
	return func(m *machine, pos int) ruleResult {
		res := r(m, pos)
		if res.ok {
			return res
		}
		return succeed(pos)
	}
}

// group wraps everything r produces into a single node of the given kind,
// spanning the tokens r consumed.
func group(kind NodeKind, r rule) rule {
	return func(m *machine, pos int) ruleResult {
		res := r(m, pos)
		if !res.ok {
			return res
		}
		node := &Node{Kind: kind, Partial: res.partial}
		node.Span.Start = m.at(pos).Span.Start
		node.Span.End = node.Span.Start
		if res.pos > pos {
			node.Span.End = m.at(res.pos - 1).Span.End
		}
		for _, child := range res.nodes {
			node.AddChild(child)
		}
		return ruleResult{ok: true, pos: res.pos, nodes: []*Node{node}, partial: node.Partial}
	}
}

// syncSet is the set of token kinds a recovery scan stops at. When braces
// is set, the scan tracks {...} nesting and treats a close brace at depth
// zero as a synchronization point, so recovery inside a body never stops
// at a brace belonging to a nested construct.
type syncSet struct {
	kinds  map[TokenKind]bool
	braces bool
}

func newSyncSet(braces bool, kinds ...TokenKind) syncSet {
	set := syncSet{kinds: make(map[TokenKind]bool, len(kinds)), braces: braces}
	for _, k := range kinds {
		set.kinds[k] = true
	}
	return set
}

// stopsAt reports whether a recovery scan at depth zero should stop on t.
func (s syncSet) stopsAt(t Token) bool {
	if t.Kind == TokenEOF {
		return true
	}
	if s.braces && t.Kind == TokenRBrace {
		return true
	}
	return s.kinds[t.Kind]
}

// recover wraps r with local error recovery. When r fails, it emits one
// diagnostic, skips at least one token and keeps skipping until a token
// in sync (or end of input), and yields an error node covering the
// skipped span.
//
// The failure propagates unchanged only when r failed on its very first
// token and that token is a sync point (or end of input): the owning
// repetition loop must stop there. A rule that advanced past the cursor
// before failing still recovers, even when the cursor sits on a sync
// token, so a malformed statement that starts with a statement-start
// token never aborts the enclosing body. Recovery therefore always
// strictly advances the cursor.
func recoverWith(r rule, sync syncSet) rule {
	return func(m *machine, pos int) ruleResult {
		res := r(m, pos)
		if res.ok {
			return res
		}
		if res.pos == pos && sync.stopsAt(m.at(pos)) {
			return res
		}

		expected := dedupeKinds(res.expected)
		msg := unexpectedMessage(m.at(res.pos), expected)
		end := skipAhead(m, pos, sync)
		span := Span{Start: m.at(pos).Span.Start, End: m.at(end - 1).Span.End}
		m.diags.add(SeverityError, msg, span, expected)

		node := &Node{
			Kind: KindError,
			Span: span,
			Err:  &ErrorInfo{Message: msg, Expected: expected},
		}
		return ruleResult{ok: true, pos: end, nodes: []*Node{node}, partial: true}
	}
}

// skipAhead returns the position a recovery scan starting at pos resumes
// at: at least one token past pos, then everything up to the next sync
// point or end of input.
func skipAhead(m *machine, pos int, sync syncSet) int {
	depth := 0
	p := pos + 1
	for {
		t := m.at(p)
		if t.Kind == TokenEOF {
			return p
		}
		if sync.braces {
			if t.Kind == TokenLBrace {
				depth++
				p++
				continue
			}
			if t.Kind == TokenRBrace {
				if depth == 0 {
					return p
				}
				depth--
				p++
				continue
			}
		}
		if depth == 0 && sync.stopsAt(t) {
			return p
		}
		p++
	}
}

// closeBrace consumes the '}' terminating a body. At end of input it
// treats the missing brace as implicitly closed: one diagnostic, and the
// enclosing node is marked partial.
func closeBrace() rule {
	return func(m *machine, pos int) ruleResult {
		t := m.at(pos)
		if t.Kind == TokenRBrace {
			return succeed(pos + 1)
		}
		if t.Kind == TokenEOF {
			m.diags.add(SeverityError, "unexpected end of input, expected '}'", t.Span, []TokenKind{TokenRBrace})
			return ruleResult{ok: true, pos: pos, partial: true}
		}
		return failAt(pos, TokenRBrace)
	}
}

func unexpectedMessage(got Token, expected []TokenKind) string {
	var sb strings.Builder
	if got.Kind == TokenEOF {
		sb.WriteString("unexpected end of input")
	} else {
		sb.WriteString("unexpected '")
		sb.WriteString(got.Lexeme)
		sb.WriteString("'")
	}
	if len(expected) > 0 {
		sb.WriteString(", expected ")
		for i, k := range expected {
			if i > 0 {
				sb.WriteString(" or ")
			}
			sb.WriteString(k.String())
		}
	}
	return sb.String()
}

func dedupeKinds(kinds []TokenKind) []TokenKind {
	seen := make(map[TokenKind]bool, len(kinds))
	var out []TokenKind
	for _, k := range kinds {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
