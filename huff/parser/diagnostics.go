package parser

import "sort"

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return "unknown"
}

// Diagnostic is one located parse problem. File is the opaque document
// identifier supplied by the caller; the parser only stamps it through.
type Diagnostic struct {
	Severity Severity
	Message  string
	Span     Span
	Expected []TokenKind
	File     string
}

// collector accumulates one diagnostic per recovery event during a parse.
type collector struct {
	file  string
	diags []Diagnostic
}

func (c *collector) add(severity Severity, msg string, span Span, expected []TokenKind) {
	c.diags = append(c.diags, Diagnostic{
		Severity: severity,
		Message:  msg,
		Span:     span,
		Expected: expected,
		File:     c.file,
	})
}

// finish orders diagnostics by span start and drops any diagnostic whose
// span is strictly nested inside another's, keeping the outer one. Nested
// diagnostics restate a failure the enclosing recovery already reported.
func (c *collector) finish() []Diagnostic {
	diags := c.diags
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Span.Start != diags[j].Span.Start {
			return diags[i].Span.Start < diags[j].Span.Start
		}
		return diags[i].Span.End > diags[j].Span.End
	})

	kept := make([]Diagnostic, 0, len(diags))
	for i, d := range diags {
		nested := false
		for j, outer := range diags {
			if i == j || outer.Span == d.Span {
				continue
			}
			if outer.Span.Contains(d.Span) {
				nested = true
				break
			}
		}
		if !nested {
			kept = append(kept, d)
		}
	}
	return kept
}
