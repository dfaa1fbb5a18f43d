package parser

import "testing"

func TestDiagnosticsOrderedBySpanStart(t *testing.T) {
	c := &collector{}
	c.add(SeverityError, "third", Span{Start: 30, End: 35}, nil)
	c.add(SeverityError, "first", Span{Start: 0, End: 5}, nil)
	c.add(SeverityError, "second", Span{Start: 10, End: 20}, nil)

	diags := c.finish()
	if len(diags) != 3 {
		t.Fatalf("got %d diagnostics, want 3", len(diags))
	}
	for i, want := range []string{"first", "second", "third"} {
		if diags[i].Message != want {
			t.Errorf("diagnostic %d = %q, want %q", i, diags[i].Message, want)
		}
	}
}

func TestNestedDiagnosticsSuppressed(t *testing.T) {
	c := &collector{}
	c.add(SeverityError, "outer", Span{Start: 0, End: 20}, nil)
	c.add(SeverityError, "inner", Span{Start: 5, End: 10}, nil)
	c.add(SeverityError, "separate", Span{Start: 25, End: 30}, nil)

	diags := c.finish()
	if len(diags) != 2 {
		t.Fatalf("got %v, want outer + separate", diags)
	}
	if diags[0].Message != "outer" || diags[1].Message != "separate" {
		t.Errorf("kept %q and %q, want outer and separate", diags[0].Message, diags[1].Message)
	}
}

func TestEqualSpansBothKept(t *testing.T) {
	c := &collector{}
	c.add(SeverityError, "a", Span{Start: 0, End: 5}, nil)
	c.add(SeverityError, "b", Span{Start: 0, End: 5}, nil)

	diags := c.finish()
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: equal spans do not suppress each other", len(diags))
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "error" || SeverityWarning.String() != "warning" {
		t.Error("severity names changed")
	}
}

func TestSuppressionInsideParse(t *testing.T) {
	// The unterminated parameter list fails after its inner recovery has
	// already reported the stray comma; the outer item diagnostic covers
	// the inner one, which must be suppressed.
	input := "#define function broken(, uint256"
	_, diags := Parse([]byte(input))

	if len(diags) != 1 {
		t.Fatalf("got %v, want the single outer diagnostic", diags)
	}
	for i := range diags {
		for j := range diags {
			if i != j && diags[i].Span != diags[j].Span && diags[i].Span.Contains(diags[j].Span) {
				t.Errorf("diagnostic %v nested inside %v survived suppression", diags[j], diags[i])
			}
		}
	}
}
