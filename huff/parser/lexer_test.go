package parser

import (
	"math/rand"
	"testing"
)

func lexKinds(input string) []TokenKind {
	var got []TokenKind
	for _, tok := range Tokenize([]byte(input)) {
		if !tok.IsTrivia() {
			got = append(got, tok.Kind)
		}
	}
	return got
}

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"#define", []TokenKind{TokenDefine, TokenEOF}},
		{"#include", []TokenKind{TokenInclude, TokenEOF}},
		{"#defin", []TokenKind{TokenInvalid, TokenEOF}},
		{"macro", []TokenKind{TokenMacro, TokenEOF}},
		{"fn", []TokenKind{TokenFn, TokenEOF}},
		{"jumptable", []TokenKind{TokenJumpTable, TokenEOF}},
		{"MAIN", []TokenKind{TokenIdent, TokenEOF}},
		{"add", []TokenKind{TokenOpcode, TokenEOF}},
		{"push32", []TokenKind{TokenOpcode, TokenEOF}},
		{"swap16", []TokenKind{TokenOpcode, TokenEOF}},
		{"__codesize", []TokenKind{TokenBuiltin, TokenEOF}},
		{"uint256", []TokenKind{TokenTypeName, TokenEOF}},
		{"bytes32", []TokenKind{TokenTypeName, TokenEOF}},
		// "address" is an opcode mnemonic first; type position in the
		// grammar accepts it as a type name by lexeme.
		{"address", []TokenKind{TokenOpcode, TokenEOF}},
		{"uint256x", []TokenKind{TokenIdent, TokenEOF}},
		{"0x1234", []TokenKind{TokenHex, TokenEOF}},
		{"0x", []TokenKind{TokenInvalid, TokenEOF}},
		{"42", []TokenKind{TokenNumber, TokenEOF}},
		{`"path.huff"`, []TokenKind{TokenString, TokenEOF}},
		{`"unterminated`, []TokenKind{TokenInvalid, TokenEOF}},
		{"{ } ( ) [ ] , = : < >", []TokenKind{
			TokenLBrace, TokenRBrace, TokenLParen, TokenRParen,
			TokenLBracket, TokenRBracket, TokenComma, TokenAssign,
			TokenColon, TokenLAngle, TokenRAngle, TokenEOF,
		}},
		{"// comment\nmacro", []TokenKind{TokenMacro, TokenEOF}},
		{"/* block */ macro", []TokenKind{TokenMacro, TokenEOF}},
		{"FREE_STORAGE_POINTER()", []TokenKind{TokenFreeStoragePointer, TokenLParen, TokenRParen, TokenEOF}},
		{"takes(0) returns(1)", []TokenKind{
			TokenTakes, TokenLParen, TokenNumber, TokenRParen,
			TokenReturns, TokenLParen, TokenNumber, TokenRParen, TokenEOF,
		}},
		{"label:", []TokenKind{TokenIdent, TokenColon, TokenEOF}},
		{"$?", []TokenKind{TokenInvalid, TokenInvalid, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := lexKinds(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(tt.expected), tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

// Token spans must partition the input exactly: strictly increasing,
// no gaps, no overlaps, ending in a zero-width EOF at len(input).
func TestLexerSpansPartitionInput(t *testing.T) {
	inputs := []string{
		"",
		"#define macro MAIN() = takes(0) returns(0) { }",
		"garbage $$$ 0x #definx \"unterminated",
		"/* unterminated comment",
		"\xff\xfe binary junk \x00",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens := Tokenize([]byte(input))
			offset := 0
			for _, tok := range tokens {
				if tok.Span.Start != offset {
					t.Fatalf("token %v starts at %d, want %d", tok.Kind, tok.Span.Start, offset)
				}
				if tok.Span.End < tok.Span.Start {
					t.Fatalf("token %v has negative-length span", tok.Kind)
				}
				offset = tok.Span.End
			}
			if offset != len(input) {
				t.Errorf("tokens cover [0, %d), want [0, %d)", offset, len(input))
			}
			last := tokens[len(tokens)-1]
			if last.Kind != TokenEOF || last.Span.Len() != 0 {
				t.Errorf("last token = %v %v, want zero-width EOF", last.Kind, last.Span)
			}
		})
	}
}

func TestLexerRandomInputTotality(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		buf := make([]byte, rng.Intn(200))
		rng.Read(buf)
		tokens := Tokenize(buf)
		if tokens[len(tokens)-1].Kind != TokenEOF {
			t.Fatalf("input %q: token stream does not end in EOF", buf)
		}
		offset := 0
		for _, tok := range tokens {
			if tok.Span.Start != offset {
				t.Fatalf("input %q: gap or overlap at offset %d", buf, offset)
			}
			offset = tok.Span.End
		}
		if offset != len(buf) {
			t.Fatalf("input %q: covered %d of %d bytes", buf, offset, len(buf))
		}
	}
}

func TestMalformedHexIsOneToken(t *testing.T) {
	tokens := Tokenize([]byte("0x 0xzz"))
	var kinds []TokenKind
	for _, tok := range tokens {
		if !tok.IsTrivia() {
			kinds = append(kinds, tok.Kind)
		}
	}
	// "0x" is invalid, "0xzz" is invalid "0x" followed by ident "zz" —
	// the malformed literal itself stays a single token.
	want := []TokenKind{TokenInvalid, TokenInvalid, TokenIdent, TokenEOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range kinds {
		if kinds[i] != want[i] {
			t.Fatalf("got %v, want %v", kinds, want)
		}
	}
}
