package parser

// Span is a half-open byte-offset range into the source text.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether other lies fully inside s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenInvalid
	TokenWhitespace
	TokenComment
	TokenLineComment

	// Keywords
	TokenDefine
	TokenInclude
	TokenImport
	TokenMacro
	TokenFn
	TokenFunction
	TokenEvent
	TokenErrorKw
	TokenConstant
	TokenJumpTable
	TokenJumpTablePacked
	TokenCodeTable
	TokenObject
	TokenTakes
	TokenReturns
	TokenIndexed
	TokenView
	TokenPure
	TokenPayable
	TokenNonPayable
	TokenCalldata
	TokenMemory
	TokenStorage
	TokenCode
	TokenFreeStoragePointer

	// Identifier-like
	TokenIdent
	TokenOpcode
	TokenBuiltin
	TokenTypeName

	// Literals
	TokenNumber
	TokenHex
	TokenString

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenAssign
	TokenColon
	TokenLAngle
	TokenRAngle
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:                "end of input",
	TokenInvalid:            "invalid token",
	TokenWhitespace:         "whitespace",
	TokenComment:            "comment",
	TokenLineComment:        "line comment",
	TokenDefine:             "#define",
	TokenInclude:            "#include",
	TokenImport:             "import",
	TokenMacro:              "macro",
	TokenFn:                 "fn",
	TokenFunction:           "function",
	TokenEvent:              "event",
	TokenErrorKw:            "error",
	TokenConstant:           "constant",
	TokenJumpTable:          "jumptable",
	TokenJumpTablePacked:    "jumptablepacked",
	TokenCodeTable:          "codetable",
	TokenObject:             "object",
	TokenTakes:              "takes",
	TokenReturns:            "returns",
	TokenIndexed:            "indexed",
	TokenView:               "view",
	TokenPure:               "pure",
	TokenPayable:            "payable",
	TokenNonPayable:         "nonpayable",
	TokenCalldata:           "calldata",
	TokenMemory:             "memory",
	TokenStorage:            "storage",
	TokenCode:               "code",
	TokenFreeStoragePointer: "FREE_STORAGE_POINTER",
	TokenIdent:              "identifier",
	TokenOpcode:             "opcode",
	TokenBuiltin:            "builtin",
	TokenTypeName:           "type name",
	TokenNumber:             "number",
	TokenHex:                "hex literal",
	TokenString:             "string literal",
	TokenLParen:             "'('",
	TokenRParen:             "')'",
	TokenLBrace:             "'{'",
	TokenRBrace:             "'}'",
	TokenLBracket:           "'['",
	TokenRBracket:           "']'",
	TokenComma:              "','",
	TokenAssign:             "'='",
	TokenColon:              "':'",
	TokenLAngle:             "'<'",
	TokenRAngle:             "'>'",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "unknown"
}

type Token struct {
	Kind   TokenKind
	Span   Span
	Lexeme string
}

// IsTrivia reports whether the token carries no grammatical content and is
// filtered out before parsing.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case TokenWhitespace, TokenComment, TokenLineComment:
		return true
	}
	return false
}

var keywords = map[string]TokenKind{
	"import":               TokenImport,
	"macro":                TokenMacro,
	"fn":                   TokenFn,
	"function":             TokenFunction,
	"event":                TokenEvent,
	"error":                TokenErrorKw,
	"constant":             TokenConstant,
	"jumptable":            TokenJumpTable,
	"jumptablepacked":      TokenJumpTablePacked,
	"codetable":            TokenCodeTable,
	"object":               TokenObject,
	"takes":                TokenTakes,
	"returns":              TokenReturns,
	"indexed":              TokenIndexed,
	"view":                 TokenView,
	"pure":                 TokenPure,
	"payable":              TokenPayable,
	"nonpayable":           TokenNonPayable,
	"calldata":             TokenCalldata,
	"memory":               TokenMemory,
	"storage":              TokenStorage,
	"code":                 TokenCode,
	"FREE_STORAGE_POINTER": TokenFreeStoragePointer,
}

// LookupIdent classifies an identifier-shaped lexeme as an opcode, a
// keyword, an EVM type name, or a plain identifier. Opcodes win over
// keywords so that mnemonics like "or" and "return" never shadow grammar
// keywords (none overlap, but the order mirrors how the language resolves
// names inside macro bodies).
func LookupIdent(lexeme string) TokenKind {
	if IsOpcode(lexeme) {
		return TokenOpcode
	}
	if kind, ok := keywords[lexeme]; ok {
		return kind
	}
	if isEVMTypeName(lexeme) {
		return TokenTypeName
	}
	return TokenIdent
}

// isEVMTypeName matches the primitive ABI type names: bool, string,
// address, bytes, bytesN, uintN, intN. Width validation is a semantic
// concern; any digit suffix lexes as a type name.
func isEVMTypeName(lexeme string) bool {
	switch lexeme {
	case "bool", "string", "address", "bytes":
		return true
	}
	for _, prefix := range [...]string{"bytes", "uint", "int"} {
		if len(lexeme) > len(prefix) && lexeme[:len(prefix)] == prefix && allDigits(lexeme[len(prefix):]) {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
