package parser

// Lexer converts source text into a gap-free token stream. It is total:
// every byte of input ends up inside exactly one token span, and
// unrecognized characters become TokenInvalid tokens instead of errors.
type Lexer struct {
	input []byte
	pos   int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() {
	if l.pos < len(l.input) {
		l.pos++
	}
}

func (l *Lexer) advanceN(n int) {
	l.pos += n
	if l.pos > len(l.input) {
		l.pos = len(l.input)
	}
}

func (l *Lexer) NextToken() Token {
	start := l.pos

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	}

	ch := l.peek()

	if ch == '/' && l.peekN(1) == '/' {
		return l.scanLineComment(start)
	}
	if ch == '/' && l.peekN(1) == '*' {
		return l.scanBlockComment(start)
	}

	if isSpace(ch) {
		return l.scanWhitespace(start)
	}

	if ch == '#' {
		return l.scanDirective(start)
	}

	if ch == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') {
		return l.scanHex(start)
	}

	if isDigit(ch) {
		return l.scanNumber(start)
	}

	if isIdentStart(ch) {
		return l.scanIdent(start)
	}

	if ch == '"' {
		return l.scanString(start)
	}

	return l.scanPunct(start)
}

func (l *Lexer) scanWhitespace(start int) Token {
	for isSpace(l.peek()) && l.pos < len(l.input) {
		l.advance()
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanLineComment(start int) Token {
	l.advanceN(2)
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokenLineComment, start)
}

func (l *Lexer) scanBlockComment(start int) Token {
	l.advanceN(2)
	for l.pos < len(l.input) {
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			break
		}
		l.advance()
	}
	return l.token(TokenComment, start)
}

// scanDirective handles the '#'-prefixed keywords. Anything other than
// #define or #include lexes as a single TokenInvalid covering the whole
// directive, so one bad directive produces one parse error downstream.
func (l *Lexer) scanDirective(start int) Token {
	l.advance()
	for isIdentPart(l.peek()) && l.pos < len(l.input) {
		l.advance()
	}
	switch string(l.input[start:l.pos]) {
	case "#define":
		return l.token(TokenDefine, start)
	case "#include":
		return l.token(TokenInclude, start)
	}
	return l.token(TokenInvalid, start)
}

// scanHex lexes 0x-prefixed literals greedily. "0x" with no digits is a
// single TokenInvalid rather than a number token followed by an identifier.
func (l *Lexer) scanHex(start int) Token {
	l.advanceN(2)
	digits := 0
	for isHexDigit(l.peek()) && l.pos < len(l.input) {
		l.advance()
		digits++
	}
	if digits == 0 {
		return l.token(TokenInvalid, start)
	}
	return l.token(TokenHex, start)
}

func (l *Lexer) scanNumber(start int) Token {
	for isDigit(l.peek()) && l.pos < len(l.input) {
		l.advance()
	}
	return l.token(TokenNumber, start)
}

func (l *Lexer) scanIdent(start int) Token {
	for isIdentPart(l.peek()) && l.pos < len(l.input) {
		l.advance()
	}
	lexeme := string(l.input[start:l.pos])
	if len(lexeme) > 2 && lexeme[0] == '_' && lexeme[1] == '_' {
		return l.token(TokenBuiltin, start)
	}
	return l.token(LookupIdent(lexeme), start)
}

// scanString lexes a double-quoted string. Strings cannot span lines; an
// unterminated string is one TokenInvalid covering the opening quote
// through the end of the line or input.
func (l *Lexer) scanString(start int) Token {
	l.advance()
	for l.pos < len(l.input) && l.peek() != '"' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() == '"' && l.pos < len(l.input) {
		l.advance()
		return l.token(TokenString, start)
	}
	return l.token(TokenInvalid, start)
}

func (l *Lexer) scanPunct(start int) Token {
	ch := l.peek()
	l.advance()
	switch ch {
	case '(':
		return l.token(TokenLParen, start)
	case ')':
		return l.token(TokenRParen, start)
	case '{':
		return l.token(TokenLBrace, start)
	case '}':
		return l.token(TokenRBrace, start)
	case '[':
		return l.token(TokenLBracket, start)
	case ']':
		return l.token(TokenRBracket, start)
	case ',':
		return l.token(TokenComma, start)
	case '=':
		return l.token(TokenAssign, start)
	case ':':
		return l.token(TokenColon, start)
	case '<':
		return l.token(TokenLAngle, start)
	case '>':
		return l.token(TokenRAngle, start)
	}
	return l.token(TokenInvalid, start)
}

func (l *Lexer) token(kind TokenKind, start int) Token {
	return Token{
		Kind:   kind,
		Span:   Span{Start: start, End: l.pos},
		Lexeme: string(l.input[start:l.pos]),
	}
}

// Tokenize runs the lexer over the whole input, including trivia. The
// returned tokens partition the input exactly and end with a zero-width
// TokenEOF.
func Tokenize(input []byte) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
