package parser

// The grammar definitions below are built once at package init and shared,
// read-only, by every parse. Each top-level construct is a named rule; the
// parse driver in parser.go wraps them in top-level recovery.

// Synchronization sets, chosen per nesting level. Top-level recovery scans
// for the next item-start keyword; body-level recovery additionally stops
// at the body's own close brace (nesting-counted) and at statement starts,
// so one bad statement never drops the rest of the body.
var (
	topLevelSync = newSyncSet(false, TokenDefine, TokenInclude, TokenImport)
	bodySync     = newSyncSet(true, TokenOpcode, TokenIdent, TokenBuiltin, TokenHex, TokenLAngle)
	tableSync    = newSyncSet(true, TokenIdent)
	codeSync     = newSyncSet(true, TokenHex)
	paramSync    = newSyncSet(false, TokenTypeName, TokenLBracket, TokenRParen)
	tupleSync    = newSyncSet(false, TokenTypeName, TokenLBracket, TokenRBracket)
	slotSync     = newSyncSet(true, TokenIdent)
	objectSync   = newSyncSet(true, TokenStorage, TokenCode)
)

var (
	identifier    = leaf(KindIdentifier, TokenIdent)
	hexLiteral    = leaf(KindHexLiteral, TokenHex)
	numberLiteral = leaf(KindNumberLiteral, TokenNumber)
	stringLiteral = leaf(KindStringLiteral, TokenString)
)

// topLevelItem is the entry rule applied repeatedly by the parse driver.
var topLevelItem = choice(
	importRule,
	constantRule,
	macroRule,
	functionRule,
	eventRule,
	errorRule,
	jumpTableRule,
	codeTableRule,
	objectRule,
)

// import: "#include"/"import" string-literal-path
var importRule = group(KindImport, seq(
	choice(tok(TokenInclude), tok(TokenImport)),
	stringLiteral,
))

// constant: #define constant ident = (hex | FREE_STORAGE_POINTER())
var constantRule = group(KindConstant, seq(
	tok(TokenDefine),
	tok(TokenConstant),
	identifier,
	tok(TokenAssign),
	choice(
		hexLiteral,
		group(KindFreeStoragePointer, seq(tok(TokenFreeStoragePointer), tok(TokenLParen), tok(TokenRParen))),
	),
))

// macro/fn: #define (macro|fn) ident(params) = takes(n)? returns(n)? { body }
var macroRule = group(KindMacro, seq(
	tok(TokenDefine),
	choice(tok(TokenMacro), tok(TokenFn)),
	identifier,
	macroParams,
	tok(TokenAssign),
	opt(group(KindTakesClause, seq(tok(TokenTakes), tok(TokenLParen), opt(numberLiteral), tok(TokenRParen)))),
	opt(group(KindReturnsClause, seq(tok(TokenReturns), tok(TokenLParen), opt(numberLiteral), tok(TokenRParen)))),
	statementBody,
))

var macroParams = group(KindParams, seq(
	tok(TokenLParen),
	many(seq(leaf(KindParam, TokenIdent), opt(tok(TokenComma)))),
	tok(TokenRParen),
))

// statementBody is a brace-delimited repetition over the statement choice,
// each iteration individually recoverable against the body sync set. A
// missing close brace at end of input is implicitly closed by closeBrace.
var statementBody = seq(
	tok(TokenLBrace),
	many(recoverWith(statement, bodySync)),
	closeBrace(),
)

// statement: opcode | macro invocation | builtin invocation | <arg> |
// label definition | label reference | literal push. Invocation is tried
// before label forms so "NAME(" never parses as a label reference.
var statement = choice(
	group(KindMacroInvocation, seq(identifier, tok(TokenLParen), callArgs, tok(TokenRParen))),
	group(KindLabelDef, seq(identifier, tok(TokenColon))),
	leaf(KindLabelRef, TokenIdent),
	leaf(KindOpcodeStmt, TokenOpcode),
	leaf(KindLiteralPush, TokenHex),
	group(KindBuiltinInvocation, seq(leaf(KindIdentifier, TokenBuiltin), tok(TokenLParen), callArgs, tok(TokenRParen))),
	group(KindArgReference, seq(tok(TokenLAngle), identifier, tok(TokenRAngle))),
)

// callArgs: idents and literals separated by optional commas.
var callArgs = many(seq(
	choice(identifier, hexLiteral, numberLiteral, group(KindArgReference, seq(tok(TokenLAngle), identifier, tok(TokenRAngle)))),
	opt(tok(TokenComma)),
))

// jump table: #define jumptable[packed] ident (())=? { label refs }
var jumpTableRule = group(KindJumpTable, seq(
	tok(TokenDefine),
	choice(tok(TokenJumpTable), tok(TokenJumpTablePacked)),
	identifier,
	opt(seq(tok(TokenLParen), tok(TokenRParen), opt(tok(TokenAssign)))),
	tok(TokenLBrace),
	many(recoverWith(leaf(KindTableEntry, TokenIdent), tableSync)),
	closeBrace(),
))

// code table: #define codetable ident { hex bytes }
var codeTableRule = group(KindCodeTable, seq(
	tok(TokenDefine),
	tok(TokenCodeTable),
	identifier,
	opt(seq(tok(TokenLParen), tok(TokenRParen), opt(tok(TokenAssign)))),
	tok(TokenLBrace),
	many(recoverWith(leaf(KindCodeEntry, TokenHex), codeSync)),
	closeBrace(),
))

// ABI interface definitions. Arity and type-width checking is semantic
// analysis; here the shapes only need to parse and recover.
var functionRule = group(KindFunction, seq(
	tok(TokenDefine),
	tok(TokenFunction),
	identifier,
	abiParamList,
	opt(visibility),
	opt(group(KindReturnTypes, seq(tok(TokenReturns), abiParamList))),
))

var eventRule = group(KindEvent, seq(
	tok(TokenDefine),
	tok(TokenEvent),
	identifier,
	group(KindParams, seq(
		tok(TokenLParen),
		many(recoverWith(seq(eventParam, opt(tok(TokenComma))), paramSync)),
		tok(TokenRParen),
	)),
))

var errorRule = group(KindErrorDef, seq(
	tok(TokenDefine),
	tok(TokenErrorKw),
	identifier,
	abiParamList,
))

var visibility = choice(
	leaf(KindVisibility, TokenView),
	leaf(KindVisibility, TokenPure),
	leaf(KindVisibility, TokenPayable),
	leaf(KindVisibility, TokenNonPayable),
)

// abiParamList: parenthesized, comma-separated parameters. A malformed
// entry recovers at the next type name or the closing parenthesis, so one
// bad parameter does not invalidate the list.
var abiParamList = group(KindParams, seq(
	tok(TokenLParen),
	many(recoverWith(seq(abiParam, opt(tok(TokenComma))), paramSync)),
	tok(TokenRParen),
))

var abiParam = group(KindParam, seq(
	typeExprRef,
	opt(choice(tok(TokenCalldata), tok(TokenMemory), tok(TokenStorage))),
	opt(identifier),
))

var eventParam = group(KindParam, seq(
	typeExprRef,
	opt(tok(TokenIndexed)),
	opt(identifier),
))

// typeExpr: a primitive type name with optional array suffixes, or a
// bracketed tuple of types. Malformed tuple entries recover at the next
// type name or the closing bracket. The rule is self-recursive, so it is
// assigned in init and every other rule reaches it through typeExprRef.
var typeExpr rule

func typeExprRef(m *machine, pos int) ruleResult {
	return typeExpr(m, pos)
}

func init() {
	typeExpr = choice(
		group(KindTypeName, seq(
			typeName,
			many(arraySuffix),
		)),
		group(KindTypeTuple, seq(
			tok(TokenLBracket),
			many(recoverWith(seq(typeExprRef, opt(tok(TokenComma))), tupleSync)),
			tok(TokenRBracket),
		)),
	)
}

// typeName matches a primitive ABI type name in type position. "address"
// doubles as an opcode mnemonic and lexes as TokenOpcode, so type position
// also accepts an opcode token whose lexeme names an ABI type.
func typeName(m *machine, pos int) ruleResult {
	t := m.at(pos)
	if t.Kind == TokenTypeName || (t.Kind == TokenOpcode && isEVMTypeName(t.Lexeme)) {
		return succeed(pos+1, &Node{Kind: KindTypeName, Span: t.Span, Token: &t})
	}
	return failAt(pos, TokenTypeName)
}

var arraySuffix = seq(tok(TokenLBracket), opt(numberLiteral), tok(TokenRBracket))

// object: #define object ident { storage {...} / code {...} sub-bodies }
var objectRule = group(KindObjectDef, seq(
	tok(TokenDefine),
	tok(TokenObject),
	identifier,
	tok(TokenLBrace),
	many(recoverWith(objectItem, objectSync)),
	closeBrace(),
))

var objectItem = choice(
	group(KindStorageBody, seq(
		tok(TokenStorage),
		tok(TokenLBrace),
		many(recoverWith(storageSlot, slotSync)),
		closeBrace(),
	)),
	group(KindCodeBody, seq(
		tok(TokenCode),
		statementBody,
	)),
)

var storageSlot = group(KindStorageSlot, seq(
	identifier,
	opt(seq(tok(TokenAssign), hexLiteral)),
))
