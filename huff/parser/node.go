package parser

type NodeKind int

const (
	KindError NodeKind = iota

	KindRoot

	// Top-level items
	KindMacro
	KindFunction
	KindEvent
	KindErrorDef
	KindConstant
	KindJumpTable
	KindCodeTable
	KindImport
	KindObjectDef

	// Declaration components
	KindParams
	KindParam
	KindTakesClause
	KindReturnsClause
	KindReturnTypes
	KindVisibility
	KindStorageBody
	KindStorageSlot
	KindCodeBody

	// Statements
	KindOpcodeStmt
	KindMacroInvocation
	KindBuiltinInvocation
	KindArgReference
	KindLabelDef
	KindLabelRef
	KindLiteralPush
	KindTableEntry
	KindCodeEntry

	// Expressions
	KindIdentifier
	KindNumberLiteral
	KindHexLiteral
	KindStringLiteral
	KindTypeTuple
	KindTypeName
	KindFreeStoragePointer
)

var nodeKindNames = map[NodeKind]string{
	KindError:              "Error",
	KindRoot:               "Root",
	KindMacro:              "Macro",
	KindFunction:           "Function",
	KindEvent:              "Event",
	KindErrorDef:           "ErrorDef",
	KindConstant:           "Constant",
	KindJumpTable:          "JumpTable",
	KindCodeTable:          "CodeTable",
	KindImport:             "Import",
	KindObjectDef:          "ObjectDef",
	KindParams:             "Params",
	KindParam:              "Param",
	KindTakesClause:        "TakesClause",
	KindReturnsClause:      "ReturnsClause",
	KindReturnTypes:        "ReturnTypes",
	KindVisibility:         "Visibility",
	KindStorageBody:        "StorageBody",
	KindStorageSlot:        "StorageSlot",
	KindCodeBody:           "CodeBody",
	KindOpcodeStmt:         "OpcodeStmt",
	KindMacroInvocation:    "MacroInvocation",
	KindBuiltinInvocation:  "BuiltinInvocation",
	KindArgReference:       "ArgReference",
	KindLabelDef:           "LabelDef",
	KindLabelRef:           "LabelRef",
	KindLiteralPush:        "LiteralPush",
	KindTableEntry:         "TableEntry",
	KindCodeEntry:          "CodeEntry",
	KindIdentifier:         "Identifier",
	KindNumberLiteral:      "NumberLiteral",
	KindHexLiteral:         "HexLiteral",
	KindStringLiteral:      "StringLiteral",
	KindTypeTuple:          "TypeTuple",
	KindTypeName:           "TypeName",
	KindFreeStoragePointer: "FreeStoragePointer",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ErrorInfo describes a recovery event attached to an error node: the
// token kinds that were expected at the failure point.
type ErrorInfo struct {
	Message  string
	Expected []TokenKind
}

// Node is a best-effort syntax tree node. Every node covers a span of the
// source; Partial is true when the node or any descendant contains an
// error node.
type Node struct {
	Kind     NodeKind
	Span     Span
	Partial  bool
	Children []*Node
	Token    *Token
	Err      *ErrorInfo
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
		if child.IsError() || child.Partial {
			n.Partial = true
		}
	}
}

func (n *Node) IsError() bool {
	return n.Kind == KindError
}

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// Name returns the identifier naming a declaration node, or "".
func (n *Node) Name() string {
	if ident := n.FirstChildOfKind(KindIdentifier); ident != nil {
		return ident.TokenLexeme()
	}
	return ""
}

func (n *Node) TokenLexeme() string {
	if n.Token != nil {
		return n.Token.Lexeme
	}
	return ""
}

func (n *Node) String() string {
	return n.stringIndent(0)
}

func (n *Node) stringIndent(indent int) string {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	result := prefix + n.Kind.String()
	if n.Token != nil {
		result += " " + n.Token.Lexeme
	}
	if n.Partial {
		result += " (partial)"
	}
	if n.Err != nil {
		result += " ERROR: " + n.Err.Message
	}
	result += "\n"

	for _, child := range n.Children {
		result += child.stringIndent(indent + 1)
	}
	return result
}
