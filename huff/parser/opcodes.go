package parser

import "strconv"

// The EVM opcode mnemonics recognized inside macro bodies. Identifiers that
// match one of these lex as TokenOpcode instead of TokenIdent.
var baseOpcodes = [...]string{
	"stop", "add", "mul", "sub", "div", "sdiv", "mod", "smod",
	"addmod", "mulmod", "exp", "signextend",
	"lt", "gt", "slt", "sgt", "eq", "iszero",
	"and", "or", "xor", "not", "byte", "shl", "shr", "sar",
	"sha3",
	"address", "balance", "origin", "caller", "callvalue",
	"calldataload", "calldatasize", "calldatacopy",
	"codesize", "codecopy", "gasprice",
	"extcodesize", "extcodecopy", "returndatasize", "returndatacopy", "extcodehash",
	"blockhash", "coinbase", "timestamp", "number", "difficulty", "prevrandao",
	"gaslimit", "chainid", "selfbalance", "basefee",
	"pop", "mload", "mstore", "mstore8", "sload", "sstore",
	"jump", "jumpi", "pc", "msize", "gas", "jumpdest",
	"tload", "tstore",
	"log0", "log1", "log2", "log3", "log4",
	"create", "call", "callcode", "return", "delegatecall",
	"create2", "staticcall", "revert", "invalid", "selfdestruct",
}

var opcodeSet = buildOpcodeSet()

func buildOpcodeSet() map[string]bool {
	set := make(map[string]bool, 146)
	for _, name := range baseOpcodes {
		set[name] = true
	}
	for n := 1; n <= 32; n++ {
		set["push"+strconv.Itoa(n)] = true
	}
	for n := 1; n <= 16; n++ {
		set["dup"+strconv.Itoa(n)] = true
		set["swap"+strconv.Itoa(n)] = true
	}
	return set
}

// IsOpcode reports whether name is an EVM opcode mnemonic.
func IsOpcode(name string) bool {
	return opcodeSet[name]
}
