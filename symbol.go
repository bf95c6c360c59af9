package huffman

// Symbol represents a symbol in an arbitrary alphabet.  Symbols are
// rune-valued; negative symbols are not valid.
type Symbol rune

// InvalidSymbol marks the interior nodes of a code tree, which carry no
// symbol of their own.  It is never matched against real input.
const InvalidSymbol = Symbol(-1)
