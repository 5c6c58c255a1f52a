package pda

// Symbol is a single input or stack token. Symbols are one rune in
// practice, but short tokens work anywhere a single push is performed.
type Symbol string

const (
	// Epsilon is the empty-symbol sentinel: it consumes no input, pops
	// nothing, and pushes nothing.
	Epsilon Symbol = ""

	// BottomMarker is the reserved stack-bottom sentinel. It is inserted
	// once at initialization and detects an effectively empty stack.
	BottomMarker Symbol = "$"
)

// epsilonLiteral is accepted in definition files as a spelled-out epsilon.
const epsilonLiteral = "ε"

// NormalizeSymbol maps the spelled-out epsilon literal to Epsilon. Any
// other value is returned unchanged.
func NormalizeSymbol(s string) Symbol {
	if s == epsilonLiteral {
		return Epsilon
	}
	return Symbol(s)
}

// SplitSymbols splits a word into its per-rune input symbols. The empty
// word yields an empty slice.
func SplitSymbols(word string) []Symbol {
	symbols := make([]Symbol, 0, len(word))
	for _, r := range word {
		symbols = append(symbols, Symbol(r))
	}
	return symbols
}

// JoinSymbols renders a symbol sequence back into a plain string, useful
// for logging and trace output.
func JoinSymbols(symbols []Symbol) string {
	var out string
	for _, s := range symbols {
		out += string(s)
	}
	return out
}
