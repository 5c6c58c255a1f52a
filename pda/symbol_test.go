package pda

import "testing"

func TestSplitSymbols(t *testing.T) {
	// GIVEN the word "ab"
	// WHEN it is split
	got := SplitSymbols("ab")

	// THEN each rune becomes one symbol
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SplitSymbols(ab): got %v, want [a b]", got)
	}

	if n := len(SplitSymbols("")); n != 0 {
		t.Errorf("SplitSymbols of empty word: got %d symbols, want 0", n)
	}
}

func TestNormalizeSymbol(t *testing.T) {
	if NormalizeSymbol("ε") != Epsilon {
		t.Error("the spelled-out epsilon literal must normalize to Epsilon")
	}
	if NormalizeSymbol("") != Epsilon {
		t.Error("the empty string is already Epsilon")
	}
	if NormalizeSymbol("a") != "a" {
		t.Error("ordinary symbols must pass through unchanged")
	}
}

func TestJoinSymbols_RoundTrip(t *testing.T) {
	word := "aab"
	if got := JoinSymbols(SplitSymbols(word)); got != word {
		t.Errorf("JoinSymbols(SplitSymbols(%q)): got %q", word, got)
	}
}

func TestStatus_CurrentSymbolTracksCursor(t *testing.T) {
	st := NewStatus("ab")

	if st.CurrentSymbol() != "a" {
		t.Errorf("at index 0: got %q, want a", st.CurrentSymbol())
	}
	st.advance()
	if st.CurrentSymbol() != "b" {
		t.Errorf("at index 1: got %q, want b", st.CurrentSymbol())
	}
	st.advance()
	if st.CurrentSymbol() != Epsilon {
		t.Errorf("at end of word: got %q, want epsilon", st.CurrentSymbol())
	}
	if !st.AtEnd() {
		t.Error("AtEnd: got false at end of word")
	}

	// The cursor never moves past the end.
	st.advance()
	if st.InputIndex != 2 {
		t.Errorf("cursor moved past end of word: index %d", st.InputIndex)
	}
}
