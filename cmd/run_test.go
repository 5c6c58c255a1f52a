package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func resetRunFlags(t *testing.T) {
	t.Helper()
	word = ""
	wordsFile = ""
	runCmd.Flags().Lookup("word").Changed = false
	runCmd.Flags().Lookup("words-file").Changed = false
}

func TestCollectWords_ExplicitWordFlag(t *testing.T) {
	// GIVEN --word was set on the command
	resetRunFlags(t)
	if err := runCmd.Flags().Set("word", "aabb"); err != nil {
		t.Fatalf("set --word: %v", err)
	}

	// WHEN words are collected from the passed-in command
	words, err := collectWords(runCmd)
	if err != nil {
		t.Fatalf("collectWords: %v", err)
	}

	// THEN the flag value is the single input word
	if len(words) != 1 || words[0] != "aabb" {
		t.Errorf("collectWords: got %v, want [aabb]", words)
	}
}

func TestCollectWords_ExplicitEmptyWord(t *testing.T) {
	// GIVEN --word "" was passed explicitly
	resetRunFlags(t)
	if err := runCmd.Flags().Set("word", ""); err != nil {
		t.Fatalf("set --word: %v", err)
	}

	// WHEN words are collected
	words, err := collectWords(runCmd)
	if err != nil {
		t.Fatalf("collectWords: %v", err)
	}

	// THEN the empty word is simulated rather than treated as "no input"
	if len(words) != 1 || words[0] != "" {
		t.Errorf("collectWords: got %v, want one empty word", words)
	}
}

func TestCollectWords_UnsetWordFlagYieldsNothing(t *testing.T) {
	// GIVEN neither --word nor --words-file was set
	resetRunFlags(t)

	// WHEN words are collected
	words, err := collectWords(runCmd)
	if err != nil {
		t.Fatalf("collectWords: %v", err)
	}

	// THEN no words are produced (the run command errors out separately)
	if len(words) != 0 {
		t.Errorf("collectWords: got %v, want none", words)
	}
}

func TestCollectWords_WordsFile(t *testing.T) {
	// GIVEN a words file with two words and a blank line (the empty word)
	resetRunFlags(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("ab\n\naabb\n"), 0o644); err != nil {
		t.Fatalf("write words file: %v", err)
	}
	wordsFile = path

	// WHEN words are collected
	words, err := collectWords(runCmd)
	if err != nil {
		t.Fatalf("collectWords: %v", err)
	}

	// THEN every line is one input word, blanks included
	want := []string{"ab", "", "aabb"}
	if len(words) != len(want) {
		t.Fatalf("collectWords: got %d words %v, want %d", len(words), words, len(want))
	}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("words[%d]: got %q, want %q", i, words[i], w)
		}
	}
}
