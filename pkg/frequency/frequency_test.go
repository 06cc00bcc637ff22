package frequency

import (
	"testing"

	"github.com/fireflyai/essaylytics/pkg/tokenizer"
)

func TestCount(t *testing.T) {
	table := Count([]string{"the", "cat", "sat", "on", "the", "mat", "the", "cat", "ran"})

	if got := table.Get("the"); got != 3 {
		t.Errorf(`Get("the") = %d, want 3`, got)
	}
	if got := table.Get("cat"); got != 2 {
		t.Errorf(`Get("cat") = %d, want 2`, got)
	}
	if got := table.Get("missing"); got != 0 {
		t.Errorf(`Get("missing") = %d, want 0`, got)
	}
	if got := table.Distinct(); got != 6 {
		t.Errorf("Distinct() = %d, want 6", got)
	}
}

func TestCount_TotalEqualsTokenCount(t *testing.T) {
	texts := []string{
		"the cat sat on the mat the cat ran",
		"Hello, hello! HELLO.",
		"",
		"a 1 42nd a a",
	}
	for _, text := range texts {
		tokens := tokenizer.Tokenize(text)
		table := Count(tokens)

		if table.Total() != len(tokens) {
			t.Errorf("Total() = %d, want %d for %q", table.Total(), len(tokens), text)
		}

		sum := 0
		for _, e := range table.Entries() {
			sum += e.Count
		}
		if sum != len(tokens) {
			t.Errorf("sum of counts = %d, want %d for %q", sum, len(tokens), text)
		}
	}
}

func TestCount_FirstSeen(t *testing.T) {
	table := Count([]string{"cat", "mat", "cat", "sat"})

	tests := []struct {
		token string
		want  int
	}{
		{"cat", 0},
		{"mat", 1},
		{"sat", 3},
	}
	for _, tt := range tests {
		got, ok := table.FirstSeen(tt.token)
		if !ok {
			t.Fatalf("FirstSeen(%q) not found", tt.token)
		}
		if got != tt.want {
			t.Errorf("FirstSeen(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}

	if _, ok := table.FirstSeen("dog"); ok {
		t.Error(`FirstSeen("dog") found, want absent`)
	}
}

func TestCount_Empty(t *testing.T) {
	table := Count(nil)
	if table.Total() != 0 || table.Distinct() != 0 {
		t.Errorf("empty table: Total() = %d, Distinct() = %d, want 0, 0", table.Total(), table.Distinct())
	}
	if len(table.Entries()) != 0 {
		t.Errorf("empty table has entries: %v", table.Entries())
	}
}

func TestMerge(t *testing.T) {
	a := Count([]string{"apple", "banana", "apple"}) // 3 tokens
	b := Count([]string{"cherry", "apple"})          // 2 tokens

	merged := Merge(a, b)

	if got := merged.Get("apple"); got != 3 {
		t.Errorf(`merged Get("apple") = %d, want 3`, got)
	}
	if got := merged.Total(); got != 5 {
		t.Errorf("merged Total() = %d, want 5", got)
	}

	// cherry appears first in document b, offset by a's 3 tokens.
	first, ok := merged.FirstSeen("cherry")
	if !ok || first != 3 {
		t.Errorf(`merged FirstSeen("cherry") = %d, %v, want 3, true`, first, ok)
	}
	// apple keeps its first-document index.
	first, ok = merged.FirstSeen("apple")
	if !ok || first != 0 {
		t.Errorf(`merged FirstSeen("apple") = %d, %v, want 0, true`, first, ok)
	}
}

func TestMerge_NilAndEmpty(t *testing.T) {
	merged := Merge(nil, Count(nil), Count([]string{"x"}))
	if merged.Total() != 1 || merged.Get("x") != 1 {
		t.Errorf("Merge with nil/empty inputs: Total() = %d, Get(x) = %d", merged.Total(), merged.Get("x"))
	}
}
