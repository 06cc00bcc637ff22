package rank

import (
	"reflect"
	"testing"

	"github.com/fireflyai/essaylytics/models"
	"github.com/fireflyai/essaylytics/pkg/frequency"
	"github.com/fireflyai/essaylytics/pkg/tokenizer"
)

func tableFor(text string) *frequency.Table {
	return frequency.Count(tokenizer.Tokenize(text))
}

func TestTopN(t *testing.T) {
	table := tableFor("the cat sat on the mat the cat ran")

	got := TopN(table, 2)
	want := []models.WordCount{
		{Word: "the", Count: 3},
		{Word: "cat", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopN(2) = %v, want %v", got, want)
	}
}

func TestTopN_CaseFoldedPunctuation(t *testing.T) {
	table := tableFor("Hello, hello! HELLO.")

	got := TopN(table, 1)
	want := []models.WordCount{{Word: "hello", Count: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopN(1) = %v, want %v", got, want)
	}
}

func TestTopN_EmptyInput(t *testing.T) {
	got := TopN(tableFor(""), 5)
	if len(got) != 0 {
		t.Errorf("TopN on empty input = %v, want empty", got)
	}
}

func TestTopN_ClampsNonPositiveN(t *testing.T) {
	table := tableFor("alpha beta gamma")
	for _, n := range []int{0, -1, -100} {
		if got := TopN(table, n); len(got) != 0 {
			t.Errorf("TopN(%d) = %v, want empty", n, got)
		}
	}
}

func TestTopN_NExceedsDistinct(t *testing.T) {
	table := tableFor("alpha beta beta")

	got := TopN(table, 100)
	want := []models.WordCount{
		{Word: "beta", Count: 2},
		{Word: "alpha", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopN(100) = %v, want %v", got, want)
	}
}

func TestTopN_ResultLength(t *testing.T) {
	table := tableFor("a b c d e a b c a b a") // 5 distinct
	for n := 0; n <= 8; n++ {
		want := n
		if want > 5 {
			want = 5
		}
		if got := len(TopN(table, n)); got != want {
			t.Errorf("len(TopN(%d)) = %d, want %d", n, got, want)
		}
	}
}

func TestTopN_TieBreakByFirstOccurrence(t *testing.T) {
	// zebra appears before apple; equal counts must keep input order.
	table := tableFor("zebra apple zebra apple mango")

	got := TopN(table, 3)
	want := []models.WordCount{
		{Word: "zebra", Count: 2},
		{Word: "apple", Count: 2},
		{Word: "mango", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopN(3) = %v, want %v", got, want)
	}
}

func TestTopN_Deterministic(t *testing.T) {
	text := "one two three two three three four four four four"
	for i := 0; i < 20; i++ {
		first := TopN(tableFor(text), 4)
		second := TopN(tableFor(text), 4)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("TopN not deterministic: %v vs %v", first, second)
		}
	}
}

func TestTopN_ReorderingPreservesMultiset(t *testing.T) {
	a := TopN(tableFor("cat dog cat bird dog cat"), 10)
	b := TopN(tableFor("dog cat bird cat dog cat"), 10)

	counts := func(wc []models.WordCount) map[string]int {
		m := make(map[string]int)
		for _, e := range wc {
			m[e.Word] = e.Count
		}
		return m
	}
	if !reflect.DeepEqual(counts(a), counts(b)) {
		t.Errorf("reordering input changed the count multiset: %v vs %v", a, b)
	}
}

func TestTopN_NilTable(t *testing.T) {
	if got := TopN(nil, 3); len(got) != 0 {
		t.Errorf("TopN(nil) = %v, want empty", got)
	}
}
