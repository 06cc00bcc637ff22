package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain words",
			text: "the cat sat on the mat",
			want: []string{"the", "cat", "sat", "on", "the", "mat"},
		},
		{
			name: "case folding and punctuation",
			text: "Hello, hello! HELLO.",
			want: []string{"hello", "hello", "hello"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "  \t\n  ",
			want: nil,
		},
		{
			name: "numbers and single characters are tokens",
			text: "a 1 42nd",
			want: []string{"a", "1", "42nd"},
		},
		{
			name: "punctuation runs as separators",
			text: "semi-structured...data?!yes",
			want: []string{"semi", "structured", "data", "yes"},
		},
		{
			name: "unicode letters",
			text: "Café CAFÉ café",
			want: []string{"café", "café", "café"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenize_Restartable(t *testing.T) {
	text := "Hello, hello! HELLO."
	first := Tokenize(text)
	second := Tokenize(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Tokenize is not deterministic: %v vs %v", first, second)
	}
}

func TestAnalyze_Stopwords(t *testing.T) {
	got := Analyze("the cat sat on the mat", Options{Stopwords: true})
	want := []string{"cat", "sat", "mat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze() = %v, want %v", got, want)
	}
}

func TestAnalyze_MinLength(t *testing.T) {
	got := Analyze("a be cat dogs", Options{MinLength: 3})
	want := []string{"cat", "dogs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze() = %v, want %v", got, want)
	}
}

func TestAnalyze_Stemming(t *testing.T) {
	got := Analyze("running runs", Options{Stem: true})
	want := []string{"run", "run"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze() = %v, want %v", got, want)
	}
}

func TestAnalyze_Dictionary(t *testing.T) {
	dict := map[string]struct{}{"apple": {}, "banana": {}, "cherry": {}}
	got := Analyze("apple banana cherry date", Options{Dictionary: dict})
	want := []string{"apple", "banana", "cherry"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze() = %v, want %v", got, want)
	}
}

func TestAnalyze_NoFiltersKeepsEverything(t *testing.T) {
	got := Analyze("the the the", Options{})
	if len(got) != 3 {
		t.Errorf("Analyze() with no filters dropped tokens: %v", got)
	}
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("the") {
		t.Error(`IsStopword("the") = false, want true`)
	}
	if IsStopword("cat") {
		t.Error(`IsStopword("cat") = true, want false`)
	}
}
