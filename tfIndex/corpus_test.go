package tfIndex

import (
	"reflect"
	"testing"

	"github.com/exdevutem/api-exdev/tokenizer"
)

func TestTermFrequency(t *testing.T) {
	got := TermFrequency([]string{"este", "es", "este", "parrafo", "es", "este"})
	want := TermFrequencies{"este": 3, "es": 2, "parrafo": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TermFrequency = %v, want %v", got, want)
	}
}

func TestTermFrequencyFrom(t *testing.T) {
	tok := tokenizer.WordTokenizerFromString("Este es un parrafo.\nEste es otro parra-\nfo, que es acortado.")
	got := TermFrequencyFrom(tok)
	if got["parrafo"] != 2 {
		t.Errorf("expected parrafo=2, got %d", got["parrafo"])
	}
	if got["es"] != 3 {
		t.Errorf("expected es=3, got %d", got["es"])
	}
	if _, ok := got["fo"]; ok {
		t.Errorf("hyphenated word should have been joined, got %v", got)
	}
	if tok.Contains() {
		t.Errorf("expected tokenizer to be drained")
	}
}

func TestCorpusInsertReplaces(t *testing.T) {
	corpus := NewCorpus()
	corpus.Insert("a.pdf", TermFrequencies{"alfa": 2, "beta": 1})
	corpus.Insert("a.pdf", TermFrequencies{"gamma": 4})

	if corpus.DocumentCount() != 1 {
		t.Fatalf("expected 1 document, got %d", corpus.DocumentCount())
	}
	if corpus.TF("a.pdf", "alfa") != 0 {
		t.Errorf("expected previous table to be replaced, alfa=%d", corpus.TF("a.pdf", "alfa"))
	}
	if corpus.TF("a.pdf", "gamma") != 4 {
		t.Errorf("expected gamma=4, got %d", corpus.TF("a.pdf", "gamma"))
	}
}

func TestCorpusDFCountsDocuments(t *testing.T) {
	corpus := NewCorpus()
	corpus.Insert("a", TermFrequencies{"alfa": 10})
	corpus.Insert("b", TermFrequencies{"alfa": 1, "beta": 3})
	corpus.Insert("c", TermFrequencies{"beta": 1, "ghost": 0})

	tests := []struct {
		token string
		want  uint
	}{
		{"alfa", 2},
		{"beta", 2},
		{"ghost", 0},
		{"missing", 0},
	}
	for _, tt := range tests {
		if got := corpus.DF(tt.token); got != tt.want {
			t.Errorf("DF(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}

func TestCorpusDocumentsSorted(t *testing.T) {
	corpus := NewCorpus()
	for _, id := range []string{"c", "a", "b"} {
		corpus.Update(id, "hola")
	}
	got := corpus.Documents()
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Documents = %v", got)
	}
	if _, ok := corpus.Table("z"); ok {
		t.Errorf("expected no table for unknown document")
	}
	if corpus.TF("z", "hola") != 0 {
		t.Errorf("expected 0 tf for unknown document")
	}
}

func TestCorpusGlobalFrequencies(t *testing.T) {
	corpus := NewCorpus()
	corpus.Update("a", "uno dos dos")
	corpus.Update("b", "dos tres 42")

	got := corpus.GlobalFrequencies()
	want := TermFrequencies{"uno": 1, "dos": 3, "tres": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GlobalFrequencies = %v, want %v", got, want)
	}
}
