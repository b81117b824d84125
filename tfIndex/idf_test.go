package tfIndex

import (
	"math"
	"testing"
)

func fourDocCorpus() *Corpus {
	corpus := NewCorpus()
	corpus.Update("1.pdf", "comun raro")
	corpus.Update("2.pdf", "comun raro raro")
	corpus.Update("3.pdf", "comun")
	corpus.Update("4.pdf", "comun unico")
	return corpus
}

func TestComputeIDF(t *testing.T) {
	idf := fourDocCorpus().ComputeIDF()

	tests := []struct {
		token string
		want  float64
	}{
		{"raro", math.Log(2)},
		{"comun", 0},
		{"unico", math.Log(4)},
	}
	for _, tt := range tests {
		got, ok := idf.Lookup(tt.token)
		if !ok {
			t.Fatalf("expected %q in idf table", tt.token)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("idf(%q) = %f, want %f", tt.token, got, tt.want)
		}
	}
	if got, _ := idf.Lookup("raro"); math.Abs(got-0.693) > 1e-3 {
		t.Errorf("expected idf(raro) ~ 0.693, got %f", got)
	}
	if len(idf) != 3 {
		t.Errorf("expected 3 terms, got %d: %v", len(idf), idf)
	}
}

func TestComputeIDFBounds(t *testing.T) {
	corpus := fourDocCorpus()
	n := uint(corpus.DocumentCount())
	for token, score := range corpus.ComputeIDF() {
		df := corpus.DF(token)
		if df < 1 || df > n {
			t.Errorf("df(%q) = %d out of [1, %d]", token, df, n)
		}
		if score < 0 {
			t.Errorf("idf(%q) = %f is negative", token, score)
		}
	}
}

func TestIDFAbsentTerm(t *testing.T) {
	corpus := fourDocCorpus()
	if _, ok := corpus.ComputeIDF().Lookup("ausente"); ok {
		t.Errorf("expected absent term to be missing from idf table")
	}
	if _, ok := corpus.IDF("ausente"); ok {
		t.Errorf("expected IDF of absent term to report !ok")
	}
	got, ok := corpus.IDF("raro")
	if !ok || math.Abs(got-math.Log(2)) > 1e-12 {
		t.Errorf("IDF(raro) = %f, %v", got, ok)
	}
}

func TestComputeIDFEmptyCorpus(t *testing.T) {
	if idf := NewCorpus().ComputeIDF(); len(idf) != 0 {
		t.Errorf("expected empty idf table, got %v", idf)
	}
}
