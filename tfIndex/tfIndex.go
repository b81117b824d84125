// Package tfIndex holds per-document term frequency tables and ranks documents and terms with them.
package tfIndex

import "github.com/exdevutem/api-exdev/tokenizer"

// TermFrequencies maps a token to its number of occurrences in one document.
// Absent tokens have frequency 0.
type TermFrequencies = map[string]uint

type QueryResult struct {
	DocID string
	Score float64
}

// RankedTerm pairs a word with its frequency for top terms listings
type RankedTerm struct {
	Frequency uint
	Word      string
}

func TermFrequency(tokens []string) TermFrequencies {
	ret := TermFrequencies{}
	for _, token := range tokens {
		ret[token] += 1
	}
	return ret
}

// TermFrequencyFrom drains tok and counts every token it yields
func TermFrequencyFrom(tok tokenizer.Tokenizer) TermFrequencies {
	ret := TermFrequencies{}
	for tok.Contains() {
		ret[tok.NextToken()] += 1
	}
	return ret
}
