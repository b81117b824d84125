package tfIndex

import "math"

// IDFTable maps every token present in at least one document to ln(N / df)
type IDFTable map[string]float64

// Lookup reports the idf of token and whether the token occurs anywhere in the corpus
func (table IDFTable) Lookup(token string) (float64, bool) {
	idf, ok := table[token]
	return idf, ok
}

// ComputeIDF builds the IDFTable of the current documents. It is recomputed in full on every call.
func (corpus *Corpus) ComputeIDF() IDFTable {
	dfs := map[string]uint{}
	for _, freqMap := range corpus.index {
		for token, freq := range freqMap {
			if freq > 0 {
				dfs[token]++
			}
		}
	}
	numer := float64(corpus.DocumentCount())
	table := make(IDFTable, len(dfs))
	for token, df := range dfs {
		table[token] = math.Log(numer / float64(df))
	}
	return table
}

// IDF computes the idf of a single token. ok is false when no document contains it.
func (corpus *Corpus) IDF(token string) (idf float64, ok bool) {
	denom := corpus.DF(token)
	if denom == 0 {
		return 0, false
	}
	return math.Log(float64(corpus.DocumentCount()) / float64(denom)), true
}
