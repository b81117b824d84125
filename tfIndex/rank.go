package tfIndex

import "sort"

// Query scores every document as tf(token, doc) * idf(token).
// A token missing from a document or from idf contributes 0.
// Results are ordered by score descending, then by document id ascending.
func Query(corpus *Corpus, idf IDFTable, token string) []QueryResult {
	weight, _ := idf.Lookup(token)
	ret := make([]QueryResult, 0, corpus.DocumentCount())
	for docId, freqMap := range corpus.index {
		ret = append(ret, QueryResult{DocID: docId, Score: float64(freqMap[token]) * weight})
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Score != ret[j].Score {
			return ret[i].Score > ret[j].Score
		}
		return ret[i].DocID < ret[j].DocID
	})
	return ret
}

// QueryTopN keeps at most topN results of Query, dropping documents that scored 0
func QueryTopN(corpus *Corpus, idf IDFTable, token string, topN uint) []QueryResult {
	results := Query(corpus, idf, token)
	n := 0
	for n < len(results) && results[n].Score > 0 {
		n++
	}
	return results[:min(topN, uint(n))]
}

// TopTerms returns the k most frequent words of tf.
// Equal frequencies are ordered by word descending, the order obtained by sorting (frequency, word)
// ascending and reversing the list.
func TopTerms(tf TermFrequencies, k int) []RankedTerm {
	terms := make([]RankedTerm, 0, len(tf))
	for word, freq := range tf {
		terms = append(terms, RankedTerm{Frequency: freq, Word: word})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Frequency != terms[j].Frequency {
			return terms[i].Frequency > terms[j].Frequency
		}
		return terms[i].Word > terms[j].Word
	})
	if k >= 0 && k < len(terms) {
		terms = terms[:k]
	}
	return terms
}
