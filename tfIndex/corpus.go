package tfIndex

import (
	"sort"

	"github.com/exdevutem/api-exdev/tokenizer"
)

// Corpus owns one term frequency table per document id.
// Tables handed to or returned by a Corpus must not be modified afterwards.
type Corpus struct {
	index map[string]TermFrequencies
}

func NewCorpus() *Corpus {
	return &Corpus{index: map[string]TermFrequencies{}}
}

// Insert stores tf for docId, replacing any previous table of that document
func (corpus *Corpus) Insert(docId string, tf TermFrequencies) {
	corpus.index[docId] = tf
}

// Update tokenizes text and stores its table for docId
func (corpus *Corpus) Update(docId string, text string) {
	corpus.Insert(docId, TermFrequencyFrom(tokenizer.WordTokenizerFromString(text)))
}

func (corpus *Corpus) DocumentCount() int {
	return len(corpus.index)
}

// Documents returns the document ids in ascending order
func (corpus *Corpus) Documents() []string {
	docIds := make([]string, 0, len(corpus.index))
	for docId := range corpus.index {
		docIds = append(docIds, docId)
	}
	sort.Strings(docIds)
	return docIds
}

func (corpus *Corpus) Table(docId string) (TermFrequencies, bool) {
	tf, ok := corpus.index[docId]
	return tf, ok
}

func (corpus *Corpus) TF(docId string, token string) uint {
	freqMap, ok := corpus.index[docId]
	if !ok {
		return 0
	}
	return freqMap[token]
}

// DF counts the documents containing token at least once
func (corpus *Corpus) DF(token string) uint {
	df := uint(0)
	for _, freqMap := range corpus.index {
		if freqMap[token] > 0 {
			df++
		}
	}
	return df
}

// GlobalFrequencies sums the frequencies of every token across all documents
func (corpus *Corpus) GlobalFrequencies() TermFrequencies {
	ret := TermFrequencies{}
	for _, freqMap := range corpus.index {
		for token, freq := range freqMap {
			if freq > 0 {
				ret[token] += freq
			}
		}
	}
	return ret
}
