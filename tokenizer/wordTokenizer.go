package tokenizer

import (
	"strings"
	"unicode"
)

// WordTokenizer for parsing lowercase alphabetic words from document text.
//
// The buffer is split into chunks delimited by a space, every non letter rune of a chunk is dropped and the
// rest is lowercased. Chunks left empty are skipped. Tokens are built into new strings, so they stay valid
// regardless of what happens to the text the tokenizer was created from.
type WordTokenizer struct {
	content    string
	pending    string
	hasPending bool
}

// Construct WordTokenizer from raw document text
func WordTokenizerFromString(text string) *WordTokenizer {
	return &WordTokenizer{content: strings.TrimSpace(Preprocess(text))}
}

// Preprocess rejoins words wrapped with a hyphen at a line break, then turns the remaining line breaks into spaces
func Preprocess(text string) string {
	text = strings.ReplaceAll(text, "-\r\n", "")
	text = strings.ReplaceAll(text, "-\n", "")
	text = strings.ReplaceAll(text, "\r\n", " ")
	return strings.ReplaceAll(text, "\n", " ")
}

// Normalize keeps only the letters of chunk, lowercased. Returns "" when chunk has no letters
func Normalize(chunk string) string {
	var sb strings.Builder
	for _, r := range chunk {
		if unicode.IsLetter(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}

// Trim whitespaces from left
func (wordTokenizer *WordTokenizer) TrimLeft() {
	wordTokenizer.content = strings.TrimLeftFunc(wordTokenizer.content, unicode.IsSpace)
}

// Chop the next space delimited chunk from left
func (wordTokenizer *WordTokenizer) ChopChunk() string {
	n := strings.IndexByte(wordTokenizer.content, ' ')
	if n < 0 {
		n = len(wordTokenizer.content)
	}
	chunk := wordTokenizer.content[:n]
	wordTokenizer.content = wordTokenizer.content[n:]
	return chunk
}

// advance chops chunks until one of them yields a token or the buffer runs out
func (wordTokenizer *WordTokenizer) advance() {
	for !wordTokenizer.hasPending {
		wordTokenizer.TrimLeft()
		if len(wordTokenizer.content) == 0 {
			return
		}
		if token := Normalize(wordTokenizer.ChopChunk()); token != "" {
			wordTokenizer.pending = token
			wordTokenizer.hasPending = true
		}
	}
}

// Checks if the wordTokenizer still contain tokens
func (wordTokenizer *WordTokenizer) Contains() bool {
	wordTokenizer.advance()
	return wordTokenizer.hasPending
}

// Returns next token from the wordTokenizer, "" once the tokens are exhausted
func (wordTokenizer *WordTokenizer) NextToken() string {
	wordTokenizer.advance()
	token := wordTokenizer.pending
	wordTokenizer.pending = ""
	wordTokenizer.hasPending = false
	return token
}

func (wordTokenizer *WordTokenizer) Tokens() []string {
	ret := []string{}
	for wordTokenizer.Contains() {
		ret = append(ret, wordTokenizer.NextToken())
	}
	return ret
}
