package fileContents

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrNoPages         = errors.New("document has no pages")
	ErrEmptyPage       = errors.New("page yields no text")
)

// ExtractionError reports a document whose text could not be extracted.
// It never aborts a run, the document is left out of the corpus.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("cannot extract `%s`: %s", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
