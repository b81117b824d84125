package fileContents

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ReadPDF returns the plain text of every page of the document joined by a single space.
// Fails when the document cannot be parsed, has no pages or one of its pages has no text.
func ReadPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("ReadPDF: malformed document: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("ReadPDF: cannot parse the document: %w", err)
	}
	numPages := reader.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("ReadPDF: %w", ErrNoPages)
	}
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			return "", fmt.Errorf("ReadPDF: couldn't retrieve page %d: %w", i, ErrEmptyPage)
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("ReadPDF: couldn't retrieve text from page %d: %w", i, err)
		}
		if strings.TrimSpace(content) == "" {
			return "", fmt.Errorf("ReadPDF: page %d: %w", i, ErrEmptyPage)
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, " "), nil
}
