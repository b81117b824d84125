// Package fileContents extracts the plain text of documents on disk.
package fileContents

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/exdevutem/api-exdev/saxlike"
	"github.com/exdevutem/api-exdev/slog"
)

// Document is the extracted text of one file, identified by its path
type Document struct {
	Path    string
	Content string
}

type textHandler struct {
	saxlike.VoidHandler
	textDataSB strings.Builder
}

func (h *textHandler) CharData(c xml.CharData) {
	h.textDataSB.Write(c)
	h.textDataSB.WriteString(" ")
}

func readXML(data []byte, htmlMode bool) (string, error) {
	handler := &textHandler{}
	err := saxlike.Parse(bytes.NewReader(data), handler, htmlMode)
	if err != nil {
		return "", fmt.Errorf("readXML: failed parsing using saxlike: %w", err)
	}
	return handler.textDataSB.String(), nil
}

// FromBytes extracts the text of data according to the extension of filePath
func FromBytes(filePath string, data []byte) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), ".")) {
	case "pdf":
		return ReadPDF(data)
	case "xhtml", "xml", "svg":
		return readXML(data, false)
	case "html", "htm":
		return readXML(data, true)
	case "txt", "text", "md":
		return string(data), nil
	default:
		return "", ErrUnsupportedType
	}
}

// Reader extracts documents from a file or the entries of a directory.
// A zero Reader accepts every directory entry and does not cache.
type Reader struct {
	// Glob patterns matched against entry names, see doublestar.Match
	Includes []string
	Excludes []string
	Cache    *Cache
	// Called after every candidate document, extracted or not
	OnProgress func(processed, total int, filePath string)
}

// FromFilePath extracts one document. Every failure is reported as an *ExtractionError.
func (r *Reader) FromFilePath(filePath string) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", &ExtractionError{Path: filePath, Err: err}
	}
	if !info.Mode().IsRegular() {
		return "", &ExtractionError{Path: filePath, Err: fmt.Errorf("not a regular file: %w", ErrUnsupportedType)}
	}
	if r.Cache != nil {
		content, ok, err := r.Cache.Get(filePath, info)
		if err != nil {
			slog.Warnf("%s", err)
		} else if ok {
			slog.Debugf("Using cached text of `%s`", filePath)
			return content, nil
		}
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", &ExtractionError{Path: filePath, Err: err}
	}
	content, err := FromBytes(filePath, data)
	if err != nil {
		return "", &ExtractionError{Path: filePath, Err: err}
	}
	if r.Cache != nil {
		if err := r.Cache.Put(filePath, info, content); err != nil {
			slog.Warnf("%s", err)
		}
	}
	return content, nil
}

func (r *Reader) accepts(name string) bool {
	includes := r.Includes
	if len(includes) == 0 {
		includes = []string{"*"}
	}
	included := false
	for _, pattern := range includes {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, pattern := range r.Excludes {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return false
		}
	}
	return true
}

// ListFiles returns the paths of the accepted entries of directory, sorted by name. Subdirectories are not visited.
func (r *Reader) ListFiles(directory string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("ListFiles: failed reading the directory %s: %w", directory, err)
	}
	var files []string
	for _, entry := range entries {
		if !r.accepts(entry.Name()) {
			slog.Debugf("Ignoring `%s`", entry.Name())
			continue
		}
		files = append(files, filepath.Join(directory, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// FromPath extracts path itself when it is a file, or every accepted entry when it is a directory.
// The returned error is only set when path cannot be read at all; per document failures are collected in errs.
func (r *Reader) FromPath(path string) (docs []Document, errs []error, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("FromPath: failed reading the path %s: %w", path, err)
	}
	files := []string{path}
	if info.IsDir() {
		files, err = r.ListFiles(path)
		if err != nil {
			return nil, nil, fmt.Errorf("FromPath: %w", err)
		}
	}
	for i, filePath := range files {
		content, err := r.FromFilePath(filePath)
		if err != nil {
			errs = append(errs, err)
		} else {
			docs = append(docs, Document{Path: filePath, Content: content})
		}
		if r.OnProgress != nil {
			r.OnProgress(i+1, len(files), filePath)
		}
	}
	return docs, errs, nil
}
