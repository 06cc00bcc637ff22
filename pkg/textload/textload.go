// Package textload reads essay files from disk.
package textload

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNotFound reports a path that does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrUnreadable reports a file that exists but cannot be used as text,
	// either because reading failed or because the content is not valid UTF-8.
	ErrUnreadable = errors.New("file is not readable text")
)

// Load returns the full content of the text file at path.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	if !isText(data) {
		return "", fmt.Errorf("%w: %s", ErrUnreadable, path)
	}

	return string(data), nil
}

// LoadLines returns the non-empty, whitespace-trimmed lines of the file at
// path. Used for URL-list inputs.
func LoadLines(path string) ([]string, error) {
	content, err := Load(path)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// isText rejects binary content: NUL bytes or invalid UTF-8.
func isText(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return false
	}
	return utf8.Valid(data)
}
