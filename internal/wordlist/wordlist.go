// Package wordlist loads and parses vocabulary word lists.
package wordlist

import (
	"fmt"
	"io"
	"os"

	"github.com/verte-zerg/tuicard/internal/model"
)

// StdinPath selects standard input as the word list source.
const StdinPath = "-"

// Load reads the whole word list at path. StdinPath reads from stdin instead.
func Load(path string, stdin io.Reader) (string, error) {
	if path == "" {
		return "", fmt.Errorf("word list path is empty")
	}
	if path == StdinPath {
		if stdin == nil {
			return "", fmt.Errorf("failed to read word list: stdin is not available")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read word list: %w", err)
		}
		return string(data), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read word list: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read word list: %w", err)
	}
	return string(data), nil
}

// LoadEntries reads and parses the word list at path.
func LoadEntries(path string, stdin io.Reader) ([]model.Entry, error) {
	text, err := Load(path, stdin)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}
