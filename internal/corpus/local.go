package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LoadFiles merges every word-list file matching the doublestar pattern into
// one Corpus. Files hold one word per line; blank lines and lines starting
// with '#' are skipped. A pattern matching no files yields an empty Corpus,
// not an error.
func LoadFiles(pattern string) (*Corpus, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad word-list pattern %q: %w", pattern, err)
	}
	var words []string
	for _, path := range paths {
		lines, err := readWordFile(path)
		if err != nil {
			return nil, err
		}
		words = append(words, lines...)
	}
	return New(words), nil
}

// readWordFile reads a one-word-per-line file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return words, nil
}
