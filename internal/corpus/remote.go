package corpus

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
)

// DefaultRemoteURL is the big fallback english list, one word per line.
const DefaultRemoteURL = "https://raw.githubusercontent.com/dwyl/english-words/master/words_alpha.txt"

// Fetch downloads a one-word-per-line list and builds a Corpus from it.
// Callers bound the download with the context; a failed fetch is expected to
// degrade to an empty corpus at the call site, never to kill the process.
func Fetch(ctx context.Context, client *http.Client, url string) (*Corpus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	var words []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}
	return New(words), nil
}
