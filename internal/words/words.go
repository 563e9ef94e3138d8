// Package words loads and normalizes the word lists that crossword domains
// are drawn from.
package words

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// FromFile reads a word list, one word per line. Words are trimmed and
// lowercased; blank lines and lines starting with '#' are skipped. A word
// containing anything other than a-z is an error.
func FromFile(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		for _, r := range word {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("word %s contains non-lowercase letter %q", word, r)
			}
		}
		words = append(words, word)
	}
	return Normalize(words), scanner.Err()
}

// Normalize lowercases, trims, and deduplicates a word list, preserving
// first-seen order and dropping empties.
func Normalize(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, w := range in {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
