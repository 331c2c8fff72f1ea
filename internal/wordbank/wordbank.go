// Package wordbank loads word lists and quote banks from files.
package wordbank

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrEmptySource reports a word list or quote bank with no usable entries.
var ErrEmptySource = errors.New("source has no entries")

// Quote is one entry of a quote bank.
type Quote struct {
	Text   string
	Source string
}

// LoadWords reads one word per line from the provided file path, applying
// the language filter for lang.
func LoadWords(path, lang string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	filter := FilterForLang(lang)
	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !filter(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s: %w", path, ErrEmptySource)
	}
	return words, nil
}

// LoadQuotes reads a quote bank of the form
// {"quotes": [{"text": ..., "source": ...}]} from the provided file path.
func LoadQuotes(path string) ([]Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var quotes []Quote
	for _, entry := range gjson.GetBytes(data, "quotes").Array() {
		text := strings.TrimSpace(entry.Get("text").String())
		if text == "" {
			continue
		}
		quotes = append(quotes, Quote{
			Text:   text,
			Source: strings.TrimSpace(entry.Get("source").String()),
		})
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("quote bank %s: %w", path, ErrEmptySource)
	}
	return quotes, nil
}
