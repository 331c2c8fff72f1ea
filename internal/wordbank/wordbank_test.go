package wordbank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadWords(t *testing.T) {
	path := writeFile(t, "en.txt", "hello\n\n  world  \nrésumé\n")
	words, err := LoadWords(path, "en")
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	expected := []string{"hello", "world"}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %d: %v", len(expected), len(words), words)
	}
	for i, w := range expected {
		if words[i] != w {
			t.Fatalf("expected %q at %d, got %q", w, i, words[i])
		}
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := writeFile(t, "en.txt", "\n\n")
	if _, err := LoadWords(path, "en"); !errors.Is(err, ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}

func TestLoadWordsUnknownLangKeepsAll(t *testing.T) {
	path := writeFile(t, "fr.txt", "résumé\nmaison\n")
	words, err := LoadWords(path, "fr")
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
}

func TestLoadQuotes(t *testing.T) {
	path := writeFile(t, "en.json", `{"quotes": [
		{"text": "So long, and thanks for all the fish.", "source": "Douglas Adams"},
		{"text": "   ", "source": "nobody"},
		{"text": "Simplicity is complicated.", "source": "Rob Pike"}
	]}`)
	quotes, err := LoadQuotes(path)
	if err != nil {
		t.Fatalf("load quotes: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	if quotes[1].Text != "Simplicity is complicated." || quotes[1].Source != "Rob Pike" {
		t.Fatalf("unexpected quote: %+v", quotes[1])
	}
}

func TestLoadQuotesEmpty(t *testing.T) {
	for _, content := range []string{`{}`, `{"quotes": []}`, `not json`} {
		path := writeFile(t, "en.json", content)
		if _, err := LoadQuotes(path); !errors.Is(err, ErrEmptySource) {
			t.Fatalf("expected ErrEmptySource for %q, got %v", content, err)
		}
	}
}

func TestFilterEnglishASCII(t *testing.T) {
	filter := FilterForLang("en")
	if !filter("hello") {
		t.Fatalf("expected hello to pass english filter")
	}
	for _, word := range []string{"résumé", "naïve", "don’t", "co-op"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
