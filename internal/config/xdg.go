// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultWordListPath builds the default word list path for a language.
func DefaultWordListPath(lang string) string {
	return filepath.Join(XDGConfigHome(), "typr", "wordlists", lang+".txt")
}

// DefaultWordListDir returns the default directory for word lists.
func DefaultWordListDir() string {
	return filepath.Join(XDGConfigHome(), "typr", "wordlists")
}

// DefaultQuotePath builds the default quote bank path for a language.
func DefaultQuotePath(lang string) string {
	return filepath.Join(XDGConfigHome(), "typr", "quotes", lang+".json")
}

// DefaultQuoteDir returns the default directory for quote banks.
func DefaultQuoteDir() string {
	return filepath.Join(XDGConfigHome(), "typr", "quotes")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "typr", "config.toml")
}
