// Package main provides the CLI entrypoint for typr.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rbehjati/typr/internal/config"
	"github.com/rbehjati/typr/internal/engine"
	"github.com/rbehjati/typr/internal/generator"
	"github.com/rbehjati/typr/internal/model"
	"github.com/rbehjati/typr/internal/stats"
	"github.com/rbehjati/typr/internal/tui"
	"github.com/rbehjati/typr/internal/wordbank"
)

const (
	defaultLang  = "en"
	defaultWords = 30
	defaultCaps  = 0.0
	defaultPunct = 0.0
)

const defaultPunctSet = ".,!?;:\"'{}()[]-=/<>`"

var (
	practiceLang     string
	practiceWords    int
	practiceDuration int
	practiceQuote    bool
	practiceText     string
	practiceFile     string
	practiceCaps     float64
	practicePunct    float64
	practicePunctSet string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typr",
		Short:         "TUI typing trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVarP(&practiceLang, "lang", "l", defaultLang, "language code (default: en)")
	rootCmd.Flags().IntVarP(&practiceWords, "words", "w", defaultWords, "number of words per round")
	rootCmd.Flags().IntVarP(&practiceDuration, "duration", "d", 0, "round duration in seconds")
	rootCmd.Flags().BoolVarP(&practiceQuote, "quote", "q", false, "type a random quote")
	rootCmd.Flags().StringVarP(&practiceText, "text", "t", "", "type the provided text")
	rootCmd.Flags().StringVarP(&practiceFile, "file", "f", "", "type text from the provided file")
	rootCmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyFloatConfig(cmd, "caps", &practiceCaps, fileCfg.Practice.CapsPct)
	applyFloatConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctPct)
	applyStringConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Practice.PunctSet)

	cfg := model.Config{
		Lang:     practiceLang,
		Words:    practiceWords,
		CapsPct:  practiceCaps,
		PunctPct: practicePunct,
		PunctSet: practicePunctSet,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	mode, literal, err := resolveMode(cmd)
	if err != nil {
		return err
	}
	if err := mode.Validate(); err != nil {
		return err
	}

	var words []string
	if mode.Kind == engine.ModeWords || mode.Kind == engine.ModeDuration {
		wordPath := config.DefaultWordListPath(cfg.Lang)
		words, err = wordbank.LoadWords(wordPath, cfg.Lang)
		if err != nil {
			return wordListLoadError(cfg.Lang, wordPath, err)
		}
	}

	var quotes []wordbank.Quote
	if mode.Kind == engine.ModeQuote {
		quotePath := config.DefaultQuotePath(cfg.Lang)
		quotes, err = wordbank.LoadQuotes(quotePath)
		if err != nil {
			return quoteLoadError(cfg.Lang, quotePath, err)
		}
	}

	gen := generator.New()
	m := tui.NewModel(cfg, mode, gen, words, quotes, literal)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := m.Err(); err != nil {
		return err
	}
	return stats.RenderReport(os.Stdout, m.Results(), stats.TerminalWidth())
}

// resolveMode picks the session mode from the mutually exclusive mode
// flags. For literal or file text it also returns the normalized target.
func resolveMode(cmd *cobra.Command) (engine.Mode, string, error) {
	selected := 0
	for _, name := range []string{"duration", "quote", "text", "file"} {
		if cmd.Flags().Changed(name) {
			selected++
		}
	}
	if selected > 1 {
		return engine.Mode{}, "", fmt.Errorf("only one of --duration, --quote, --text, --file may be used")
	}
	if selected == 1 && cmd.Flags().Changed("words") {
		return engine.Mode{}, "", fmt.Errorf("--words cannot be combined with another mode flag")
	}

	switch {
	case cmd.Flags().Changed("duration"):
		return engine.DurationMode(time.Duration(practiceDuration) * time.Second), "", nil
	case practiceQuote:
		return engine.QuoteMode(), "", nil
	case cmd.Flags().Changed("text"):
		literal, err := generator.NormalizeText(practiceText)
		if err != nil {
			return engine.Mode{}, "", fmt.Errorf("--text: %w", err)
		}
		return engine.TextMode(), literal, nil
	case cmd.Flags().Changed("file"):
		data, err := os.ReadFile(practiceFile)
		if err != nil {
			return engine.Mode{}, "", fmt.Errorf("failed to read %s: %w", practiceFile, err)
		}
		literal, err := generator.NormalizeText(string(data))
		if err != nil {
			return engine.Mode{}, "", fmt.Errorf("%s: %w", practiceFile, err)
		}
		return engine.TextMode(), literal, nil
	default:
		return engine.WordsMode(practiceWords), "", nil
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List installed word lists and quote banks",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	wordLangs, err := listLangs(config.DefaultWordListDir(), ".txt")
	if err != nil {
		return fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	quoteLangs, err := listLangs(config.DefaultQuoteDir(), ".json")
	if err != nil {
		return fmt.Errorf("failed to read quote directory: %w", err)
	}
	if len(wordLangs) == 0 && len(quoteLangs) == 0 {
		logErrf("No word lists or quote banks found under %s\n", filepath.Dir(config.DefaultWordListDir()))
		return fmt.Errorf("no languages installed")
	}
	for _, entry := range mergeLangs(wordLangs, quoteLangs) {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", entry.lang, strings.Join(entry.kinds, ",")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func listLangs(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var langs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ext) {
			continue
		}
		langs = append(langs, strings.TrimSuffix(name, ext))
	}
	sort.Strings(langs)
	return langs, nil
}

// mergeLangs joins word and quote languages into an ordered lang -> kinds
// view for printing.
func mergeLangs(wordLangs, quoteLangs []string) []langKinds {
	kinds := map[string][]string{}
	for _, lang := range wordLangs {
		kinds[lang] = append(kinds[lang], "words")
	}
	for _, lang := range quoteLangs {
		kinds[lang] = append(kinds[lang], "quotes")
	}
	langs := make([]string, 0, len(kinds))
	for lang := range kinds {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	out := make([]langKinds, 0, len(langs))
	for _, lang := range langs {
		out = append(out, langKinds{lang: lang, kinds: kinds[lang]})
	}
	return out
}

type langKinds struct {
	lang  string
	kinds []string
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typr configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lang = "en"             # Language code (default %q)
# words = %d              # Words per round
# caps = %.2f             # Probability of capitalized first letter (0-1)
# punct = %.2f            # Punctuation probability per word (0-1)
# punct-set = %q          # Punctuation set
`,
		defaultLang,
		defaultWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func wordListLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		fmt.Sprintf("language %q not installed", lang),
		"Install a word list (one word per line) at that path, or run: typr langs",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func quoteLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load quote bank: %v", err),
		fmt.Sprintf("expected quote bank at: %s", path),
		fmt.Sprintf(`language %q has no quotes installed; the file format is {"quotes": [{"text": ..., "source": ...}]}`, lang),
		"Run: typr langs",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	// Best-effort: stderr write failures are not actionable.
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}
