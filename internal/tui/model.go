// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rbehjati/typr/internal/engine"
	"github.com/rbehjati/typr/internal/generator"
	"github.com/rbehjati/typr/internal/model"
	"github.com/rbehjati/typr/internal/stats"
	"github.com/rbehjati/typr/internal/wordbank"
)

// expiryPollInterval bounds how late a silent duration round can finish.
const expiryPollInterval = 100 * time.Millisecond

// durationBatchWords is the word batch drawn up front for duration rounds.
const durationBatchWords = 120

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	skippedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A5A")).Strikethrough(true)
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	sourceStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	cardStyle        = lipgloss.NewStyle().
				Padding(1, 2).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Model implements the Bubble Tea typing UI. One Model drives a whole run:
// rounds loop until the user quits (fixed text runs once).
type Model struct {
	cfg      model.Config
	mode     engine.Mode
	gen      *generator.Generator
	words    []string
	quotes   []wordbank.Quote
	literal  string
	punctSet []rune

	session     *engine.Session
	quoteSource string

	countdown timer.Model
	watch     stopwatch.Model

	width  int
	height int

	showResult bool
	rounds     []engine.Result
	err        error
}

// NewModel constructs a typing TUI model. words, quotes, and literal feed
// the mode's text source; only the one the mode needs must be non-empty.
func NewModel(cfg model.Config, mode engine.Mode, gen *generator.Generator, words []string, quotes []wordbank.Quote, literal string) *Model {
	return &Model{
		cfg:      cfg,
		mode:     mode,
		gen:      gen,
		words:    words,
		quotes:   quotes,
		literal:  literal,
		punctSet: []rune(cfg.PunctSet),
	}
}

// Results returns the results collected over the run, in order.
func (m *Model) Results() []engine.Result {
	return m.rounds
}

// Err returns the first fatal error hit during the run, if any.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.startRound()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case timer.TickMsg, timer.StartStopMsg, timer.TimeoutMsg:
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Update(msg)
		if m.session != nil && !m.showResult && m.session.Tick() {
			return m, tea.Batch(cmd, m.finishRound())
		}
		return m, cmd
	case stopwatch.TickMsg, stopwatch.StartStopMsg, stopwatch.ResetMsg:
		var cmd tea.Cmd
		m.watch, cmd = m.watch.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.err != nil {
		return ""
	}
	if m.session == nil {
		return ""
	}
	if m.showResult {
		return m.renderResultCard()
	}
	return m.renderTyping()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showResult {
		return m.handleResultKey(msg)
	}
	switch msg.Type {
	case tea.KeyCtrlC:
		m.cancelRound()
		return m, tea.Quit
	case tea.KeyCtrlR:
		return m, m.startRound()
	case tea.KeyBackspace, tea.KeyDelete:
		if m.session != nil {
			m.session.Backspace()
		}
		return m, nil
	case tea.KeySpace:
		return m.handleRunes([]rune{' '})
	case tea.KeyRunes:
		return m.handleRunes(msg.Runes)
	default:
		return m, nil
	}
}

func (m *Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC || msg.String() == "q":
		return m, tea.Quit
	case msg.Type == tea.KeyEnter || msg.Type == tea.KeyTab:
		if m.mode.Kind == engine.ModeText {
			// Fixed text is a single round, as the caller supplied it.
			return m, tea.Quit
		}
		return m, m.startRound()
	default:
		return m, nil
	}
}

func (m *Model) handleRunes(runes []rune) (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}
	var cmds []tea.Cmd
	if m.session.State() == engine.StateNotStarted && !m.mode.Timed() {
		cmds = append(cmds, m.watch.Start())
	}
	for _, r := range runes {
		if m.session.Type(r) {
			cmds = append(cmds, m.finishRound())
			break
		}
	}
	return m, tea.Batch(cmds...)
}

// startRound builds a fresh session with new text. The duration countdown
// starts ticking immediately so expiry fires even without input.
func (m *Model) startRound() tea.Cmd {
	target, source, err := m.nextTarget()
	if err != nil {
		m.err = err
		return tea.Quit
	}
	session, err := engine.NewSession(m.mode, target)
	if err != nil {
		m.err = err
		return tea.Quit
	}
	m.session = session
	m.quoteSource = source
	m.showResult = false

	if m.mode.Timed() {
		m.countdown = timer.NewWithInterval(m.mode.Duration, expiryPollInterval)
		return m.countdown.Init()
	}
	m.watch = stopwatch.NewWithInterval(time.Second)
	return nil
}

func (m *Model) nextTarget() (target, source string, err error) {
	opts := generator.WordOptions{
		CapsPct:  m.cfg.CapsPct,
		PunctPct: m.cfg.PunctPct,
		PunctSet: m.punctSet,
	}
	switch m.mode.Kind {
	case engine.ModeWords:
		target, err = m.gen.Words(m.words, m.mode.WordCount, opts)
		return target, "", err
	case engine.ModeDuration:
		target, err = m.gen.Words(m.words, durationBatchWords, opts)
		return target, "", err
	case engine.ModeQuote:
		quote, qerr := m.gen.Quote(m.quotes)
		if qerr != nil {
			return "", "", qerr
		}
		target, err = generator.NormalizeText(quote.Text)
		return target, quote.Source, err
	case engine.ModeText:
		return m.literal, "", nil
	}
	return "", "", fmt.Errorf("unknown mode kind %d", m.mode.Kind)
}

func (m *Model) cancelRound() {
	if m.session == nil || m.showResult {
		return
	}
	m.session.Cancel()
	if res, ok := m.session.Result(); ok {
		m.rounds = append(m.rounds, res)
	}
}

func (m *Model) finishRound() tea.Cmd {
	if m.showResult {
		return nil
	}
	res, ok := m.session.Result()
	if !ok {
		return nil
	}
	m.rounds = append(m.rounds, res)
	m.showResult = true
	if !m.mode.Timed() {
		return m.watch.Stop()
	}
	return nil
}

func (m *Model) renderTyping() string {
	track := m.session.Track()
	if track.Len() == 0 {
		return ""
	}
	styledRunes := buildStyledRunes(track, m.session.Cursor())
	if m.width == 0 || m.height == 0 {
		return renderStyledRunes(styledRunes)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderFooter() string {
	track := m.session.Track()
	progress := 0
	if track.Len() > 0 {
		progress = m.session.Cursor() * 100 / track.Len()
	}
	segments := []string{fmt.Sprintf("Progress %d%%", progress)}
	if m.mode.Timed() {
		segments = append(segments, formatClock(m.session.Remaining()))
	} else if m.session.State() == engine.StateRunning {
		segments = append(segments, formatClock(m.watch.Elapsed()))
	}
	if wpm, ok := m.liveWPM(); ok {
		segments = append(segments, fmt.Sprintf("%.1f WPM", wpm))
	}
	if last, ok := m.lastCompleted(); ok {
		segments = append(segments, fmt.Sprintf("Last %.1f WPM · %.1f%%", last.NetWPM, last.Accuracy))
	}
	if sum := stats.Aggregate(m.rounds); sum.Completed > 1 {
		segments = append(segments, fmt.Sprintf("Avg %.1f WPM · %.1f%%", sum.AvgNetWPM, sum.AvgAccuracy))
	}
	footer := ""
	for i, seg := range segments {
		if i > 0 {
			footer += "  "
		}
		footer += seg
	}
	return footerStyle.Render(footer)
}

func (m *Model) renderResultCard() string {
	res := m.rounds[len(m.rounds)-1]
	title := "Round complete"
	switch res.Outcome {
	case engine.OutcomeExpired:
		title = "Time's up"
	case engine.OutcomeCancelled:
		title = "Cancelled"
	}
	lines := []string{
		cardTitleStyle.Render(title),
		"",
		fmt.Sprintf("Net WPM %.1f   Raw WPM %.1f", res.NetWPM, res.RawWPM),
		fmt.Sprintf("Accuracy %.1f%%", res.Accuracy),
		fmt.Sprintf("Correct %d · Incorrect %d · Skipped %d", res.Correct, res.Incorrect, res.Skipped),
		fmt.Sprintf("Time %.1fs", res.Elapsed.Seconds()),
	}
	if m.quoteSource != "" {
		lines = append(lines, "", sourceStyle.Render("— "+m.quoteSource))
	}
	hint := "enter: next round · q: quit"
	if m.mode.Kind == engine.ModeText {
		hint = "enter/q: quit"
	}
	lines = append(lines, "", cardMutedStyle.Render(hint))

	card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m *Model) liveWPM() (float64, bool) {
	if m.session.State() != engine.StateRunning {
		return 0, false
	}
	minutes := m.session.Elapsed().Minutes()
	if minutes <= 0 {
		return 0, false
	}
	correct, _, _ := m.session.Track().Counts()
	return float64(correct) / 5.0 / minutes, true
}

func (m *Model) lastCompleted() (engine.Result, bool) {
	for i := len(m.rounds) - 1; i >= 0; i-- {
		if m.rounds[i].Completed() {
			return m.rounds[i], true
		}
	}
	return engine.Result{}, false
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
