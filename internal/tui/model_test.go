package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rbehjati/typr/internal/engine"
	"github.com/rbehjati/typr/internal/generator"
	"github.com/rbehjati/typr/internal/model"
	"github.com/rbehjati/typr/internal/wordbank"
)

func newTextModel(t *testing.T, literal string) *Model {
	t.Helper()
	gen := generator.NewWithRand(rand.New(rand.NewSource(1)))
	m := NewModel(model.Config{Lang: "en"}, engine.TextMode(), gen, nil, nil, literal)
	m.Init()
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTypingRoundToCompletion(t *testing.T) {
	m := newTextModel(t, "hi")
	m.Update(keyRunes("h"))
	m.Update(keyRunes("i"))
	if !m.showResult {
		t.Fatalf("expected result card after completing the text")
	}
	results := m.Results()
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Correct != 2 || results[0].Accuracy != 100 {
		t.Fatalf("unexpected result: %+v", results[0])
	}
}

func TestBackspaceKey(t *testing.T) {
	m := newTextModel(t, "hi")
	m.Update(keyRunes("x"))
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.session.Cursor() != 0 {
		t.Fatalf("expected cursor back at 0, got %d", m.session.Cursor())
	}
	if got := m.session.Track().State(0); got != engine.CharPending {
		t.Fatalf("expected pending after backspace, got %v", got)
	}
}

func TestCtrlCRecordsCancelledRound(t *testing.T) {
	m := newTextModel(t, "hello")
	m.Update(keyRunes("he"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	results := m.Results()
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Outcome != engine.OutcomeCancelled {
		t.Fatalf("expected cancelled outcome, got %v", results[0].Outcome)
	}
	if results[0].Correct != 2 {
		t.Fatalf("expected partial counts, got %+v", results[0])
	}
}

func TestCtrlRRestartsWithoutRecording(t *testing.T) {
	m := newTextModel(t, "hello")
	m.Update(keyRunes("he"))
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if len(m.Results()) != 0 {
		t.Fatalf("restart must not record a result")
	}
	if m.session.Cursor() != 0 {
		t.Fatalf("expected a fresh session, cursor %d", m.session.Cursor())
	}
}

func TestEnterStartsNextRoundInWordsMode(t *testing.T) {
	gen := generator.NewWithRand(rand.New(rand.NewSource(1)))
	m := NewModel(model.Config{Lang: "en"}, engine.WordsMode(1), gen, []string{"go"}, nil, "")
	m.Init()
	m.Update(keyRunes("go"))
	if !m.showResult {
		t.Fatalf("expected result card")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.showResult {
		t.Fatalf("expected a new round after enter")
	}
	if len(m.Results()) != 1 {
		t.Fatalf("expected the finished round recorded, got %d", len(m.Results()))
	}
}

func TestEnterQuitsAfterFixedText(t *testing.T) {
	m := newTextModel(t, "hi")
	m.Update(keyRunes("hi"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("fixed text must quit after its single round")
	}
}

func TestQuoteRoundCarriesSource(t *testing.T) {
	gen := generator.NewWithRand(rand.New(rand.NewSource(1)))
	quotes := []wordbank.Quote{{Text: "hi", Source: "someone"}}
	m := NewModel(model.Config{Lang: "en"}, engine.QuoteMode(), gen, nil, quotes, "")
	m.Init()
	if m.quoteSource != "someone" {
		t.Fatalf("expected quote source, got %q", m.quoteSource)
	}
	m.Update(keyRunes("hi"))
	card := m.renderResultCard()
	if !strings.Contains(card, "someone") {
		t.Fatalf("expected attribution on the result card:\n%s", card)
	}
}

func TestDurationRoundExpiresOnTick(t *testing.T) {
	gen := generator.NewWithRand(rand.New(rand.NewSource(1)))
	m := NewModel(model.Config{Lang: "en"}, engine.DurationMode(time.Millisecond), gen, []string{"go"}, nil, "")
	m.Init()
	// First tick arms the engine clock.
	m.Update(timerTick())
	time.Sleep(5 * time.Millisecond)
	m.Update(timerTick())
	if !m.showResult {
		t.Fatalf("expected expiry via tick")
	}
	results := m.Results()
	if len(results) != 1 || results[0].Outcome != engine.OutcomeExpired {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestFooterSegments(t *testing.T) {
	m := newTextModel(t, "cat dog")
	m.Update(keyRunes("ca"))
	footer := m.renderFooter()
	if !strings.Contains(footer, "Progress 28%") {
		t.Fatalf("footer missing progress: %q", footer)
	}
}

// The engine clock is the expiry authority; any timer tick triggers the
// check regardless of the tick's ID.
func timerTick() tea.Msg {
	return timer.TickMsg{}
}
