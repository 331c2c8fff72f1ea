package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rbehjati/typr/internal/engine"
)

func TestRenderReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, nil, 80); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No rounds played.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderReportTableAndSummary(t *testing.T) {
	results := []engine.Result{
		{
			Outcome:  engine.OutcomeCompleted,
			Mode:     engine.WordsMode(25),
			Elapsed:  30 * time.Second,
			NetWPM:   61.5,
			RawWPM:   65.0,
			Accuracy: 96.2,
		},
		{
			Outcome:  engine.OutcomeCancelled,
			Mode:     engine.WordsMode(25),
			Elapsed:  5 * time.Second,
			NetWPM:   20.0,
			RawWPM:   22.0,
			Accuracy: 80.0,
		},
	}
	var buf bytes.Buffer
	if err := RenderReport(&buf, results, 80); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Round", "words(25)", "61.5", "96.2%", "30.0s", "completed",
		"cancelled",
		"Rounds: 2 (1 completed)",
		"Avg net WPM: 61.5",
		"Avg accuracy: 96.2%",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	// A single completed round has no trend line.
	if strings.Contains(out, "trend") {
		t.Fatalf("unexpected trend line:\n%s", out)
	}
}

func TestRenderReportSparkline(t *testing.T) {
	var results []engine.Result
	for i := 0; i < 5; i++ {
		results = append(results, engine.Result{
			Outcome:  engine.OutcomeCompleted,
			Mode:     engine.QuoteMode(),
			Elapsed:  10 * time.Second,
			NetWPM:   float64(40 + i*5),
			Accuracy: 95,
		})
	}
	var buf bytes.Buffer
	if err := RenderReport(&buf, results, 80); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "Net WPM trend: [") {
		t.Fatalf("expected a trend sparkline:\n%s", buf.String())
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Round", "Net WPM"}
	rows := [][]string{
		{"1", "100.0"},
		{"12", "9.5"},
	}
	lines := formatTable(headers, rows, map[int]bool{0: true, 1: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Round  Net WPM" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "    1    100.0" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
	if lines[2] != "   12      9.5" {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}
