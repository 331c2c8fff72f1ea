package stats

import (
	"testing"

	"github.com/rbehjati/typr/internal/engine"
)

func TestAggregateSkipsCancelled(t *testing.T) {
	results := []engine.Result{
		{Outcome: engine.OutcomeCompleted, NetWPM: 60, RawWPM: 70, Accuracy: 95},
		{Outcome: engine.OutcomeCancelled, NetWPM: 10, RawWPM: 10, Accuracy: 10},
		{Outcome: engine.OutcomeExpired, NetWPM: 40, RawWPM: 50, Accuracy: 85},
	}
	sum := Aggregate(results)
	if sum.Rounds != 3 || sum.Completed != 2 {
		t.Fatalf("unexpected counts: %+v", sum)
	}
	if sum.AvgNetWPM != 50 || sum.AvgRawWPM != 60 || sum.AvgAccuracy != 90 {
		t.Fatalf("unexpected averages: %+v", sum)
	}
	if sum.BestNetWPM != 60 {
		t.Fatalf("unexpected best: %+v", sum)
	}
}

func TestAggregateEmpty(t *testing.T) {
	sum := Aggregate(nil)
	if sum.Rounds != 0 || sum.Completed != 0 || sum.AvgNetWPM != 0 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestNetWPMSeries(t *testing.T) {
	results := []engine.Result{
		{Outcome: engine.OutcomeCompleted, NetWPM: 60},
		{Outcome: engine.OutcomeCancelled, NetWPM: 10},
		{Outcome: engine.OutcomeCompleted, NetWPM: 62},
	}
	series := NetWPMSeries(results)
	if len(series) != 2 || series[0] != 60 || series[1] != 62 {
		t.Fatalf("unexpected series: %v", series)
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	out := MovingAverage(values, 2)
	expected := []float64{1, 1.5, 2.5, 3.5, 4.5}
	for i, v := range expected {
		if out[i] != v {
			t.Fatalf("index %d: expected %v, got %v", i, out[i], v)
		}
	}
	out = MovingAverage(values, 1)
	for i, v := range values {
		if out[i] != v {
			t.Fatalf("window 1 must copy values, index %d: %v", i, out[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	got := Sparkline([]float64{5, 5, 5})
	if len(got) != 3 {
		t.Fatalf("expected 3 chars, got %q", got)
	}
	got = Sparkline([]float64{0, 10})
	if got[0] != ' ' || got[1] != '@' {
		t.Fatalf("expected full range sparkline, got %q", got)
	}
}

func TestSparklineLength(t *testing.T) {
	values := make([]float64, 17)
	for i := range values {
		values[i] = float64(i)
	}
	if got := Sparkline(values); len(got) != 17 {
		t.Fatalf("expected length 17, got %d", len(got))
	}
}
