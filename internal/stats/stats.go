// Package stats aggregates and renders statistics for one run's rounds.
package stats

import (
	"math"
	"strings"

	"github.com/rbehjati/typr/internal/engine"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates the completed rounds of a run. Cancelled rounds are
// counted but excluded from the averages.
type Summary struct {
	Rounds      int
	Completed   int
	AvgNetWPM   float64
	AvgRawWPM   float64
	BestNetWPM  float64
	AvgAccuracy float64
}

// Aggregate reduces round results into a run summary.
func Aggregate(results []engine.Result) Summary {
	sum := Summary{Rounds: len(results)}
	var netTotal, rawTotal, accTotal float64
	for _, r := range results {
		if !r.Completed() {
			continue
		}
		sum.Completed++
		netTotal += r.NetWPM
		rawTotal += r.RawWPM
		accTotal += r.Accuracy
		if r.NetWPM > sum.BestNetWPM {
			sum.BestNetWPM = r.NetWPM
		}
	}
	if sum.Completed > 0 {
		n := float64(sum.Completed)
		sum.AvgNetWPM = netTotal / n
		sum.AvgRawWPM = rawTotal / n
		sum.AvgAccuracy = accTotal / n
	}
	return sum
}

// NetWPMSeries extracts the net WPM of each completed round, in order.
func NetWPMSeries(results []engine.Result) []float64 {
	var out []float64
	for _, r := range results {
		if r.Completed() {
			out = append(out, r.NetWPM)
		}
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
