package stats

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/rbehjati/typr/internal/engine"
)

// TerminalWidth returns the stdout width, or a default when stdout is not
// a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// RenderReport prints a per-round table, aggregate averages, and a net WPM
// sparkline for the run. The sparkline is truncated to width.
func RenderReport(w io.Writer, results []engine.Result, width int) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No rounds played.")
		return err
	}

	headers := []string{"Round", "Mode", "Net WPM", "Raw WPM", "Accuracy", "Time", "Outcome"}
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Mode.String(),
			fmt.Sprintf("%.1f", r.NetWPM),
			fmt.Sprintf("%.1f", r.RawWPM),
			fmt.Sprintf("%.1f%%", r.Accuracy),
			fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
			outcomeLabel(r.Outcome),
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	sum := Aggregate(results)
	if sum.Completed == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Rounds: %d (%d completed)\n", sum.Rounds, sum.Completed); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg net WPM: %.1f  Avg raw WPM: %.1f  Best net WPM: %.1f\n",
		sum.AvgNetWPM, sum.AvgRawWPM, sum.BestNetWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg accuracy: %.1f%%\n", sum.AvgAccuracy); err != nil {
		return err
	}

	series := NetWPMSeries(results)
	if len(series) < 2 {
		return nil
	}
	if len(series) > width && width > 0 {
		series = series[len(series)-width:]
	}
	spark := Sparkline(MovingAverage(series, 3))
	if _, err := fmt.Fprintf(w, "Net WPM trend: [%s]\n", spark); err != nil {
		return err
	}
	return nil
}

func outcomeLabel(o engine.Outcome) string {
	switch o {
	case engine.OutcomeCompleted:
		return "completed"
	case engine.OutcomeExpired:
		return "time up"
	case engine.OutcomeCancelled:
		return "cancelled"
	}
	return "unknown"
}
