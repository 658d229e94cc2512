package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"lrc/experiments"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const separator = "--------------------------------------"

type Writer struct {
	out    io.Writer
	digits int32
}

// NewWriter returns a report writer rounding every number to digits decimal places.
func NewWriter(out io.Writer, digits int) *Writer {
	return &Writer{
		out:    out,
		digits: int32(digits),
	}
}

func (w *Writer) round(x float64) string {
	return decimal.NewFromFloat(x).Round(w.digits).String()
}

func (w *Writer) roundAll(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = w.round(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// WriteText prints the human readable report, one block per player count.
func (w *Writer) WriteText(numGames int, summaries []experiments.Summary) error {
	var b strings.Builder
	b.WriteString("Now presenting results\n")
	fmt.Fprintf(&b, "Num Games = %d\n", numGames)

	for _, s := range summaries {
		best := s.BestSeat()
		fmt.Fprintln(&b, separator)
		fmt.Fprintf(&b, "Num Players = %d\n", s.Players)
		fmt.Fprintf(&b, "Mean Num Turns = %s\n", w.round(s.MeanTurns))
		fmt.Fprintf(&b, "Std Dev Num Turns = %s\n", w.round(s.StdDevTurns))
		fmt.Fprintf(&b, "Player Win Probs = %s\n", w.roundAll(s.WinProbs))
		fmt.Fprintf(&b, "Player Dev From Fairness = %s\n", w.roundAll(s.Deviations))
		fmt.Fprintf(&b, "The best position is %d with average win prob = %s which deviates from fairness by = %s\n",
			best, w.round(s.WinProbs[best]), w.round(s.Deviations[best]))
	}

	if _, err := io.WriteString(w.out, b.String()); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}

// WriteCSV writes one row per player count and seat.
func (w *Writer) WriteCSV(summaries []experiments.Summary) error {
	writer := csv.NewWriter(w.out)

	// Write header
	header := []string{"players", "games", "mean_turns", "stddev_turns", "seat", "win_prob", "deviation"}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	// Write each row
	for _, s := range summaries {
		for seat := range s.WinProbs {
			row := []string{
				strconv.Itoa(s.Players),
				strconv.Itoa(s.Games),
				w.round(s.MeanTurns),
				w.round(s.StdDevTurns),
				strconv.Itoa(seat),
				w.round(s.WinProbs[seat]),
				w.round(s.Deviations[seat]),
			}
			err = writer.Write(row)
			if err != nil {
				return fmt.Errorf("failed to write report row: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}
