package writer

import (
	"Go2TrafficStats/internal/model"
	"bufio"
	"fmt"
	"io"
)

var rankLabels = [...]string{"First", "Second", "Third"}

// TextWriter renders a summary in the console report format.
type TextWriter struct {
	out io.Writer
}

// NewTextWriter creates a text writer that renders to out.
func NewTextWriter(out io.Writer) model.Writer {
	return &TextWriter{out: out}
}

func (w *TextWriter) Name() string {
	return "text"
}

// Write renders the whole report into a buffer and flushes it once.
func (w *TextWriter) Write(summary *model.Summary) error {
	buf := bufio.NewWriter(w.out)

	fmt.Fprintf(buf, "Total: %d\n", summary.Total)
	for _, day := range summary.Daily {
		fmt.Fprintf(buf, "%s %d\n", day.Date, day.Count)
	}
	for i, record := range summary.Top {
		fmt.Fprintf(buf, "%s: %s %d\n", rankLabels[i], record.Timestamp, record.Count)
	}
	fmt.Fprintf(buf, "Min Period: Start: %s End: %s %d\n",
		summary.MinWindow.Start.Timestamp, summary.MinWindow.End.Timestamp, summary.MinWindow.Sum)

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
