package statistic

import (
	"Go2TrafficStats/internal/model"
	"fmt"
	"slices"
	"time"
)

const (
	// DefaultTimestampLayout is the local date-time layout of a count log row.
	DefaultTimestampLayout = "2006-01-02T15:04:05"

	dateLayout = "2006-01-02"
)

// Daily accumulates the total count per calendar date.
// Memory grows with the number of distinct dates, never with the number of records.
type Daily struct {
	layout string
	// dates is kept in ascending order; fixed-width YYYY-MM-DD sorts chronologically.
	dates  []string
	totals map[string]uint64
}

// NewDaily creates a daily aggregator that parses timestamps with layout.
// An empty layout selects DefaultTimestampLayout.
func NewDaily(layout string) *Daily {
	if layout == "" {
		layout = DefaultTimestampLayout
	}
	return &Daily{
		layout: layout,
		totals: make(map[string]uint64),
	}
}

func (d *Daily) Name() string {
	return "daily_totals"
}

// ProcessRecord adds the record's count to the bucket of its calendar date.
// The time of day is discarded.
func (d *Daily) ProcessRecord(record model.Record) error {
	ts, err := time.Parse(d.layout, record.Timestamp)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", model.ErrParse, record.Timestamp, err)
	}
	date := ts.Format(dateLayout)

	if _, ok := d.totals[date]; !ok {
		i, _ := slices.BinarySearch(d.dates, date)
		d.dates = slices.Insert(d.dates, i, date)
	}
	d.totals[date] += uint64(record.Count)
	return nil
}

// Totals returns every bucket in ascending date order.
func (d *Daily) Totals() []model.DailyTotal {
	out := make([]model.DailyTotal, 0, len(d.dates))
	for _, date := range d.dates {
		out = append(out, model.DailyTotal{Date: date, Count: d.totals[date]})
	}
	return out
}

// Snapshot returns the same data as Totals.
func (d *Daily) Snapshot() interface{} {
	return d.Totals()
}

func (d *Daily) Reset() {
	d.dates = nil
	d.totals = make(map[string]uint64)
}
