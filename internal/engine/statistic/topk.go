package statistic

import (
	"Go2TrafficStats/internal/model"
	"fmt"
	"slices"
)

// TopSize is the number of ranked records tracked by TopK.
const TopSize = 3

// TopK keeps the highest-count records seen so far, ranked descending.
// Equal counts keep their arrival order.
//
// A record is only ever inserted in front of a strictly smaller entry, apart from
// the very first record which is always kept. A record that is not larger than
// any tracked entry is dropped even while fewer than TopSize entries are held, so
// feeding 5 then 3 leaves only 5 tracked.
type TopK struct {
	records []model.Record
}

// NewTopK creates an empty tracker.
func NewTopK() *TopK {
	return &TopK{records: make([]model.Record, 0, TopSize+1)}
}

func (t *TopK) Name() string {
	return "top_periods"
}

// ProcessRecord folds a record into the ranking. It never fails.
func (t *TopK) ProcessRecord(record model.Record) error {
	if len(t.records) == 0 {
		t.records = append(t.records, record)
		return nil
	}

	i := slices.IndexFunc(t.records, func(r model.Record) bool {
		return r.Count < record.Count
	})
	if i < 0 {
		return nil
	}

	t.records = slices.Insert(t.records, i, record)
	if len(t.records) > TopSize {
		t.records = t.records[:TopSize]
	}
	return nil
}

// Records returns a copy of the tracked records, highest count first.
func (t *TopK) Records() []model.Record {
	return slices.Clone(t.records)
}

// Top3 returns the ranked records as first, second and third.
// It fails with model.ErrInsufficientData while fewer than three are tracked.
func (t *TopK) Top3() ([TopSize]model.Record, error) {
	var top [TopSize]model.Record
	if len(t.records) < TopSize {
		return top, fmt.Errorf("%w for top %d: tracking %d record(s)", model.ErrInsufficientData, TopSize, len(t.records))
	}
	copy(top[:], t.records)
	return top, nil
}

// Snapshot returns the same data as Records.
func (t *TopK) Snapshot() interface{} {
	return t.Records()
}

func (t *TopK) Reset() {
	t.records = t.records[:0]
}
