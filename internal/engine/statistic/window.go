package statistic

import (
	"Go2TrafficStats/internal/model"
	"fmt"
	"math"
)

// WindowSize is the number of consecutive records in a window.
const WindowSize = 3

// WindowState is a point-in-time copy of a Window.
type WindowState struct {
	Current []model.Record
	Min     []model.Record
	MinSum  uint64
}

// Window finds the run of WindowSize consecutive records with the smallest summed count.
// The live window is a fixed ring, so memory stays constant however long the stream is.
type Window struct {
	ring [WindowSize]model.Record
	next int // ring slot the next record is written to
	size int

	// minSum stays math.MaxUint64 until the first full window; three uint32 counts can never reach it.
	minSum uint64
	min    [WindowSize]model.Record
}

// NewWindow creates an empty window minimizer.
func NewWindow() *Window {
	return &Window{minSum: math.MaxUint64}
}

func (w *Window) Name() string {
	return "min_window"
}

// ProcessRecord pushes the record into the live window, evicting the oldest one
// once the window is full, and records the window if its sum is a new strict minimum.
// Ties keep the earlier window. It never fails.
func (w *Window) ProcessRecord(record model.Record) error {
	w.ring[w.next] = record
	w.next = (w.next + 1) % WindowSize
	if w.size < WindowSize {
		w.size++
	}
	if w.size < WindowSize {
		return nil
	}

	var sum uint64
	for _, r := range w.ring {
		sum += uint64(r.Count)
	}
	if sum < w.minSum {
		w.minSum = sum
		w.min = w.ordered()
	}
	return nil
}

// ordered returns the ring contents oldest first. Only meaningful when full.
func (w *Window) ordered() [WindowSize]model.Record {
	var out [WindowSize]model.Record
	for i := range out {
		out[i] = w.ring[(w.next+i)%WindowSize]
	}
	return out
}

// Current returns a copy of the most recent records, oldest first.
func (w *Window) Current() []model.Record {
	out := make([]model.Record, 0, w.size)
	start := (w.next - w.size + WindowSize) % WindowSize
	for i := 0; i < w.size; i++ {
		out = append(out, w.ring[(start+i)%WindowSize])
	}
	return out
}

// Min reports the first and last record of the minimum window and its sum.
// It fails with model.ErrInsufficientData until a full window has been seen.
func (w *Window) Min() (model.MinWindow, error) {
	if w.minSum == math.MaxUint64 {
		return model.MinWindow{}, fmt.Errorf("%w for a %d-period window: have %d record(s)", model.ErrInsufficientData, WindowSize, w.size)
	}
	return model.MinWindow{
		Start: w.min[0],
		End:   w.min[WindowSize-1],
		Sum:   w.minSum,
	}, nil
}

// Snapshot returns a WindowState.
func (w *Window) Snapshot() interface{} {
	state := WindowState{Current: w.Current()}
	if w.minSum != math.MaxUint64 {
		state.Min = append([]model.Record(nil), w.min[:]...)
		state.MinSum = w.minSum
	}
	return state
}

func (w *Window) Reset() {
	*w = Window{minSum: math.MaxUint64}
}
