package manager

import (
	"Go2TrafficStats/internal/config"
	"Go2TrafficStats/internal/engine/statistic"
	"Go2TrafficStats/internal/model"
	"context"
	"fmt"
)

// RecordSource supplies validated records in arrival order.
// ReadRecords stops at the first error returned by fn and returns it.
type RecordSource interface {
	ReadRecords(fn func(model.Record) error) error
}

// Manager drives one pass over a record source through the daily, top and window tasks.
// A Manager is not safe for concurrent use; build one per run.
type Manager struct {
	daily  *statistic.Daily
	top    *statistic.TopK
	window *statistic.Window
	tasks  []model.Task

	records int
	total   uint64
}

// NewManager creates a Manager with empty accumulators.
func NewManager(cfg *config.Config) *Manager {
	m := &Manager{
		daily:  statistic.NewDaily(cfg.Reader.TimestampLayout),
		top:    statistic.NewTopK(),
		window: statistic.NewWindow(),
	}
	// Fan-out order: daily, top, window.
	m.tasks = []model.Task{m.daily, m.top, m.window}
	return m
}

// Run resets the accumulators, streams every record from src through them and
// returns the finished summary. Any error aborts the run and no summary is returned.
func (m *Manager) Run(ctx context.Context, src RecordSource) (*model.Summary, error) {
	m.Reset()

	err := src.ReadRecords(func(record model.Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return m.ProcessRecord(record)
	})
	if err != nil {
		return nil, err
	}

	return m.Summary()
}

// ProcessRecord adds the record to the running total and feeds it to every task.
func (m *Manager) ProcessRecord(record model.Record) error {
	m.records++
	m.total += uint64(record.Count)

	for _, task := range m.tasks {
		if err := task.ProcessRecord(record); err != nil {
			return fmt.Errorf("record %d: %s: %w", m.records, task.Name(), err)
		}
	}
	return nil
}

// Summary reads the current state of every task. It does not modify any state,
// so calling it twice without an intervening record yields the same result.
func (m *Manager) Summary() (*model.Summary, error) {
	top, err := m.top.Top3()
	if err != nil {
		return nil, err
	}
	minWindow, err := m.window.Min()
	if err != nil {
		return nil, err
	}

	return &model.Summary{
		Records:   m.records,
		Total:     m.total,
		Daily:     m.daily.Totals(),
		Top:       top,
		MinWindow: minWindow,
	}, nil
}

// Tasks returns the tasks in fan-out order.
func (m *Manager) Tasks() []model.Task {
	return m.tasks
}

// Reset clears every task and the running total.
func (m *Manager) Reset() {
	for _, task := range m.tasks {
		task.Reset()
	}
	m.records = 0
	m.total = 0
}
