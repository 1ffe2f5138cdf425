package model

// Task defines a single streaming accumulator fed one record at a time.
// Snapshot must not mutate the task.
type Task interface {
	ProcessRecord(record Record) error
	Snapshot() interface{}
	Reset()
	Name() string
}
