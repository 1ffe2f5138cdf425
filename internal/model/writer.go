package model

// Writer defines a generic interface for emitting a finished summary.
type Writer interface {
	// Write renders or ships the summary. It is only called after a run succeeded.
	Write(summary *Summary) error

	// Name identifies the writer in logs.
	Name() string
}
