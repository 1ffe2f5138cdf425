package model

// Record is a single timestamped traffic count read from a count log.
// Records are copied by value into accumulator state.
type Record struct {
	Timestamp string `json:"timestamp"`
	Count     uint32 `json:"count"`
}

// DailyTotal is the accumulated count for one calendar date.
type DailyTotal struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count uint64 `json:"count"`
}

// MinWindow describes the run of three consecutive records with the smallest summed count.
type MinWindow struct {
	Start Record `json:"start"`
	End   Record `json:"end"`
	Sum   uint64 `json:"sum"`
}

// Summary is the finished result of one pass over a count log.
type Summary struct {
	Records   int          `json:"records"`
	Total     uint64       `json:"total"`
	Daily     []DailyTotal `json:"daily"`
	Top       [3]Record    `json:"top"`
	MinWindow MinWindow    `json:"min_window"`
}
