package logx

import "time"

// Record is a single log event flowing through a Dispatch.
type Record struct {
	Time    time.Time
	Level   Level
	Module  string
	Message string
	File    string // empty when the caller location is unknown
	Line    int    // 0 when the caller location is unknown
}

// HasSource reports whether the record carries caller location metadata.
func (r *Record) HasSource() bool {
	return r.File != "" && r.Line > 0
}
