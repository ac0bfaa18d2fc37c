package testutil

import "time"

// runData holds all data for a run row to be inserted.
type runData struct {
	id         string
	descriptor string
	status     string
	errMsg     *string
	traceID    *string
	nodeCount  int
	durationMS int64
	snapshot   string
	createdAt  time.Time
}

// defaultRun returns a runData with sensible defaults.
func defaultRun(id string) runData {
	return runData{
		id:         id,
		descriptor: "root",
		status:     "ok",
		createdAt:  time.Now(),
	}
}

// RunOption configures a run during builder setup.
type RunOption func(*runData)

// Descriptor sets the descriptor the run resolved.
func Descriptor(d string) RunOption {
	return func(r *runData) { r.descriptor = d }
}

// Status sets the run status.
func Status(status string) RunOption {
	return func(r *runData) { r.status = status }
}

// Failed marks the run as failed with the given error message.
func Failed(msg string) RunOption {
	return func(r *runData) {
		r.status = "error"
		r.errMsg = &msg
	}
}

// TraceID sets the trace ID recorded for the run.
func TraceID(id string) RunOption {
	return func(r *runData) { r.traceID = &id }
}

// NodeCount sets the number of nodes the run resolved.
func NodeCount(n int) RunOption {
	return func(r *runData) { r.nodeCount = n }
}

// DurationMS sets the run duration in milliseconds.
func DurationMS(ms int64) RunOption {
	return func(r *runData) { r.durationMS = ms }
}

// Snapshot sets the rendered tree snapshot stored with the run.
func Snapshot(s string) RunOption {
	return func(r *runData) { r.snapshot = s }
}

// CreatedAt sets the created_at timestamp.
func CreatedAt(t time.Time) RunOption {
	return func(r *runData) { r.createdAt = t }
}
