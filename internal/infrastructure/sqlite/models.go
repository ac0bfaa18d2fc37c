package sqlite

import (
	"time"

	"github.com/google/uuid"
)

// Run statuses recorded in the history database.
const (
	RunStatusOK    = "ok"
	RunStatusError = "error"
)

// Run is one recorded resolution. Error and TraceID map to nullable columns,
// created_at is stored as a Unix timestamp.
type Run struct {
	ID         string
	Descriptor string
	Status     string
	Error      *string
	TraceID    *string
	NodeCount  int
	DurationMS int64
	Snapshot   string
	CreatedAt  time.Time
}

// NewRun creates a Run for the given descriptor with a fresh ID, an ok
// status, and the current time. Callers fill in the outcome fields before
// saving.
func NewRun(descriptor string) *Run {
	return &Run{
		ID:         uuid.New().String(),
		Descriptor: descriptor,
		Status:     RunStatusOK,
		CreatedAt:  time.Now(),
	}
}

// MarkFailed flips the run to the error status and records the message.
func (r *Run) MarkFailed(err error) {
	r.Status = RunStatusError
	if err != nil {
		msg := err.Error()
		r.Error = &msg
	}
}

// SetTraceID attaches a trace ID for correlation with logs and spans.
// Empty IDs are ignored so the column stays NULL when tracing is off.
func (r *Run) SetTraceID(traceID string) {
	if traceID == "" {
		return
	}
	r.TraceID = &traceID
}
