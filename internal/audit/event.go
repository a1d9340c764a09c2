// Package audit provides structured operation logging for modelpick.
package audit

import (
	"time"
)

// Category represents the type of operation being audited.
type Category string

const (
	CategoryPick    Category = "pick"
	CategoryList    Category = "list"
	CategoryKeys    Category = "keys"
	CategoryHistory Category = "history"
	CategoryCatalog Category = "catalog"
)

// Status represents the outcome of an operation.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusAborted Status = "aborted"
)

// Event represents a single auditable operation.
type Event struct {
	EventID string `json:"event_id"`

	// Operation details
	Category  Category `json:"category"`
	Operation string   `json:"operation"`

	// Result
	Status       Status `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Params       string `json:"params,omitempty"`

	// Timing
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at,omitempty"`
	DurationMs  int64         `json:"duration_ms,omitempty"`
	Duration    time.Duration `json:"-"`
}

// Complete fills in the event outcome and timing.
func (e *Event) Complete(status Status, err error) {
	e.Status = status
	if err != nil {
		e.ErrorMessage = err.Error()
	}
	e.CompletedAt = time.Now()
	e.Duration = e.CompletedAt.Sub(e.StartedAt)
	e.DurationMs = e.Duration.Milliseconds()
}
