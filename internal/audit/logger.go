package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger appends audit events as JSON lines.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
}

// LoggerOption configures the logger.
type LoggerOption func(*Logger)

// WithOutput sets the output writer.
func WithOutput(w io.Writer) LoggerOption {
	return func(l *Logger) {
		l.out = w
	}
}

// NewLogger creates a new audit logger. Default output is stderr.
func NewLogger(opts ...LoggerOption) *Logger {
	l := &Logger{out: os.Stderr}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// OpenFileLogger creates a logger appending to the given file.
func OpenFileLogger(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	return NewLogger(WithOutput(f)), nil
}

// Start begins tracking an operation.
func (l *Logger) Start(category Category, operation string) *Event {
	return &Event{
		EventID:   uuid.New().String(),
		Category:  category,
		Operation: operation,
		StartedAt: time.Now(),
	}
}

// Log writes a completed event to the output.
func (l *Logger) Log(event *Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if event.CompletedAt.IsZero() {
		event.Complete(event.Status, nil)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	_, err = fmt.Fprintf(l.out, "%s\n", data)
	return err
}

// LogSuccess logs a successful operation.
func (l *Logger) LogSuccess(event *Event) error {
	event.Complete(StatusSuccess, nil)
	return l.Log(event)
}

// LogError logs a failed operation.
func (l *Logger) LogError(event *Event, err error) error {
	event.Complete(StatusError, err)
	return l.Log(event)
}

// LogAborted logs a user-aborted operation.
func (l *Logger) LogAborted(event *Event) error {
	event.Complete(StatusAborted, nil)
	return l.Log(event)
}

// Global logger instance
var (
	globalLogger *Logger
	globalOnce   sync.Once
)

// Global returns the global logger instance.
func Global() *Logger {
	globalOnce.Do(func() {
		globalLogger = NewLogger()
	})
	return globalLogger
}

// SetGlobal sets the global logger.
func SetGlobal(l *Logger) {
	globalOnce.Do(func() {})
	globalLogger = l
}
