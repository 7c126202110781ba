// Package logrecord writes and reads the single-line JSON log records the
// greet command prints.
package logrecord

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// TimestampLayout renders ISO-8601 UTC time with millisecond precision,
// e.g. 2026-10-14T09:30:00.123Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const (
	// MessageField is the JSON key holding the greeting text.
	MessageField = "message"
	// TimestampField is the JSON key holding the emission time.
	TimestampField = "timestamp"
)

// Record is one decoded log line.
type Record struct {
	Level     string `json:"level"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Time parses the record timestamp.
func (r Record) Time() (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", r.Timestamp, err)
	}
	return t, nil
}

// Emitter writes info level records through zerolog.
type Emitter struct {
	logger zerolog.Logger
	out    *trackingWriter
	clock  func() time.Time
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithClock overrides the time source used for timestamps.
func WithClock(clock func() time.Time) Option {
	return func(e *Emitter) {
		e.clock = clock
	}
}

// NewEmitter returns an Emitter writing one JSON object per line to w.
func NewEmitter(w io.Writer, opts ...Option) *Emitter {
	out := &trackingWriter{w: w}
	e := &Emitter{
		logger: zerolog.New(out).Level(zerolog.InfoLevel),
		out:    out,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit writes message as a single info record with keys in the order
// level, message, timestamp.
func (e *Emitter) Emit(message string) error {
	e.out.err = nil

	e.logger.Info().
		Str(MessageField, message).
		Str(TimestampField, e.clock().UTC().Format(TimestampLayout)).
		Send()

	if e.out.err != nil {
		return fmt.Errorf("failed to write log record: %w", e.out.err)
	}
	return nil
}

// Parse decodes a single emitted line.
func Parse(line []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(line, &r); err != nil {
		return Record{}, fmt.Errorf("failed to parse log record: %w", err)
	}
	return r, nil
}

// trackingWriter keeps the last write error, which zerolog itself only
// reports to its ErrorHandler.
type trackingWriter struct {
	w   io.Writer
	err error
}

func (t *trackingWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil {
		t.err = err
	}
	return n, err
}
