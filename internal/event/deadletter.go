package event

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DeadLetterEntry is one line of the dead-letter file: an event whose
// delivery retries ran out
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	PlayerID      string    `json:"player_id,omitempty"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends entries as JSON lines. Safe for concurrent use.
type DeadLetterWriter struct {
	mu  sync.Mutex
	out io.WriteCloser
	enc *json.Encoder
	now func() time.Time
}

// NewDeadLetterWriter opens path for appending, creating it when missing
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgOpenDeadLetter, path, err)
	}
	return newDeadLetterWriter(f, time.Now), nil
}

func newDeadLetterWriter(out io.WriteCloser, now func() time.Time) *DeadLetterWriter {
	return &DeadLetterWriter{out: out, enc: json.NewEncoder(out), now: now}
}

// Write appends one entry for event
func (w *DeadLetterWriter) Write(event Event, attempts int, lastError error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Event:         event,
		Attempts:      attempts,
	}
	if id, ok := event.GetMetadataValue(MetadataKeyPlayerID).(string); ok {
		entry.PlayerID = id
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	entry.Timestamp = w.now()
	return w.enc.Encode(entry)
}

// Close closes the underlying file
func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Close()
}

// ReadDeadLetters decodes every entry from a dead-letter stream, for
// inspection or replay. A malformed line stops the read with its line number.
func ReadDeadLetters(r io.Reader) ([]DeadLetterEntry, error) {
	var entries []DeadLetterEntry
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var entry DeadLetterEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			return entries, fmt.Errorf(ErrMsgBadDeadLetterFmt, line, err)
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}
