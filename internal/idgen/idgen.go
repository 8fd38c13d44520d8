package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces globally unique item instance ids
type Generator interface {
	NewID() string
}

// UUID generates random version 4 UUIDs
type UUID struct{}

// NewUUID returns the production generator
func NewUUID() UUID {
	return UUID{}
}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates "<prefix>-1", "<prefix>-2", ... and is deterministic,
// which makes it the generator of choice in tests.
type Sequence struct {
	prefix string
	next   atomic.Int64
}

// NewSequence creates a sequence generator. An empty prefix defaults to "item".
func NewSequence(prefix string) *Sequence {
	if prefix == "" {
		prefix = "item"
	}
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	return s.prefix + "-" + strconv.FormatInt(s.next.Add(1), 10)
}
