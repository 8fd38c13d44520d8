package worker

import (
	"context"
	"fmt"

	"github.com/osse101/lootforge/internal/logger"
)

// SessionSaver persists every cached session
type SessionSaver interface {
	SaveAll(ctx context.Context) (int, error)
}

// AutosaveJob saves every live player session
type AutosaveJob struct {
	saver SessionSaver
}

// NewAutosaveJob creates an autosave job for saver
func NewAutosaveJob(saver SessionSaver) *AutosaveJob {
	return &AutosaveJob{saver: saver}
}

// Process runs one autosave pass
func (j *AutosaveJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgAutosaveStarting)

	saved, err := j.saver.SaveAll(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgAutosaveFailed, err)
	}
	log.Debug(LogMsgAutosaveCompleted, "saved", saved)
	return nil
}
