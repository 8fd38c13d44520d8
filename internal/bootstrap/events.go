package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/lootforge/internal/config"
	"github.com/osse101/lootforge/internal/event"
)

// EventSystem is the bus every producer publishes through
type EventSystem struct {
	Bus        *event.MemoryBus
	Publisher  *event.ResilientPublisher
	DeadLetter *event.DeadLetterWriter
}

// InitializeEventSystem creates the in-memory bus and wraps it in a
// resilient publisher whose exhausted retries land in the dead-letter file.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	bus := event.NewMemoryBus()

	var deadLetter *event.DeadLetterWriter
	if cfg.EventDeadLetterPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
		}
		dlw, err := event.NewDeadLetterWriter(cfg.EventDeadLetterPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetter, err)
		}
		deadLetter = dlw
	}

	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries: cfg.EventMaxRetries,
		RetryDelay: cfg.EventRetryDelay,
		DeadLetter: deadLetter,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)

	return &EventSystem{Bus: bus, Publisher: publisher, DeadLetter: deadLetter}, nil
}
