package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/lootforge/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	// DeadLetter receives events whose retries are exhausted; nil drops them
	DeadLetter *DeadLetterWriter
}

// ResilientPublisher wraps a Bus to add retry logic and dead letter queuing.
// Subscriber failures never propagate back into the game command that
// published the event.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	wg     sync.WaitGroup
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish attempts delivery once and retries in the background on failure.
// It always returns nil so the caller is decoupled from subscriber health.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retryLoop(event, err)

	return nil
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()
	ctx := context.Background()

	for i := 1; i <= p.config.MaxRetries; i++ {
		time.Sleep(p.config.RetryDelay * time.Duration(i))

		err := p.inner.Publish(ctx, event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", i)
			return
		}
		lastErr = err
		logger.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", i, "error", err)
	}

	if p.config.DeadLetter == nil {
		logger.Error(LogMsgEventDroppedClosed, "event_type", event.Type, "error", lastErr)
		return
	}
	if err := p.config.DeadLetter.Write(event, p.config.MaxRetries+1, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterFailed, "event_type", event.Type, "error", err)
		return
	}
	logger.Info(LogMsgEventDeadLettered, "event_type", event.Type)
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown waits for in-flight retries or until ctx is done
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
