package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/lootforge/internal/event"
	"github.com/osse101/lootforge/internal/game"
	"github.com/osse101/lootforge/internal/scheduler"
	"github.com/osse101/lootforge/internal/server"
	"github.com/osse101/lootforge/internal/sse"
	"github.com/osse101/lootforge/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	Registry   *game.Registry
	Hub        *sse.Hub
	Events     *EventSystem
	DBPool     *pgxpool.Pool
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new commands)
// 2. Scheduler and worker pool (no autosave races the final save)
// 3. Session registry (final save of every live session)
// 4. SSE hub and event publisher (flush pending retries)
// 5. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}

	if c.Registry != nil {
		slog.Info(LogMsgSavingSessions, "sessions", c.Registry.Len())
		if err := c.Registry.Close(ctx); err != nil {
			slog.Error(LogMsgRegistryCloseFailed, "error", err)
		}
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.Events != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		shutdownPublisher(ctx, c.Events.Publisher)
		if c.Events.DeadLetter != nil {
			if err := c.Events.DeadLetter.Close(); err != nil {
				slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
			}
		}
	}

	if c.DBPool != nil {
		c.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}

func shutdownPublisher(ctx context.Context, p *event.ResilientPublisher) {
	if p == nil {
		return
	}
	if err := p.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}
}
