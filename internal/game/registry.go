package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/lootforge/internal/concurrency"
	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/logger"
	"github.com/osse101/lootforge/internal/metrics"
	"github.com/osse101/lootforge/internal/repository"
)

// RegistryConfig bounds the session cache
type RegistryConfig struct {
	CacheSize int
	TTL       time.Duration
	Session   Config
}

// Registry owns every live session. Commands for one player run one at a
// time under that player's lock; sessions leaving the cache are saved.
type Registry struct {
	cfg   RegistryConfig
	deps  Dependencies
	store repository.SaveStore
	locks *concurrency.LockManager
	cache *expirable.LRU[string, *Session]

	// evicted holds sessions dropped by the cache whose save has not run yet
	evicted sync.Map
	saves   sync.WaitGroup
}

// NewRegistry creates a registry persisting through store
func NewRegistry(cfg RegistryConfig, deps Dependencies, store repository.SaveStore) *Registry {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultSessionTTL
	}
	if store == nil {
		store = repository.NewMemoryStore()
	}
	r := &Registry{
		cfg:   cfg,
		deps:  deps.withDefaults(),
		store: store,
		locks: concurrency.NewLockManager(),
	}
	r.cache = expirable.NewLRU[string, *Session](cfg.CacheSize, r.onEvict, cfg.TTL)
	return r
}

// Do runs fn against the session of playerID, loading or creating it first.
// fn must not retain the session after it returns.
func (r *Registry) Do(ctx context.Context, playerID string, fn func(ctx context.Context, s *Session) error) error {
	if playerID == "" {
		return fmt.Errorf("%s: %w", ErrMsgEmptyPlayerID, domain.ErrInvalidInput)
	}
	mu := r.locks.GetLock(playerID)
	mu.Lock()
	defer mu.Unlock()

	s, err := r.session(ctx, playerID)
	if err != nil {
		return err
	}
	return fn(ctx, s)
}

// session must be called with the player's lock held
func (r *Registry) session(ctx context.Context, playerID string) (*Session, error) {
	if s, ok := r.cache.Get(playerID); ok {
		return s, nil
	}

	log := logger.FromContext(ctx)
	if pending, ok := r.evicted.LoadAndDelete(playerID); ok {
		s := pending.(*Session)
		log.Debug(LogMsgSessionReclaim, "player_id", playerID)
		r.add(playerID, s)
		return s, nil
	}

	save, err := r.store.Load(ctx, playerID)
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		s := NewSession(playerID, r.cfg.Session, r.deps)
		log.Info(LogMsgSessionCreated, "player_id", playerID)
		r.add(playerID, s)
		return s, nil
	case err != nil:
		return nil, fmt.Errorf(ErrMsgLoadSaveFmt, playerID, err)
	}

	save.PlayerID = playerID
	s, err := RestoreSession(*save, r.cfg.Session, r.deps)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRestoreSaveFmt, playerID, err)
	}
	log.Info(LogMsgSessionLoaded, "player_id", playerID, "items", s.Inventory().Count())
	r.add(playerID, s)
	return s, nil
}

func (r *Registry) add(playerID string, s *Session) {
	r.cache.Add(playerID, s)
	metrics.SessionsActive.Set(float64(r.cache.Len()))
}

// onEvict runs inside the cache, possibly while another player's lock is
// held, so the save is handed off to a goroutine taking the owner's lock.
func (r *Registry) onEvict(playerID string, s *Session) {
	r.evicted.Store(playerID, s)
	r.saves.Add(1)
	go func() {
		defer r.saves.Done()
		mu := r.locks.GetLock(playerID)
		mu.Lock()
		defer mu.Unlock()

		if !r.evicted.CompareAndDelete(playerID, s) {
			// reclaimed by Do, still live
			return
		}
		slog.Default().Info(LogMsgSessionEvicted, "player_id", playerID)
		if err := r.store.Save(context.Background(), playerID, s.Snapshot()); err != nil {
			metrics.AutosaveFailures.Inc()
			slog.Default().Error(LogMsgSaveFailed, "player_id", playerID, "error", err)
		}
		metrics.SessionsActive.Set(float64(r.cache.Len()))
	}()
}

// SaveAll persists every cached session and returns how many were saved
func (r *Registry) SaveAll(ctx context.Context) (int, error) {
	var errs []error
	saved := 0
	for _, playerID := range r.cache.Keys() {
		err := r.saveCached(ctx, playerID)
		switch {
		case err == nil:
			saved++
		case errors.Is(err, domain.ErrPlayerNotFound):
			// evicted between Keys and the lock
		default:
			metrics.AutosaveFailures.Inc()
			errs = append(errs, err)
		}
	}
	metrics.AutosavesTotal.Inc()
	logger.FromContext(ctx).Info(LogMsgSaveAllComplete, "saved", saved, "failed", len(errs))
	return saved, errors.Join(errs...)
}

func (r *Registry) saveCached(ctx context.Context, playerID string) error {
	mu := r.locks.GetLock(playerID)
	mu.Lock()
	defer mu.Unlock()

	s, ok := r.cache.Peek(playerID)
	if !ok {
		return domain.ErrPlayerNotFound
	}
	if err := r.store.Save(ctx, playerID, s.Snapshot()); err != nil {
		return fmt.Errorf(ErrMsgSaveSessionFmt, playerID, err)
	}
	return nil
}

// Len returns the number of cached sessions
func (r *Registry) Len() int {
	return r.cache.Len()
}

// Close saves every cached session and waits for pending eviction saves
func (r *Registry) Close(ctx context.Context) error {
	_, err := r.SaveAll(ctx)
	r.saves.Wait()
	return err
}
