package game

import "time"

// Registry defaults
const (
	DefaultCacheSize    = 256
	DefaultSessionTTL   = 30 * time.Minute
	DefaultHistoryLimit = 50
)

// Log messages
const (
	LogMsgSessionCreated  = "Created new player session"
	LogMsgSessionLoaded   = "Loaded player session from save"
	LogMsgSessionEvicted  = "Player session evicted, saving"
	LogMsgSessionReclaim  = "Reclaimed evicted session before save completed"
	LogMsgSaveFailed      = "Failed to save player session"
	LogMsgSaveAllComplete = "Saved cached player sessions"
	LogMsgZoneChanged     = "Player zone changed"
)

// Error messages
const (
	ErrMsgLoadSaveFmt      = "failed to load save for %s: %w"
	ErrMsgRestoreSaveFmt   = "failed to restore save for %s: %w"
	ErrMsgSaveSessionFmt   = "failed to save session %s: %w"
	ErrMsgEquippedInInvFmt = "instance %q is both equipped and in the inventory: %w"
	ErrMsgEquippedTwiceFmt = "instance %q is equipped more than once: %w"
	ErrMsgSlotMismatchFmt  = "instance %q does not fit slot %s of %s: %w"
	ErrMsgEmptyPlayerID    = "player id is required"
)
