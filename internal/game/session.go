// Package game wires one player's inventory, wallet, party, equipment and
// loot generator into a session, and keeps sessions cached between requests.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/lootforge/internal/catalog"
	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/equipment"
	"github.com/osse101/lootforge/internal/event"
	"github.com/osse101/lootforge/internal/idgen"
	"github.com/osse101/lootforge/internal/inventory"
	"github.com/osse101/lootforge/internal/logger"
	"github.com/osse101/lootforge/internal/loot"
	"github.com/osse101/lootforge/internal/notify"
	"github.com/osse101/lootforge/internal/party"
	"github.com/osse101/lootforge/internal/wallet"
)

// Config holds per-session settings
type Config struct {
	InventoryCapacity int
	HistoryLimit      int
}

// Dependencies are shared by every session. Events, Hub and Rand may be nil.
type Dependencies struct {
	Catalog *catalog.Catalog
	Events  event.Publisher
	Hub     notify.Broadcaster
	IDs     idgen.Generator
	Rand    func() float64
	Now     func() time.Time
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Catalog == nil {
		d.Catalog = catalog.Default()
	}
	if d.IDs == nil {
		d.IDs = idgen.NewUUID()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// Session is the live state of one player. It is not safe for concurrent
// use; Registry.Do serializes access.
type Session struct {
	playerID string
	zone     int
	now      func() time.Time

	wallet    *wallet.Wallet
	party     *party.Store
	history   *notify.Recorder
	ledger    *inventory.Ledger
	equipment *equipment.Transfer
	loot      *loot.Generator
}

// NewSession creates a fresh session: empty inventory and wallet, default
// party, zone 1
func NewSession(playerID string, cfg Config, deps Dependencies) *Session {
	return build(playerID, domain.DefaultZone, wallet.New(), party.NewStore(party.DefaultParty()...), cfg, deps)
}

// RestoreSession rebuilds a session from a save
func RestoreSession(save domain.SaveData, cfg Config, deps Dependencies) (*Session, error) {
	members := save.Party
	if len(members) == 0 {
		members = party.DefaultParty()
	}
	equipped := make(map[string]struct{})
	for _, m := range members {
		for slot, it := range m.Equipment {
			if it == nil {
				continue
			}
			if it.Type != slot {
				return nil, fmt.Errorf(ErrMsgSlotMismatchFmt, it.InstanceID, slot, m.ID, domain.ErrInvalidInput)
			}
			if _, dup := equipped[it.InstanceID]; dup {
				return nil, fmt.Errorf(ErrMsgEquippedTwiceFmt, it.InstanceID, domain.ErrInvalidInput)
			}
			equipped[it.InstanceID] = struct{}{}
		}
	}
	for _, it := range save.Inventory.Items {
		if _, dup := equipped[it.InstanceID]; dup {
			return nil, fmt.Errorf(ErrMsgEquippedInInvFmt, it.InstanceID, domain.ErrInvalidInput)
		}
	}

	w := wallet.FromBalances(wallet.Balances{Gold: save.Gold, Materials: save.Materials})
	s := build(save.PlayerID, save.Zone, w, party.NewStore(members...), cfg, deps)
	if err := s.ledger.LoadSnapshot(save.Inventory); err != nil {
		return nil, err
	}
	return s, nil
}

func build(playerID string, zone int, w *wallet.Wallet, p *party.Store, cfg Config, deps Dependencies) *Session {
	deps = deps.withDefaults()
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if zone < 1 {
		zone = domain.DefaultZone
	}

	s := &Session{
		playerID: playerID,
		zone:     zone,
		now:      deps.Now,
		wallet:   w,
		party:    p,
		history:  notify.NewRecorder(cfg.HistoryLimit),
	}

	notifier := notify.Multi{s.history, notify.LogNotifier{PlayerID: playerID}}
	if deps.Hub != nil {
		notifier = append(notifier, notify.NewHubNotifier(deps.Hub, playerID))
	}

	s.ledger = inventory.NewLedger(inventory.Config{
		PlayerID: playerID,
		Capacity: cfg.InventoryCapacity,
	}, inventory.Dependencies{
		Catalog:   deps.Catalog,
		Resources: w,
		Notifier:  notifier,
		Progress:  s,
		IDs:       deps.IDs,
		Events:    deps.Events,
		Now:       deps.Now,
	})

	var equipOpts []equipment.Option
	lootOpts := []loot.Option{loot.WithClock(deps.Now)}
	if deps.Events != nil {
		equipOpts = append(equipOpts, equipment.WithEvents(deps.Events, playerID))
		lootOpts = append(lootOpts, loot.WithEvents(deps.Events, playerID))
	}
	if deps.Rand != nil {
		lootOpts = append(lootOpts, loot.WithRandom(deps.Rand))
	}
	s.equipment = equipment.NewTransfer(s.ledger, p, notifier, equipOpts...)
	s.loot = loot.NewGenerator(deps.Catalog, s.ledger, deps.IDs, lootOpts...)
	return s
}

// PlayerID returns the owner of the session
func (s *Session) PlayerID() string { return s.playerID }

// CurrentZone reports the player's zone to the inventory
func (s *Session) CurrentZone() int { return s.zone }

// SetZone moves the player; values below 1 are ignored
func (s *Session) SetZone(ctx context.Context, zone int) {
	if zone < 1 || zone == s.zone {
		return
	}
	logger.FromContext(ctx).Info(LogMsgZoneChanged, "player_id", s.playerID, "from", s.zone, "to", zone)
	s.zone = zone
}

// Inventory returns the item ledger
func (s *Session) Inventory() *inventory.Ledger { return s.ledger }

// Equipment returns the equipment transfer
func (s *Session) Equipment() *equipment.Transfer { return s.equipment }

// Loot returns the loot generator
func (s *Session) Loot() *loot.Generator { return s.loot }

// Wallet returns the gold and material balances
func (s *Session) Wallet() *wallet.Wallet { return s.wallet }

// Party returns the party store
func (s *Session) Party() *party.Store { return s.party }

// Notifications returns recent notifications, oldest first
func (s *Session) Notifications() []domain.Notification { return s.history.History() }

// NotificationMark returns a position to pass to NotificationsSince
func (s *Session) NotificationMark() int { return s.history.Total() }

// NotificationsSince returns the notifications raised after mark
func (s *Session) NotificationsSince(mark int) []domain.Notification { return s.history.Since(mark) }

// Snapshot captures everything needed to restore the session
func (s *Session) Snapshot() domain.SaveData {
	balances := s.wallet.Balances()
	return domain.SaveData{
		SchemaVersion: domain.SaveSchemaVersion,
		PlayerID:      s.playerID,
		Zone:          s.zone,
		Gold:          balances.Gold,
		Materials:     balances.Materials,
		Inventory:     s.ledger.Snapshot(),
		Party:         s.party.Members(),
		SavedAt:       s.now(),
	}
}
