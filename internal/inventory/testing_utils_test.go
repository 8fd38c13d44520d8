package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/lootforge/internal/catalog"
	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/event"
	"github.com/osse101/lootforge/internal/idgen"
	"github.com/osse101/lootforge/internal/notify"
	"github.com/osse101/lootforge/internal/wallet"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fixedZone int

func (z fixedZone) CurrentZone() int { return int(z) }

type testEnv struct {
	ledger   *Ledger
	wallet   *wallet.Wallet
	recorder *notify.Recorder
	bus      *event.MemoryBus
	events   []event.Event
}

func newTestEnv(t *testing.T, capacity int, zone int) *testEnv {
	t.Helper()
	env := &testEnv{
		wallet:   wallet.New(),
		recorder: notify.NewRecorder(100),
		bus:      event.NewMemoryBus(),
	}
	env.bus.SubscribeAll(func(_ context.Context, e event.Event) error {
		env.events = append(env.events, e)
		return nil
	})
	env.ledger = NewLedger(Config{PlayerID: "p1", Capacity: capacity}, Dependencies{
		Catalog:   catalog.Default(),
		Resources: env.wallet,
		Notifier:  env.recorder,
		Progress:  fixedZone(zone),
		IDs:       idgen.NewSequence("inst"),
		Events:    env.bus,
		Now:       func() time.Time { return fixedNow },
	})
	return env
}

func (e *testEnv) lastNotification(t *testing.T) domain.Notification {
	t.Helper()
	n, ok := e.recorder.Last()
	if !ok {
		t.Fatal("expected a notification")
	}
	return n
}

func (e *testEnv) eventsOf(typ event.Type) []event.Event {
	var out []event.Event
	for _, evt := range e.events {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

func newItem(rarity domain.Rarity, slot domain.SlotType, stats domain.Stats) *domain.Item {
	return &domain.Item{
		CatalogID: "loot_test",
		Name:      "Test " + string(slot),
		Type:      slot,
		Rarity:    rarity,
		Stats:     stats,
		Zone:      1,
	}
}

// MockResourceLedger is a testify mock for ResourceLedger
type MockResourceLedger struct {
	mock.Mock
}

func (m *MockResourceLedger) AddGold(amount int) {
	m.Called(amount)
}

func (m *MockResourceLedger) RemoveGold(amount int) {
	m.Called(amount)
}

func (m *MockResourceLedger) AddMaterial(id domain.MaterialID, delta int) {
	m.Called(id, delta)
}

func (m *MockResourceLedger) Gold() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockResourceLedger) Materials() map[domain.MaterialID]int {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[domain.MaterialID]int)
}
