// Package wallet is the in-memory gold and material ledger of one player.
package wallet

import (
	"context"
	"sync"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/logger"
)

// Balances is the serializable state of a wallet
type Balances struct {
	Gold      int                       `json:"gold"`
	Materials map[domain.MaterialID]int `json:"materials"`
}

// Wallet holds non-negative gold and material balances
type Wallet struct {
	mu        sync.RWMutex
	gold      int
	materials map[domain.MaterialID]int
}

// New creates an empty wallet
func New() *Wallet {
	return &Wallet{materials: make(map[domain.MaterialID]int)}
}

// FromBalances restores a wallet, clamping negative entries to zero
func FromBalances(b Balances) *Wallet {
	w := New()
	w.gold = max(0, b.Gold)
	for id, qty := range b.Materials {
		if qty > 0 {
			w.materials[id] = qty
		}
	}
	return w
}

// AddGold credits amount; non-positive amounts are ignored
func (w *Wallet) AddGold(amount int) {
	if amount <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gold += amount
}

// RemoveGold debits amount, clamping at zero
func (w *Wallet) RemoveGold(amount int) {
	if amount <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if amount > w.gold {
		logger.FromContext(context.Background()).Warn(LogMsgGoldClamped, "balance", w.gold, "debit", amount)
		amount = w.gold
	}
	w.gold -= amount
}

// AddMaterial applies delta (negative for debits), clamping at zero
func (w *Wallet) AddMaterial(id domain.MaterialID, delta int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	next := w.materials[id] + delta
	if next < 0 {
		logger.FromContext(context.Background()).Warn(LogMsgMaterialClamped, "material", id, "balance", w.materials[id], "delta", delta)
		next = 0
	}
	if next == 0 {
		delete(w.materials, id)
		return
	}
	w.materials[id] = next
}

// Gold returns the gold balance
func (w *Wallet) Gold() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.gold
}

// Materials returns a copy of the material balances
func (w *Wallet) Materials() map[domain.MaterialID]int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make(map[domain.MaterialID]int, len(w.materials))
	for id, qty := range w.materials {
		out[id] = qty
	}
	return out
}

// Balances returns a snapshot for persistence
func (w *Wallet) Balances() Balances {
	return Balances{Gold: w.Gold(), Materials: w.Materials()}
}
