package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/lootforge/internal/domain"
)

func TestWallet_Gold(t *testing.T) {
	w := New()

	w.AddGold(50)
	w.AddGold(-10)
	w.RemoveGold(20)
	assert.Equal(t, 30, w.Gold())

	w.RemoveGold(100)
	assert.Equal(t, 0, w.Gold(), "balance never goes negative")
}

func TestWallet_Materials(t *testing.T) {
	w := New()

	w.AddMaterial(domain.MaterialScrap, 8)
	w.AddMaterial(domain.MaterialEssence, 2)
	w.AddMaterial(domain.MaterialScrap, -8)
	w.AddMaterial(domain.MaterialEssence, -5)

	assert.Empty(t, w.Materials())
}

func TestWallet_MaterialsIsCopy(t *testing.T) {
	w := New()
	w.AddMaterial(domain.MaterialCrystal, 1)

	m := w.Materials()
	m[domain.MaterialCrystal] = 99

	assert.Equal(t, 1, w.Materials()[domain.MaterialCrystal])
}

func TestWallet_BalancesRoundTrip(t *testing.T) {
	w := FromBalances(Balances{
		Gold:      -5,
		Materials: map[domain.MaterialID]int{domain.MaterialScrap: 4, domain.MaterialEssence: -1},
	})

	b := w.Balances()
	assert.Equal(t, 0, b.Gold)
	assert.Equal(t, map[domain.MaterialID]int{domain.MaterialScrap: 4}, b.Materials)
}
