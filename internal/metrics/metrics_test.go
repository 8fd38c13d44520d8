package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/event"
)

func TestEventMetricsCollector_RecordsBusinessMetrics(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	soldBefore := testutil.ToFloat64(ItemsSold.WithLabelValues(string(domain.RarityEpic)))
	goldBefore := testutil.ToFloat64(GoldEarned)
	scrapBefore := testutil.ToFloat64(MaterialsGained.WithLabelValues(string(domain.MaterialScrap)))
	rejectedBefore := testutil.ToFloat64(LootRejected)
	spentBefore := testutil.ToFloat64(GoldSpent)

	items := []*domain.Item{
		{InstanceID: "a", Rarity: domain.RarityEpic},
		{InstanceID: "b", Rarity: domain.RarityEpic},
	}
	require.NoError(t, bus.Publish(ctx, event.NewItemSoldEvent("p1", items, 120)))
	require.NoError(t, bus.Publish(ctx, event.NewItemSalvagedEvent("p1", items, domain.MaterialYield{domain.MaterialScrap: 16})))
	require.NoError(t, bus.Publish(ctx, event.NewItemLootedEvent("p1", items[0], false)))
	require.NoError(t, bus.Publish(ctx, event.NewItemUpgradedEvent("p1", items[0], 40)))

	assert.Equal(t, soldBefore+2, testutil.ToFloat64(ItemsSold.WithLabelValues(string(domain.RarityEpic))))
	assert.Equal(t, goldBefore+120, testutil.ToFloat64(GoldEarned))
	assert.Equal(t, scrapBefore+16, testutil.ToFloat64(MaterialsGained.WithLabelValues(string(domain.MaterialScrap))))
	assert.Equal(t, rejectedBefore+1, testutil.ToFloat64(LootRejected))
	assert.Equal(t, spentBefore+40, testutil.ToFloat64(GoldSpent))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/players/{playerID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/players/{playerID}", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/p42", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
