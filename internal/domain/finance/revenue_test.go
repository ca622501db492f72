package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collection(occurredAt time.Time, base string, shopee, meli, avulso int64, value string) CollectionEvent {
	return CollectionEvent{
		ID:                uuid.New(),
		OccurredAt:        occurredAt,
		Base:              base,
		ShopeeCount:       shopee,
		MercadoLivreCount: meli,
		AvulsoCount:       avulso,
		TotalValue:        decimal.RequireFromString(value),
	}
}

func TestAggregateRevenue(t *testing.T) {
	t.Run("allocates value across services proportionally to item counts", func(t *testing.T) {
		agg := AggregateRevenue([]CollectionEvent{
			collection(day(2024, 3, 10), "Centro", 3, 1, 0, "100.00"),
		})

		assert.Equal(t, "100", agg.Total.String())
		assert.Equal(t, "75", agg.ByService[ServiceShopee].String())
		assert.Equal(t, "25", agg.ByService[ServiceMercadoLivre].String())
		assert.True(t, agg.ByService[ServiceAvulso].IsZero())
		assert.Equal(t, int64(4), agg.TotalItems)
	})

	t.Run("per-service allocation keeps full precision", func(t *testing.T) {
		// 100/3 is periodic; the three shares must still sum back to 100.
		agg := AggregateRevenue([]CollectionEvent{
			collection(day(2024, 3, 10), "Centro", 1, 1, 1, "100.00"),
		})

		sum := agg.ByService[ServiceShopee].
			Add(agg.ByService[ServiceMercadoLivre]).
			Add(agg.ByService[ServiceAvulso])
		assert.True(t, sum.Equal(agg.Total), "sum %s != total %s", sum, agg.Total)
	})

	t.Run("zero-item event keeps value only in grand total", func(t *testing.T) {
		agg := AggregateRevenue([]CollectionEvent{
			collection(day(2024, 3, 10), "Centro", 2, 0, 0, "80.00"),
			collection(day(2024, 3, 10), "Centro", 0, 0, 0, "20.00"),
		})

		assert.Equal(t, "100", agg.Total.String())
		serviceSum := agg.ByService[ServiceShopee].
			Add(agg.ByService[ServiceMercadoLivre]).
			Add(agg.ByService[ServiceAvulso])
		// Orphaned value stays out of every service bucket.
		assert.Equal(t, "80", serviceSum.String())
	})

	t.Run("per-base revenue conserves the total", func(t *testing.T) {
		agg := AggregateRevenue([]CollectionEvent{
			collection(day(2024, 3, 10), "centro ", 1, 0, 0, "10.50"),
			collection(day(2024, 3, 11), "CENTRO", 1, 0, 0, "9.50"),
			collection(day(2024, 3, 11), "Zona Sul", 1, 0, 0, "30.00"),
			collection(day(2024, 3, 12), "", 0, 0, 0, "5.00"),
		})

		require.Len(t, agg.ByBase, 3)
		assert.Equal(t, "20", agg.ByBase["CENTRO"].String())
		assert.Equal(t, "30", agg.ByBase["ZONA SUL"].String())
		assert.Equal(t, "5", agg.ByBase[UnassignedBase].String())

		var baseSum decimal.Decimal
		for _, v := range agg.ByBase {
			baseSum = baseSum.Add(v)
		}
		assert.True(t, baseSum.Equal(agg.Total))
	})

	t.Run("buckets revenue by calendar day", func(t *testing.T) {
		agg := AggregateRevenue([]CollectionEvent{
			collection(time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC), "Centro", 1, 0, 0, "10.00"),
			collection(time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC), "Centro", 1, 0, 0, "15.00"),
			collection(day(2024, 3, 11), "Centro", 1, 0, 0, "7.00"),
		})

		assert.Equal(t, "25", agg.RevenueOn(day(2024, 3, 10)).String())
		assert.Equal(t, "7", agg.RevenueOn(day(2024, 3, 11)).String())
		assert.True(t, agg.RevenueOn(day(2024, 3, 12)).IsZero())
	})

	t.Run("empty input yields zeroed aggregate", func(t *testing.T) {
		agg := AggregateRevenue(nil)
		assert.True(t, agg.Total.IsZero())
		assert.Equal(t, int64(0), agg.TotalItems)
		assert.Empty(t, agg.ByDay)
		assert.Empty(t, agg.ByBase)
	})
}
