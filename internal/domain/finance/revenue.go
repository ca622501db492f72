package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueAggregate accumulates collection revenue at full precision. Values
// are quantized only when they become final reported figures.
type RevenueAggregate struct {
	Total          decimal.Decimal
	ByService      map[ServiceClass]decimal.Decimal
	ItemsByService map[ServiceClass]int64
	TotalItems     int64
	ByDay          map[time.Time]decimal.Decimal
	ByBase         map[string]decimal.Decimal
}

// AggregateRevenue buckets collection events by service class, calendar day
// and base. Each event's value is allocated across service classes in
// proportion to item counts, without rounding. An event with zero items
// contributes to the grand total (and its day/base buckets) but to no
// service bucket; that orphaned value is intentional, see the per-service
// conservation tests.
func AggregateRevenue(events []CollectionEvent) *RevenueAggregate {
	agg := &RevenueAggregate{
		Total:          decimal.Zero,
		ByService:      make(map[ServiceClass]decimal.Decimal, len(ServiceClasses)),
		ItemsByService: make(map[ServiceClass]int64, len(ServiceClasses)),
		ByDay:          make(map[time.Time]decimal.Decimal),
		ByBase:         make(map[string]decimal.Decimal),
	}
	for _, class := range ServiceClasses {
		agg.ByService[class] = decimal.Zero
	}

	for _, event := range events {
		value := event.TotalValue
		agg.Total = agg.Total.Add(value)

		day := DateOf(event.OccurredAt)
		agg.ByDay[day] = agg.ByDay[day].Add(value)

		base := NormalizeBase(event.Base)
		agg.ByBase[base] = agg.ByBase[base].Add(value)

		counts := map[ServiceClass]int64{
			ServiceShopee:       event.ShopeeCount,
			ServiceMercadoLivre: event.MercadoLivreCount,
			ServiceAvulso:       event.AvulsoCount,
		}
		totalItems := event.TotalItems()
		agg.TotalItems += totalItems
		for class, count := range counts {
			agg.ItemsByService[class] += count
		}

		if totalItems == 0 {
			continue
		}
		totalDec := decimal.NewFromInt(totalItems)
		for class, count := range counts {
			if count == 0 {
				continue
			}
			share := value.Mul(decimal.NewFromInt(count)).Div(totalDec)
			agg.ByService[class] = agg.ByService[class].Add(share)
		}
	}

	return agg
}

// RevenueOn returns the accumulated revenue for a calendar day.
func (a *RevenueAggregate) RevenueOn(day time.Time) decimal.Decimal {
	return a.ByDay[DateOf(day)]
}
