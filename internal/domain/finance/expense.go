package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ExpenseAggregate accumulates confirmed (settled) and pending (estimated)
// expense at full precision.
//
// Confirmed holds settlement amounts in full; ConfirmedByDay apportions each
// settlement evenly across its span, restricted to the report window, so the
// two views agree only when every settlement lies entirely inside the window.
type ExpenseAggregate struct {
	Confirmed            decimal.Decimal
	Pending              decimal.Decimal
	ConfirmedByDay       map[time.Time]decimal.Decimal
	PendingByDay         map[time.Time]decimal.Decimal
	ByCourier            map[uuid.UUID]decimal.Decimal
	ValidDeliveries      int64
	DeliveriesByService  map[ServiceClass]int64
	PendingDeliveries    int64
	UnresolvedDeliveries int64
	ConfirmedSettlements int
}

// Total returns confirmed plus pending expense at full precision.
func (a *ExpenseAggregate) Total() decimal.Decimal {
	return a.Confirmed.Add(a.Pending)
}

// ExpenseOn returns the apportioned confirmed plus pending expense for a day.
func (a *ExpenseAggregate) ExpenseOn(day time.Time) decimal.Decimal {
	d := DateOf(day)
	return a.ConfirmedByDay[d].Add(a.PendingByDay[d])
}

// ExpenseAggregator combines the two expense sources for one report window:
// confirmed settlements, and valid deliveries not covered by any settlement,
// priced through the request-scoped price cache.
type ExpenseAggregator struct {
	coverage    *CoverageTracker
	prices      *priceCache
	nameIndex   map[string]uuid.UUID
	windowStart time.Time
	windowEnd   time.Time
	logger      *zap.Logger
}

// NewExpenseAggregator builds an aggregator for one computation. The courier
// list seeds the normalized-name index used to resolve legacy free-text
// courier references.
func NewExpenseAggregator(
	coverage *CoverageTracker,
	resolver PriceResolver,
	subOrgID uuid.UUID,
	couriers []Courier,
	windowStart, windowEnd time.Time,
	logger *zap.Logger,
) *ExpenseAggregator {
	nameIndex := make(map[string]uuid.UUID, len(couriers))
	for _, c := range couriers {
		key := NormalizeName(c.Name)
		if key == "" {
			continue
		}
		if _, exists := nameIndex[key]; !exists {
			nameIndex[key] = c.ID
		}
	}
	return &ExpenseAggregator{
		coverage:    coverage,
		prices:      newPriceCache(resolver, subOrgID, logger),
		nameIndex:   nameIndex,
		windowStart: DateOf(windowStart),
		windowEnd:   DateOf(windowEnd),
		logger:      logger,
	}
}

// Aggregate computes the expense breakdown for the window.
func (a *ExpenseAggregator) Aggregate(
	ctx context.Context,
	settlements []SettlementRecord,
	deliveries []DeliveryEvent,
) *ExpenseAggregate {
	agg := &ExpenseAggregate{
		Confirmed:           decimal.Zero,
		Pending:             decimal.Zero,
		ConfirmedByDay:      make(map[time.Time]decimal.Decimal),
		PendingByDay:        make(map[time.Time]decimal.Decimal),
		ByCourier:           make(map[uuid.UUID]decimal.Decimal),
		DeliveriesByService: make(map[ServiceClass]int64, len(ServiceClasses)),
	}

	a.addConfirmed(agg, settlements)
	a.addPending(ctx, agg, deliveries)

	if agg.UnresolvedDeliveries > 0 {
		a.logger.Warn("deliveries excluded from expense attribution: courier unresolvable",
			zap.Int64("count", agg.UnresolvedDeliveries),
		)
	}
	return agg
}

// addConfirmed takes each confirmed settlement's final amount in full for
// the period figure, and apportions value/day_count to every span day that
// falls inside the report window for the daily series.
func (a *ExpenseAggregator) addConfirmed(agg *ExpenseAggregate, settlements []SettlementRecord) {
	for _, s := range settlements {
		if !s.Status.IsConfirmed() {
			continue
		}
		agg.ConfirmedSettlements++
		agg.Confirmed = agg.Confirmed.Add(s.FinalAmount)
		agg.ByCourier[s.CourierID] = agg.ByCourier[s.CourierID].Add(s.FinalAmount)

		perDay := s.FinalAmount.Div(decimal.NewFromInt(s.DayCount()))
		end := DateOf(s.PeriodEnd)
		for day := DateOf(s.PeriodStart); !day.After(end); day = day.AddDate(0, 0, 1) {
			if day.Before(a.windowStart) || day.After(a.windowEnd) {
				continue
			}
			agg.ConfirmedByDay[day] = agg.ConfirmedByDay[day].Add(perDay)
		}
	}
}

// addPending prices every valid, attributable, not-yet-settled delivery.
func (a *ExpenseAggregator) addPending(ctx context.Context, agg *ExpenseAggregate, deliveries []DeliveryEvent) {
	for _, d := range deliveries {
		if !d.Status.IsValid() {
			continue
		}
		agg.ValidDeliveries++
		class := ClassifyService(d.ServiceLabel)
		agg.DeliveriesByService[class]++

		courierID, ok := a.resolveCourier(d)
		if !ok {
			agg.UnresolvedDeliveries++
			continue
		}

		day := DateOf(d.Date)
		if a.coverage.IsCovered(courierID, day) {
			continue
		}

		price := a.prices.pricesFor(ctx, courierID).For(class)
		agg.Pending = agg.Pending.Add(price)
		agg.PendingByDay[day] = agg.PendingByDay[day].Add(price)
		agg.ByCourier[courierID] = agg.ByCourier[courierID].Add(price)
		agg.PendingDeliveries++
	}
}

// resolveCourier ties a delivery to a courier: direct id first, then the
// normalized-name index for legacy free-text rows.
func (a *ExpenseAggregator) resolveCourier(d DeliveryEvent) (uuid.UUID, bool) {
	if d.CourierID != nil && *d.CourierID != uuid.Nil {
		return *d.CourierID, true
	}
	if key := NormalizeName(d.CourierName); key != "" {
		if id, ok := a.nameIndex[key]; ok {
			return id, true
		}
	}
	return uuid.Nil, false
}
