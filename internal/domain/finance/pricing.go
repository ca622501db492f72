package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ServicePrices holds the unit price a courier earns per delivery, one per
// service class.
type ServicePrices struct {
	Shopee       decimal.Decimal
	MercadoLivre decimal.Decimal
	Avulso       decimal.Decimal
}

// For returns the unit price for the given service class.
func (p ServicePrices) For(class ServiceClass) decimal.Decimal {
	switch class {
	case ServiceShopee:
		return p.Shopee
	case ServiceMercadoLivre:
		return p.MercadoLivre
	default:
		return p.Avulso
	}
}

// ZeroPrices is the degraded price set used when resolution fails.
var ZeroPrices = ServicePrices{
	Shopee:       decimal.Zero,
	MercadoLivre: decimal.Zero,
	Avulso:       decimal.Zero,
}

// PriceResolver resolves per-service unit prices for a courier within a
// sub-organization. Implemented by the courier master-data repository.
type PriceResolver interface {
	ResolvePrices(ctx context.Context, courierID, subOrgID uuid.UUID) (ServicePrices, error)
}

// resolvedPrices carries either resolved prices or an explicit
// unresolved-use-zero marker, so callers never branch on errors.
type resolvedPrices struct {
	prices   ServicePrices
	resolved bool
}

// priceCache memoizes price resolution per courier for the duration of one
// report computation. Keyed by courier id; discarded with the computation,
// never shared across requests. A resolver failure pins the courier to zero
// prices for the rest of the computation instead of aborting the report.
type priceCache struct {
	resolver PriceResolver
	subOrgID uuid.UUID
	entries  map[uuid.UUID]resolvedPrices
	logger   *zap.Logger
	failures int
}

func newPriceCache(resolver PriceResolver, subOrgID uuid.UUID, logger *zap.Logger) *priceCache {
	return &priceCache{
		resolver: resolver,
		subOrgID: subOrgID,
		entries:  make(map[uuid.UUID]resolvedPrices),
		logger:   logger,
	}
}

// pricesFor returns the courier's unit prices, resolving at most once per
// courier.
func (c *priceCache) pricesFor(ctx context.Context, courierID uuid.UUID) ServicePrices {
	if entry, ok := c.entries[courierID]; ok {
		return entry.prices
	}

	prices, err := c.resolver.ResolvePrices(ctx, courierID, c.subOrgID)
	if err != nil {
		c.failures++
		c.logger.Warn("price resolution failed, using zero prices for courier",
			zap.String("courier_id", courierID.String()),
			zap.Error(err),
		)
		c.entries[courierID] = resolvedPrices{prices: ZeroPrices, resolved: false}
		return ZeroPrices
	}

	c.entries[courierID] = resolvedPrices{prices: prices, resolved: true}
	return prices
}
