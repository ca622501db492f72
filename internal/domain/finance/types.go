package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Epoch is the earliest date with valid financial data. Comparison windows
// never look back past it.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// UnassignedBase labels revenue from collection events with a blank base.
const UnassignedBase = "NÃO INFORMADA"

// ServiceClass identifies one of the three service classes a package or
// delivery belongs to.
type ServiceClass string

const (
	ServiceShopee       ServiceClass = "shopee"
	ServiceMercadoLivre ServiceClass = "mercado_livre"
	ServiceAvulso       ServiceClass = "avulso"
)

// ServiceClasses lists all classes in display order.
var ServiceClasses = []ServiceClass{ServiceShopee, ServiceMercadoLivre, ServiceAvulso}

// DisplayName returns the human-readable label for the class.
func (s ServiceClass) DisplayName() string {
	switch s {
	case ServiceShopee:
		return "Shopee"
	case ServiceMercadoLivre:
		return "Mercado Livre"
	default:
		return "Avulso"
	}
}

// DeliveryStatus is the lifecycle status of a delivery attempt.
type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "entregue"
	DeliveryInRoute   DeliveryStatus = "em_rota"
	DeliveryCollected DeliveryStatus = "coletado"
	DeliveryWaiting   DeliveryStatus = "aguardando"
	DeliveryCanceled  DeliveryStatus = "cancelado"
	DeliveryReturned  DeliveryStatus = "devolvido"
)

// IsValid reports whether the status participates in revenue-linked counts
// and expense attribution. Canceled and returned deliveries never do.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryDelivered, DeliveryInRoute, DeliveryCollected, DeliveryWaiting:
		return true
	default:
		return false
	}
}

// SettlementStatus is the confirmation status of a settlement record.
type SettlementStatus string

const (
	SettlementGenerated SettlementStatus = "gerado"
	SettlementAdjusted  SettlementStatus = "ajustado"
	SettlementDraft     SettlementStatus = "rascunho"
	SettlementCanceled  SettlementStatus = "cancelado"
)

// IsConfirmed reports whether the settlement counts as confirmed expense.
func (s SettlementStatus) IsConfirmed() bool {
	return s == SettlementGenerated || s == SettlementAdjusted
}

// CollectionEvent records one act of picking up packages: per-service item
// counts and the monetary value collected. Immutable once aggregated.
type CollectionEvent struct {
	ID                uuid.UUID
	SubOrgID          uuid.UUID
	OccurredAt        time.Time
	Base              string
	ShopeeCount       int64
	MercadoLivreCount int64
	AvulsoCount       int64
	TotalValue        decimal.Decimal
}

// TotalItems returns the sum of per-service item counts.
func (e CollectionEvent) TotalItems() int64 {
	return e.ShopeeCount + e.MercadoLivreCount + e.AvulsoCount
}

// DeliveryEvent records one delivery attempt. CourierID may be nil for
// legacy rows, in which case CourierName is resolved by normalized lookup.
type DeliveryEvent struct {
	ID           uuid.UUID
	SubOrgID     uuid.UUID
	Date         time.Time
	Status       DeliveryStatus
	ServiceLabel string
	CourierID    *uuid.UUID
	CourierName  string
	Base         string
}

// SettlementRecord is a confirmed close-out of a courier's earnings for an
// inclusive date span. Spans never cover less than one day.
type SettlementRecord struct {
	ID          uuid.UUID
	SubOrgID    uuid.UUID
	CourierID   uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
	FinalAmount decimal.Decimal
	Status      SettlementStatus
}

// DayCount returns the inclusive number of calendar days in the span.
func (s SettlementRecord) DayCount() int64 {
	return int64(DaysBetween(s.PeriodStart, s.PeriodEnd))
}

// Courier is the master-data snapshot the engine needs: identity plus the
// display name used for legacy free-text resolution.
type Courier struct {
	ID       uuid.UUID
	SubOrgID uuid.UUID
	Name     string
}

// DateOf truncates a timestamp to its UTC calendar day. All day-keyed maps
// in the engine use this normalization.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the inclusive day count between two dates.
func DaysBetween(start, end time.Time) int {
	return int(DateOf(end).Sub(DateOf(start)).Hours()/24) + 1
}
