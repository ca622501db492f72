package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CollectionRepository loads collection events for a report window.
type CollectionRepository interface {
	FindInWindow(ctx context.Context, subOrgID uuid.UUID, start, end time.Time) ([]CollectionEvent, error)
}

// DeliveryRepository loads delivery events for a report window.
type DeliveryRepository interface {
	FindInWindow(ctx context.Context, subOrgID uuid.UUID, start, end time.Time) ([]DeliveryEvent, error)
}

// SettlementRepository loads settlement records. FindTouchingWindow returns
// every settlement whose span overlaps the window, including spans that start
// before it or end after it; coverage and apportionment need the full span.
type SettlementRepository interface {
	FindTouchingWindow(ctx context.Context, subOrgID uuid.UUID, start, end time.Time) ([]SettlementRecord, error)
}

// CourierRepository provides courier master data. It doubles as the
// PriceResolver the expense aggregation prices deliveries with.
type CourierRepository interface {
	PriceResolver
	ListBySubOrg(ctx context.Context, subOrgID uuid.UUID) ([]Courier, error)
}
