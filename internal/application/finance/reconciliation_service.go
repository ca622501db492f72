package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/courierops/backend/internal/domain/finance"
	"github.com/courierops/backend/internal/domain/shared"
)

// ReconciliationQuery is the request filter for the reconciliation report.
// Dates are calendar days; the window is inclusive on both ends.
type ReconciliationQuery struct {
	StartDate time.Time `form:"start_date" time_format:"2006-01-02" binding:"required"`
	EndDate   time.Time `form:"end_date" time_format:"2006-01-02" binding:"required"`
}

// ReconciliationService is the application-level orchestrator: it loads every
// record set the engine needs, including the preceding comparison window when
// one exists, and hands them to the domain service in a single call.
type ReconciliationService struct {
	collections finance.CollectionRepository
	deliveries  finance.DeliveryRepository
	settlements finance.SettlementRepository
	couriers    finance.CourierRepository
	engine      *finance.ReconciliationService
	logger      *zap.Logger
}

// NewReconciliationService creates the service and its domain engine.
func NewReconciliationService(
	collections finance.CollectionRepository,
	deliveries finance.DeliveryRepository,
	settlements finance.SettlementRepository,
	couriers finance.CourierRepository,
	logger *zap.Logger,
) *ReconciliationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReconciliationService{
		collections: collections,
		deliveries:  deliveries,
		settlements: settlements,
		couriers:    couriers,
		engine:      finance.NewReconciliationService(couriers, logger),
		logger:      logger,
	}
}

// GetReconciliation computes the full report for the sub-org and window.
func (s *ReconciliationService) GetReconciliation(
	ctx context.Context,
	subOrgID uuid.UUID,
	query ReconciliationQuery,
) (*finance.ReconciliationReport, error) {
	if subOrgID == uuid.Nil {
		return nil, shared.ErrMissingSubOrg
	}
	start := finance.DateOf(query.StartDate)
	end := finance.DateOf(query.EndDate)
	if start.After(end) {
		return nil, shared.ErrInvalidDateRange
	}

	collections, err := s.collections.FindInWindow(ctx, subOrgID, start, end)
	if err != nil {
		return nil, err
	}
	deliveries, err := s.deliveries.FindInWindow(ctx, subOrgID, start, end)
	if err != nil {
		return nil, err
	}
	settlements, err := s.settlements.FindTouchingWindow(ctx, subOrgID, start, end)
	if err != nil {
		return nil, err
	}
	couriers, err := s.couriers.ListBySubOrg(ctx, subOrgID)
	if err != nil {
		return nil, err
	}

	previous, err := s.loadPreviousWindow(ctx, subOrgID, start, end)
	if err != nil {
		return nil, err
	}

	return s.engine.BuildReport(ctx, finance.ReconciliationInput{
		SubOrgID:    subOrgID,
		PeriodStart: start,
		PeriodEnd:   end,
		Collections: collections,
		Deliveries:  deliveries,
		Settlements: settlements,
		Couriers:    couriers,
		Previous:    previous,
	})
}

// loadPreviousWindow materializes the comparison window's record sets, or nil
// when the window would reach past the epoch.
func (s *ReconciliationService) loadPreviousWindow(
	ctx context.Context,
	subOrgID uuid.UUID,
	start, end time.Time,
) (*finance.PreviousWindow, error) {
	prevStart, prevEnd, ok := finance.PreviousWindowRange(start, end)
	if !ok {
		return nil, nil
	}

	collections, err := s.collections.FindInWindow(ctx, subOrgID, prevStart, prevEnd)
	if err != nil {
		return nil, err
	}
	settlements, err := s.settlements.FindTouchingWindow(ctx, subOrgID, prevStart, prevEnd)
	if err != nil {
		return nil, err
	}
	return &finance.PreviousWindow{
		PeriodStart: prevStart,
		PeriodEnd:   prevEnd,
		Collections: collections,
		Settlements: settlements,
	}, nil
}
