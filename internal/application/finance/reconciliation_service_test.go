package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/courierops/backend/internal/domain/finance"
	"github.com/courierops/backend/internal/domain/shared"
)

type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) FindInWindow(ctx context.Context, subOrgID uuid.UUID, start, end time.Time) ([]finance.CollectionEvent, error) {
	args := m.Called(ctx, subOrgID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.CollectionEvent), args.Error(1)
}

type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) FindInWindow(ctx context.Context, subOrgID uuid.UUID, start, end time.Time) ([]finance.DeliveryEvent, error) {
	args := m.Called(ctx, subOrgID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.DeliveryEvent), args.Error(1)
}

type MockSettlementRepository struct {
	mock.Mock
}

func (m *MockSettlementRepository) FindTouchingWindow(ctx context.Context, subOrgID uuid.UUID, start, end time.Time) ([]finance.SettlementRecord, error) {
	args := m.Called(ctx, subOrgID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.SettlementRecord), args.Error(1)
}

type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) ListBySubOrg(ctx context.Context, subOrgID uuid.UUID) ([]finance.Courier, error) {
	args := m.Called(ctx, subOrgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Courier), args.Error(1)
}

func (m *MockCourierRepository) ResolvePrices(ctx context.Context, courierID, subOrgID uuid.UUID) (finance.ServicePrices, error) {
	args := m.Called(ctx, courierID, subOrgID)
	return args.Get(0).(finance.ServicePrices), args.Error(1)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newService() (*ReconciliationService, *MockCollectionRepository, *MockDeliveryRepository, *MockSettlementRepository, *MockCourierRepository) {
	collections := new(MockCollectionRepository)
	deliveries := new(MockDeliveryRepository)
	settlements := new(MockSettlementRepository)
	couriers := new(MockCourierRepository)
	svc := NewReconciliationService(collections, deliveries, settlements, couriers, zap.NewNop())
	return svc, collections, deliveries, settlements, couriers
}

func TestGetReconciliation(t *testing.T) {
	subOrgID := uuid.New()
	query := ReconciliationQuery{
		StartDate: day(2024, 3, 11),
		EndDate:   day(2024, 3, 20),
	}

	t.Run("loads current and preceding window", func(t *testing.T) {
		svc, collections, deliveries, settlements, couriers := newService()

		collections.On("FindInWindow", mock.Anything, subOrgID, day(2024, 3, 11), day(2024, 3, 20)).
			Return([]finance.CollectionEvent{{
				ID:          uuid.New(),
				OccurredAt:  day(2024, 3, 12),
				Base:        "Centro",
				ShopeeCount: 2,
				TotalValue:  decimal.RequireFromString("40.00"),
			}}, nil)
		deliveries.On("FindInWindow", mock.Anything, subOrgID, day(2024, 3, 11), day(2024, 3, 20)).
			Return([]finance.DeliveryEvent{}, nil)
		settlements.On("FindTouchingWindow", mock.Anything, subOrgID, day(2024, 3, 11), day(2024, 3, 20)).
			Return([]finance.SettlementRecord{}, nil)
		couriers.On("ListBySubOrg", mock.Anything, subOrgID).
			Return([]finance.Courier{}, nil)

		// Preceding 10-day window.
		collections.On("FindInWindow", mock.Anything, subOrgID, day(2024, 3, 1), day(2024, 3, 10)).
			Return([]finance.CollectionEvent{{
				ID:          uuid.New(),
				OccurredAt:  day(2024, 3, 2),
				Base:        "Centro",
				ShopeeCount: 1,
				TotalValue:  decimal.RequireFromString("20.00"),
			}}, nil)
		settlements.On("FindTouchingWindow", mock.Anything, subOrgID, day(2024, 3, 1), day(2024, 3, 10)).
			Return([]finance.SettlementRecord{}, nil)

		report, err := svc.GetReconciliation(context.Background(), subOrgID, query)
		require.NoError(t, err)

		assert.Equal(t, "40.00", report.ReceitaBruta.StringFixed(2))
		require.NotNil(t, report.Comparativo)
		assert.Equal(t, "20.00", report.Comparativo.Receita.StringFixed(2))
		require.NotNil(t, report.Comparativo.DeltaReceitaPct)
		assert.Equal(t, "100.00", report.Comparativo.DeltaReceitaPct.StringFixed(2))

		collections.AssertExpectations(t)
		settlements.AssertExpectations(t)
	})

	t.Run("skips the comparison window at the epoch", func(t *testing.T) {
		svc, collections, deliveries, settlements, couriers := newService()
		epochQuery := ReconciliationQuery{
			StartDate: day(2024, 1, 1),
			EndDate:   day(2024, 1, 5),
		}

		collections.On("FindInWindow", mock.Anything, subOrgID, day(2024, 1, 1), day(2024, 1, 5)).
			Return([]finance.CollectionEvent{}, nil)
		deliveries.On("FindInWindow", mock.Anything, subOrgID, day(2024, 1, 1), day(2024, 1, 5)).
			Return([]finance.DeliveryEvent{}, nil)
		settlements.On("FindTouchingWindow", mock.Anything, subOrgID, day(2024, 1, 1), day(2024, 1, 5)).
			Return([]finance.SettlementRecord{}, nil)
		couriers.On("ListBySubOrg", mock.Anything, subOrgID).
			Return([]finance.Courier{}, nil)

		report, err := svc.GetReconciliation(context.Background(), subOrgID, epochQuery)
		require.NoError(t, err)

		assert.Nil(t, report.Comparativo)
		// Exactly one window loaded per repository.
		collections.AssertNumberOfCalls(t, "FindInWindow", 1)
		settlements.AssertNumberOfCalls(t, "FindTouchingWindow", 1)
	})

	t.Run("missing sub-org", func(t *testing.T) {
		svc, _, _, _, _ := newService()
		_, err := svc.GetReconciliation(context.Background(), uuid.Nil, query)
		assert.ErrorIs(t, err, shared.ErrMissingSubOrg)
	})

	t.Run("inverted range", func(t *testing.T) {
		svc, _, _, _, _ := newService()
		_, err := svc.GetReconciliation(context.Background(), subOrgID, ReconciliationQuery{
			StartDate: day(2024, 3, 20),
			EndDate:   day(2024, 3, 11),
		})
		assert.ErrorIs(t, err, shared.ErrInvalidDateRange)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		svc, collections, _, _, _ := newService()
		collections.On("FindInWindow", mock.Anything, subOrgID, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset"))

		_, err := svc.GetReconciliation(context.Background(), subOrgID, query)
		assert.EqualError(t, err, "connection reset")
	})
}
