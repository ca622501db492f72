package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/courierops/backend/internal/domain/finance"
	"github.com/courierops/backend/internal/domain/shared"
	"github.com/courierops/backend/internal/infrastructure/persistence/models"
	"github.com/courierops/backend/internal/infrastructure/persistence/suborg"
)

// GormCourierRepository implements finance.CourierRepository using GORM.
// It serves both courier master data and the per-courier price tables.
type GormCourierRepository struct {
	db *suborg.ScopedDB
}

// NewGormCourierRepository creates a new GormCourierRepository
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: suborg.NewScopedDB(db)}
}

// ListBySubOrg returns all couriers registered under the sub-org.
func (r *GormCourierRepository) ListBySubOrg(ctx context.Context, subOrgID uuid.UUID) ([]finance.Courier, error) {
	var courierModels []models.CourierModel
	err := r.db.ForSubOrg(ctx, subOrgID).
		Order("name ASC").
		Find(&courierModels).Error
	if err != nil {
		return nil, err
	}

	couriers := make([]finance.Courier, len(courierModels))
	for i, model := range courierModels {
		couriers[i] = model.ToDomain()
	}
	return couriers, nil
}

// ResolvePrices returns the courier's per-service price table, scoped to the
// sub-org so a courier id from another sub-org cannot resolve.
func (r *GormCourierRepository) ResolvePrices(ctx context.Context, courierID, subOrgID uuid.UUID) (finance.ServicePrices, error) {
	var model models.CourierModel
	err := r.db.ForSubOrg(ctx, subOrgID).
		First(&model, "id = ?", courierID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return finance.ServicePrices{}, shared.ErrNotFound
		}
		return finance.ServicePrices{}, err
	}
	return model.Prices(), nil
}
