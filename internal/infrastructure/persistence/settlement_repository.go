package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/courierops/backend/internal/domain/finance"
	"github.com/courierops/backend/internal/infrastructure/persistence/models"
	"github.com/courierops/backend/internal/infrastructure/persistence/suborg"
)

// GormSettlementRepository implements finance.SettlementRepository using GORM
type GormSettlementRepository struct {
	db *suborg.ScopedDB
}

// NewGormSettlementRepository creates a new GormSettlementRepository
func NewGormSettlementRepository(db *gorm.DB) *GormSettlementRepository {
	return &GormSettlementRepository{db: suborg.NewScopedDB(db)}
}

// FindTouchingWindow returns every settlement whose span overlaps the window,
// including spans that start before it or end after it. The overlap predicate
// is period_start <= window_end AND period_end >= window_start.
func (r *GormSettlementRepository) FindTouchingWindow(
	ctx context.Context,
	subOrgID uuid.UUID,
	start, end time.Time,
) ([]finance.SettlementRecord, error) {
	var settlementModels []models.SettlementModel
	err := r.db.ForSubOrg(ctx, subOrgID).
		Where("period_start <= ? AND period_end >= ?", finance.DateOf(end), finance.DateOf(start)).
		Order("period_start ASC").
		Find(&settlementModels).Error
	if err != nil {
		return nil, err
	}

	settlements := make([]finance.SettlementRecord, len(settlementModels))
	for i, model := range settlementModels {
		settlements[i] = model.ToDomain()
	}
	return settlements, nil
}
