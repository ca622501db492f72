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

// GormCollectionEventRepository implements finance.CollectionRepository using GORM
type GormCollectionEventRepository struct {
	db *suborg.ScopedDB
}

// NewGormCollectionEventRepository creates a new GormCollectionEventRepository
func NewGormCollectionEventRepository(db *gorm.DB) *GormCollectionEventRepository {
	return &GormCollectionEventRepository{db: suborg.NewScopedDB(db)}
}

// FindInWindow returns all collection events for the sub-org whose occurrence
// timestamp falls on a day inside the inclusive window.
func (r *GormCollectionEventRepository) FindInWindow(
	ctx context.Context,
	subOrgID uuid.UUID,
	start, end time.Time,
) ([]finance.CollectionEvent, error) {
	var eventModels []models.CollectionEventModel
	err := r.db.ForSubOrg(ctx, subOrgID).
		Where("occurred_at >= ? AND occurred_at < ?", finance.DateOf(start), finance.DateOf(end).AddDate(0, 0, 1)).
		Order("occurred_at ASC").
		Find(&eventModels).Error
	if err != nil {
		return nil, err
	}

	events := make([]finance.CollectionEvent, len(eventModels))
	for i, model := range eventModels {
		events[i] = model.ToDomain()
	}
	return events, nil
}
