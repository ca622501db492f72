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

// GormDeliveryEventRepository implements finance.DeliveryRepository using GORM
type GormDeliveryEventRepository struct {
	db *suborg.ScopedDB
}

// NewGormDeliveryEventRepository creates a new GormDeliveryEventRepository
func NewGormDeliveryEventRepository(db *gorm.DB) *GormDeliveryEventRepository {
	return &GormDeliveryEventRepository{db: suborg.NewScopedDB(db)}
}

// FindInWindow returns all delivery events for the sub-org dated inside the
// inclusive window. Status filtering happens in the domain layer; the report
// needs invalid rows too, to count them out explicitly.
func (r *GormDeliveryEventRepository) FindInWindow(
	ctx context.Context,
	subOrgID uuid.UUID,
	start, end time.Time,
) ([]finance.DeliveryEvent, error) {
	var eventModels []models.DeliveryEventModel
	err := r.db.ForSubOrg(ctx, subOrgID).
		Where("date >= ? AND date < ?", finance.DateOf(start), finance.DateOf(end).AddDate(0, 0, 1)).
		Order("date ASC").
		Find(&eventModels).Error
	if err != nil {
		return nil, err
	}

	events := make([]finance.DeliveryEvent, len(eventModels))
	for i, model := range eventModels {
		events[i] = model.ToDomain()
	}
	return events, nil
}
