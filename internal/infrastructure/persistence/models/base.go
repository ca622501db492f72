package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// SubOrgModel provides common persistence fields for sub-org scoped records.
type SubOrgModel struct {
	BaseModel
	SubOrgID uuid.UUID `gorm:"type:uuid;not null;index"`
}
