// Package suborg provides sub-org database scoping for GORM.
//
// Every operational table carries a sub_org_id column; this package applies
// the WHERE sub_org_id = ? condition so repositories cannot leak rows across
// sub-orgs.
//
// Usage:
//
//	scoped := suborg.NewScopedDB(gormDB)
//	scoped.ForSubOrg(ctx, subOrgID).Find(&events) // WHERE sub_org_id = 'xxx'
package suborg

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSubOrgIDRequired is returned when sub_org_id is required but missing
var ErrSubOrgIDRequired = errors.New("sub_org_id is required but was not provided")

// Scope applies sub-org filtering to GORM queries
func Scope(subOrgID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("sub_org_id = ?", subOrgID)
	}
}

// ScopedDB wraps GORM DB with sub-org scoping
type ScopedDB struct {
	db *gorm.DB
}

// NewScopedDB creates a new ScopedDB
func NewScopedDB(db *gorm.DB) *ScopedDB {
	return &ScopedDB{db: db}
}

// ForSubOrg returns a context-carrying GORM DB scoped to a sub-org.
// A nil sub-org ID yields a DB that errors on any operation.
func (s *ScopedDB) ForSubOrg(ctx context.Context, subOrgID uuid.UUID) *gorm.DB {
	if subOrgID == uuid.Nil {
		db := s.db.WithContext(ctx)
		_ = db.AddError(ErrSubOrgIDRequired)
		return db
	}
	return s.db.WithContext(ctx).Scopes(Scope(subOrgID))
}
