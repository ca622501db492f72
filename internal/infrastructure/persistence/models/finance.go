package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/courierops/backend/internal/domain/finance"
)

// CourierModel is the persistence model for courier master data, including
// the per-service price table used when estimating pending expense.
type CourierModel struct {
	SubOrgModel
	Name              string          `gorm:"type:varchar(200);not null;index"`
	Phone             string          `gorm:"type:varchar(30)"`
	Active            bool            `gorm:"not null;default:true"`
	PriceShopee       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PriceMercadoLivre decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PriceAvulso       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (CourierModel) TableName() string {
	return "couriers"
}

// ToDomain converts the persistence model to the domain Courier snapshot.
func (m *CourierModel) ToDomain() finance.Courier {
	return finance.Courier{
		ID:       m.ID,
		SubOrgID: m.SubOrgID,
		Name:     m.Name,
	}
}

// Prices returns the courier's per-service price table.
func (m *CourierModel) Prices() finance.ServicePrices {
	return finance.ServicePrices{
		Shopee:       m.PriceShopee,
		MercadoLivre: m.PriceMercadoLivre,
		Avulso:       m.PriceAvulso,
	}
}

// CollectionEventModel is the persistence model for collection events:
// per-service item counts plus the monetary value collected.
type CollectionEventModel struct {
	SubOrgModel
	OccurredAt        time.Time       `gorm:"not null;index"`
	Base              string          `gorm:"type:varchar(100)"`
	ShopeeCount       int64           `gorm:"not null;default:0"`
	MercadoLivreCount int64           `gorm:"not null;default:0"`
	AvulsoCount       int64           `gorm:"not null;default:0"`
	TotalValue        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (CollectionEventModel) TableName() string {
	return "collection_events"
}

// ToDomain converts the persistence model to a domain CollectionEvent.
func (m *CollectionEventModel) ToDomain() finance.CollectionEvent {
	return finance.CollectionEvent{
		ID:                m.ID,
		SubOrgID:          m.SubOrgID,
		OccurredAt:        m.OccurredAt,
		Base:              m.Base,
		ShopeeCount:       m.ShopeeCount,
		MercadoLivreCount: m.MercadoLivreCount,
		AvulsoCount:       m.AvulsoCount,
		TotalValue:        m.TotalValue,
	}
}

// DeliveryEventModel is the persistence model for delivery attempts.
// CourierID is nullable; legacy rows carry only the free-text CourierName.
type DeliveryEventModel struct {
	SubOrgModel
	Date         time.Time              `gorm:"not null;index"`
	Status       finance.DeliveryStatus `gorm:"type:varchar(20);not null;index"`
	ServiceLabel string                 `gorm:"type:varchar(100)"`
	CourierID    *uuid.UUID             `gorm:"type:uuid;index"`
	CourierName  string                 `gorm:"type:varchar(200)"`
	Base         string                 `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (DeliveryEventModel) TableName() string {
	return "delivery_events"
}

// ToDomain converts the persistence model to a domain DeliveryEvent.
func (m *DeliveryEventModel) ToDomain() finance.DeliveryEvent {
	return finance.DeliveryEvent{
		ID:           m.ID,
		SubOrgID:     m.SubOrgID,
		Date:         m.Date,
		Status:       m.Status,
		ServiceLabel: m.ServiceLabel,
		CourierID:    m.CourierID,
		CourierName:  m.CourierName,
		Base:         m.Base,
	}
}

// SettlementModel is the persistence model for courier settlements over an
// inclusive date span.
type SettlementModel struct {
	SubOrgModel
	CourierID   uuid.UUID                `gorm:"type:uuid;not null;index"`
	PeriodStart time.Time                `gorm:"not null;index"`
	PeriodEnd   time.Time                `gorm:"not null;index"`
	FinalAmount decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	Status      finance.SettlementStatus `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (SettlementModel) TableName() string {
	return "settlements"
}

// ToDomain converts the persistence model to a domain SettlementRecord.
func (m *SettlementModel) ToDomain() finance.SettlementRecord {
	return finance.SettlementRecord{
		ID:          m.ID,
		SubOrgID:    m.SubOrgID,
		CourierID:   m.CourierID,
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		FinalAmount: m.FinalAmount,
		Status:      m.Status,
	}
}
