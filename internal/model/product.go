package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a watch in the catalog. Products are append-only:
// there is no update or delete operation, so the record carries no
// UpdatedAt/DeletedAt columns and ID and CreatedAt never change after insert.
type Product struct {
	ID             uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string           `json:"name" gorm:"size:255;not null;index"`
	Brand          string           `json:"brand" gorm:"size:255;not null;index"`
	Model          *string          `json:"model" gorm:"size:255"`
	Description    *string          `json:"description" gorm:"type:text"`
	Price          decimal.Decimal  `json:"price" gorm:"type:decimal(12,2);not null"`
	Stock          int              `json:"stock" gorm:"not null;default:0"`
	MovementType   *string          `json:"movement_type" gorm:"size:100"`
	CaseMaterial   *string          `json:"case_material" gorm:"size:100"`
	StrapMaterial  *string          `json:"strap_material" gorm:"size:100"`
	CaseDiameter   *decimal.Decimal `json:"case_diameter" gorm:"type:decimal(6,2)"`
	WaterResistant *string          `json:"water_resistant" gorm:"size:100"`
	Image          *string          `json:"image" gorm:"size:1024"`
	CreatedAt      time.Time        `json:"created_at" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
