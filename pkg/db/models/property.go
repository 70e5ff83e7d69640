package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// The frontend data provider expects price as a JSON number.
	decimal.MarshalJSONWithoutQuotes = true
}

// Property is a single listing. PropertyType is stored as a free string; the
// known set (apartment, villa, farmhouse, duplex, studio, flat, cottage,
// townhouse) is a frontend convention and is not enforced here. Photo always
// holds a hosted URL produced by the upload gateway, never inline bytes.
// CreatorID is set once at creation and never reassigned.
type Property struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title        string          `gorm:"column:title;not null" json:"title"`
	Description  string          `gorm:"column:description;not null" json:"description"`
	PropertyType string          `gorm:"column:property_type;index" json:"propertyType"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(12,2)" json:"price"`
	Location     string          `gorm:"column:location" json:"location"`
	Photo        string          `gorm:"column:photo" json:"photo"`
	CreatorID    uuid.UUID       `gorm:"column:creator_id;type:uuid;not null" json:"creator"`
	Creator      *User           `gorm:"foreignKey:CreatorID" json:"-"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (p *Property) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
