package properties

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yarigadev/yariga-backend/pkg/db/models"
)

// DetailDTO is the property detail payload, with the creator embedded in
// place of the bare foreign key.
type DetailDTO struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	PropertyType string          `json:"propertyType"`
	Price        decimal.Decimal `json:"price"`
	Location     string          `json:"location"`
	Photo        string          `json:"photo"`
	Creator      *models.User    `json:"creator"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func NewDetailDTO(property *models.Property) *DetailDTO {
	return &DetailDTO{
		ID:           property.ID,
		Title:        property.Title,
		Description:  property.Description,
		PropertyType: property.PropertyType,
		Price:        property.Price,
		Location:     property.Location,
		Photo:        property.Photo,
		Creator:      property.Creator,
		CreatedAt:    property.CreatedAt,
		UpdatedAt:    property.UpdatedAt,
	}
}
