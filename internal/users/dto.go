package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/yarigadev/yariga-backend/pkg/db/models"
)

// ProfileDTO is a user with the owned listings expanded in place of the
// bare id array, preserving the array's order.
type ProfileDTO struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Avatar        string            `json:"avatar"`
	AllProperties []models.Property `json:"allProperties"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// NewProfileDTO arranges the loaded properties into the order recorded on
// the user's all_properties array. Ids with no surviving row are skipped.
func NewProfileDTO(user *models.User, properties []models.Property) *ProfileDTO {
	byID := make(map[uuid.UUID]models.Property, len(properties))
	for _, property := range properties {
		byID[property.ID] = property
	}

	ordered := make([]models.Property, 0, len(user.AllProperties))
	for _, id := range user.AllProperties {
		if property, ok := byID[id]; ok {
			ordered = append(ordered, property)
		}
	}

	return &ProfileDTO{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Avatar:        user.Avatar,
		AllProperties: ordered,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
