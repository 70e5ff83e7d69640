package users

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yarigadev/yariga-backend/pkg/db/models"
)

// Repository provides data access for user accounts.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

func (r *Repository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns up to limit users; limit <= 0 means no cap.
func (r *Repository) List(ctx context.Context, limit int) ([]models.User, error) {
	q := r.db.WithContext(ctx).Model(&models.User{})
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows := []models.User{}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
