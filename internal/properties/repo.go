package properties

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yarigadev/yariga-backend/pkg/db/models"
	dbtypes "github.com/yarigadev/yariga-backend/pkg/db/types"
)

// sortColumns whitelists the sortable fields and maps the JSON names the
// frontend sends to their column names.
var sortColumns = map[string]string{
	"id":           "id",
	"title":        "title",
	"price":        "price",
	"location":     "location",
	"propertyType": "property_type",
	"createdAt":    "created_at",
}

// likeEscaper neutralizes LIKE metacharacters so a search term matches
// literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

// Repository provides data access for property listings and keeps the
// owning user's all_properties array in step.
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

func (r *Repository) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *Repository) Save(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Property{}).Error
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var property models.Property
	if err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// FindByIDWithCreator loads a property together with its owning user.
func (r *Repository) FindByIDWithCreator(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var property models.Property
	if err := r.db.WithContext(ctx).Preload("Creator").First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// FindByIDs returns the properties for the given ids in no particular order.
func (r *Repository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Property, error) {
	if len(ids) == 0 {
		return []models.Property{}, nil
	}
	var rows []models.Property
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// List applies the filters, sort and range and returns one page of rows.
// Unknown sort fields are ignored rather than rejected.
func (r *Repository) List(ctx context.Context, input ListInput) ([]models.Property, error) {
	q := r.db.WithContext(ctx).Model(&models.Property{})

	if input.Filters.PropertyType != "" {
		q = q.Where("property_type = ?", input.Filters.PropertyType)
	}
	if input.Filters.TitleLike != "" {
		pattern := "%" + escapeLike(strings.ToLower(input.Filters.TitleLike)) + "%"
		q = q.Where(`LOWER(title) LIKE ? ESCAPE '\'`, pattern)
	}

	if column, ok := sortColumns[input.Sort.Field]; ok {
		direction := "ASC"
		if strings.EqualFold(input.Sort.Order, "desc") {
			direction = "DESC"
		}
		q = q.Order(column + " " + direction)
	}

	if input.Range.Start > 0 {
		q = q.Offset(input.Range.Start)
	}
	if limit := input.Range.End - input.Range.Start; limit > 0 {
		q = q.Limit(limit)
	}

	rows := []models.Property{}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountAll counts every property row. The browse endpoint's pagination
// header has always reported the whole table, not the filtered set.
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Property{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// AppendToCreator appends the property id to the creator's all_properties
// array. Callers run this inside the same transaction as Create.
func (r *Repository) AppendToCreator(ctx context.Context, creatorID, propertyID uuid.UUID) error {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", creatorID).Error; err != nil {
		return err
	}
	updated := append(dbtypes.UUIDArray{}, user.AllProperties...)
	updated = append(updated, propertyID)
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", creatorID).
		UpdateColumn("all_properties", updated).Error
}

// RemoveFromCreator pulls the property id out of the creator's
// all_properties array.
func (r *Repository) RemoveFromCreator(ctx context.Context, creatorID, propertyID uuid.UUID) error {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", creatorID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", creatorID).
		UpdateColumn("all_properties", user.AllProperties.Without(propertyID)).Error
}
