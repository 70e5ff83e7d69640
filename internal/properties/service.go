package properties

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yarigadev/yariga-backend/pkg/db"
	"github.com/yarigadev/yariga-backend/pkg/db/models"
	"github.com/yarigadev/yariga-backend/pkg/errors"
)

// userLoader resolves the creator account a listing is attached to.
type userLoader interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Uploader pushes an image source (data URI or remote URL) to the image
// CDN and returns the hosted URL.
type Uploader interface {
	Upload(ctx context.Context, source string) (string, error)
}

// CreateInput carries the fields of a new listing plus the email of the
// signed-in user creating it.
type CreateInput struct {
	Title        string
	Description  string
	PropertyType string
	Price        decimal.Decimal
	Location     string
	Photo        string
	Email        string
}

// UpdateInput overwrites every scalar field of a listing. An empty Photo
// means keep the stored image; anything else is uploaded and replaces it.
type UpdateInput struct {
	Title        string
	Description  string
	PropertyType string
	Price        decimal.Decimal
	Location     string
	Photo        string
}

type Service interface {
	List(ctx context.Context, input ListInput) (*ListResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DetailDTO, error)
	Create(ctx context.Context, input CreateInput) error
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	users    userLoader
	uploader Uploader
}

func NewService(repo *Repository, dbClient *db.Client, users userLoader, uploader Uploader) (Service, error) {
	if repo == nil {
		return nil, errors.New(errors.CodeInternal, "properties: repository is required")
	}
	if dbClient == nil {
		return nil, errors.New(errors.CodeInternal, "properties: db client is required")
	}
	if users == nil {
		return nil, errors.New(errors.CodeInternal, "properties: user loader is required")
	}
	if uploader == nil {
		return nil, errors.New(errors.CodeInternal, "properties: uploader is required")
	}
	return &service{repo: repo, dbClient: dbClient, users: users, uploader: uploader}, nil
}

func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	rows, err := s.repo.List(ctx, input)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "db: list properties")
	}
	// The pagination total counts the whole table regardless of filters;
	// the frontend's pager contract depends on that number.
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "db: count properties")
	}
	return &ListResult{Properties: rows, Total: total}, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*DetailDTO, error) {
	property, err := s.repo.FindByIDWithCreator(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, errors.New(errors.CodeNotFound, "property not found")
		}
		return nil, errors.Wrap(errors.CodeDependency, err, "db: load property")
	}
	return NewDetailDTO(property), nil
}

// Create resolves the creator before touching the image CDN so an unknown
// email never costs an upload.
func (s *service) Create(ctx context.Context, input CreateInput) error {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if db.IsNotFound(err) {
			return errors.New(errors.CodePrecondition, "user not found")
		}
		return errors.Wrap(errors.CodeDependency, err, "db: load creator")
	}

	photoURL, err := s.uploader.Upload(ctx, input.Photo)
	if err != nil {
		return errors.Wrap(errors.CodeDependency, err, "cloudinary: upload photo")
	}

	property := &models.Property{
		Title:        input.Title,
		Description:  input.Description,
		PropertyType: input.PropertyType,
		Price:        input.Price,
		Location:     input.Location,
		Photo:        photoURL,
		CreatorID:    user.ID,
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Create(ctx, property); err != nil {
			return err
		}
		return txRepo.AppendToCreator(ctx, user.ID, property.ID)
	})
	if err != nil {
		return errors.Wrap(errors.CodeDependency, err, "db: create property")
	}
	return nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) error {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return errors.New(errors.CodeNotFound, "property not found")
		}
		return errors.Wrap(errors.CodeDependency, err, "db: load property")
	}

	if input.Photo != "" {
		photoURL, err := s.uploader.Upload(ctx, input.Photo)
		if err != nil {
			return errors.Wrap(errors.CodeDependency, err, "cloudinary: upload photo")
		}
		property.Photo = photoURL
	}

	property.Title = input.Title
	property.Description = input.Description
	property.PropertyType = input.PropertyType
	property.Price = input.Price
	property.Location = input.Location

	if err := s.repo.Save(ctx, property); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "db: update property")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	property, err := s.repo.FindByIDWithCreator(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return errors.New(errors.CodeNotFound, "property not found")
		}
		return errors.Wrap(errors.CodeDependency, err, "db: load property")
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Delete(ctx, id); err != nil {
			return err
		}
		return txRepo.RemoveFromCreator(ctx, property.CreatorID, id)
	})
	if err != nil {
		return errors.Wrap(errors.CodeDependency, err, "db: delete property")
	}
	return nil
}
