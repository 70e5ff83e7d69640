package users

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/yarigadev/yariga-backend/pkg/auth"
	"github.com/yarigadev/yariga-backend/pkg/db"
	"github.com/yarigadev/yariga-backend/pkg/db/models"
	"github.com/yarigadev/yariga-backend/pkg/errors"
)

// propertyReader loads the listings referenced by a user's all_properties
// array.
type propertyReader interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Property, error)
}

// FindOrCreateInput is the profile extracted from a Google sign-in.
type FindOrCreateInput struct {
	Name   string
	Email  string
	Avatar string
}

type Service interface {
	// List returns up to limit users; limit <= 0 means all of them.
	List(ctx context.Context, limit int) ([]models.User, error)
	// FindOrCreate returns the account for the given email, creating it on
	// first sight. An existing account is returned as stored, even when
	// the submitted name or avatar differ.
	FindOrCreate(ctx context.Context, input FindOrCreateInput) (*models.User, error)
	// FindOrCreateFromCredential lifts the profile out of a Google ID
	// token and delegates to FindOrCreate.
	FindOrCreateFromCredential(ctx context.Context, credential string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProfileDTO, error)
}

type service struct {
	repo       *Repository
	properties propertyReader
}

func NewService(repo *Repository, properties propertyReader) (Service, error) {
	if repo == nil {
		return nil, errors.New(errors.CodeInternal, "users: repository is required")
	}
	if properties == nil {
		return nil, errors.New(errors.CodeInternal, "users: property reader is required")
	}
	return &service{repo: repo, properties: properties}, nil
}

func (s *service) List(ctx context.Context, limit int) ([]models.User, error) {
	rows, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "db: list users")
	}
	return rows, nil
}

func (s *service) FindOrCreate(ctx context.Context, input FindOrCreateInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, errors.New(errors.CodeValidation, "email is required")
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !db.IsNotFound(err) {
		return nil, errors.Wrap(errors.CodeDependency, err, "db: load user")
	}

	user := &models.User{
		Name:   input.Name,
		Email:  email,
		Avatar: input.Avatar,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "db: create user")
	}
	return user, nil
}

func (s *service) FindOrCreateFromCredential(ctx context.Context, credential string) (*models.User, error) {
	profile, err := auth.ParseGoogleCredential(credential)
	if err != nil {
		return nil, errors.Wrap(errors.CodeValidation, err, "invalid credential")
	}
	return s.FindOrCreate(ctx, FindOrCreateInput{
		Name:   profile.Name,
		Email:  profile.Email,
		Avatar: profile.Avatar,
	})
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ProfileDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, errors.New(errors.CodeNotFound, "user not found")
		}
		return nil, errors.Wrap(errors.CodeDependency, err, "db: load user")
	}

	properties, err := s.properties.FindByIDs(ctx, user.AllProperties)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "db: load user properties")
	}
	return NewProfileDTO(user, properties), nil
}
