package properties

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yarigadev/yariga-backend/internal/users"
	"github.com/yarigadev/yariga-backend/pkg/db"
	"github.com/yarigadev/yariga-backend/pkg/db/models"
	apperrors "github.com/yarigadev/yariga-backend/pkg/errors"
)

type stubUploader struct {
	url     string
	err     error
	sources []string
}

func (s *stubUploader) Upload(_ context.Context, source string) (string, error) {
	s.sources = append(s.sources, source)
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func newTestService(t *testing.T, conn *gorm.DB, uploader *stubUploader) Service {
	t.Helper()

	svc, err := NewService(NewRepository(conn), db.NewWithConn(conn), users.NewRepository(conn), uploader)
	require.NoError(t, err)
	return svc
}

func TestServiceCreate(t *testing.T) {
	conn := setupPropertiesTestDB(t)
	creator := newUser(t, conn, "Creator", "creator@example.com")
	uploader := &stubUploader{url: "https://res.example.com/uploaded.jpg"}
	svc := newTestService(t, conn, uploader)

	err := svc.Create(context.Background(), CreateInput{
		Title:        "Garden House",
		Description:  "Quiet street",
		PropertyType: "house",
		Price:        decimal.NewFromInt(1500),
		Location:     "Tulsa, OK",
		Photo:        "data:image/png;base64,abc123",
		Email:        "creator@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"data:image/png;base64,abc123"}, uploader.sources)

	var property models.Property
	require.NoError(t, conn.First(&property, "title = ?", "Garden House").Error)
	assert.Equal(t, "https://res.example.com/uploaded.jpg", property.Photo)
	assert.Equal(t, creator.ID, property.CreatorID)

	var reloaded models.User
	require.NoError(t, conn.First(&reloaded, "id = ?", creator.ID).Error)
	require.Len(t, reloaded.AllProperties, 1)
	assert.Equal(t, property.ID, reloaded.AllProperties[0])
}

func TestServiceCreate_unknownEmailSkipsUpload(t *testing.T) {
	conn := setupPropertiesTestDB(t)
	uploader := &stubUploader{url: "https://res.example.com/uploaded.jpg"}
	svc := newTestService(t, conn, uploader)

	err := svc.Create(context.Background(), CreateInput{
		Title: "Orphan Listing",
		Photo: "data:image/png;base64,abc123",
		Email: "nobody@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodePrecondition, apperrors.As(err).Code())
	assert.Empty(t, uploader.sources)

	var count int64
	require.NoError(t, conn.Model(&models.Property{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestServiceCreate_uploadFailureCreatesNothing(t *testing.T) {
	conn := setupPropertiesTestDB(t)
	newUser(t, conn, "Creator", "creator@example.com")
	uploader := &stubUploader{err: errors.New("cdn down")}
	svc := newTestService(t, conn, uploader)

	err := svc.Create(context.Background(), CreateInput{
		Title: "Doomed Listing",
		Photo: "data:image/png;base64,abc123",
		Email: "creator@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeDependency, apperrors.As(err).Code())

	var count int64
	require.NoError(t, conn.Model(&models.Property{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestServiceList_totalIgnoresFilters(t *testing.T) {
	conn := setupPropertiesTestDB(t)
	creator := newUser(t, conn, "Lister", "lister@example.com")
	newProperty(t, conn, creator, "Villa One", "villa", 100)
	newProperty(t, conn, creator, "Condo One", "condo", 200)
	newProperty(t, conn, creator, "Condo Two", "condo", 300)
	svc := newTestService(t, conn, &stubUploader{})

	result, err := svc.List(context.Background(), ListInput{
		Filters: ListFilters{PropertyType: "condo"},
	})
	require.NoError(t, err)
	assert.Len(t, result.Properties, 2)
	assert.Equal(t, int64(3), result.Total)
}

func TestServiceGetByID(t *testing.T) {
	conn := setupPropertiesTestDB(t)
	creator := newUser(t, conn, "Owner", "owner@example.com")
	property := newProperty(t, conn, creator, "Detail Villa", "villa", 750)
	svc := newTestService(t, conn, &stubUploader{})

	dto, err := svc.GetByID(context.Background(), property.ID)
	require.NoError(t, err)
	assert.Equal(t, "Detail Villa", dto.Title)
	require.NotNil(t, dto.Creator)
	assert.Equal(t, "Owner", dto.Creator.Name)

	_, err = svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.As(err).Code())
}

func TestServiceUpdate(t *testing.T) {
	conn := setupPropertiesTestDB(t)
	creator := newUser(t, conn, "Editor", "editor@example.com")
	property := newProperty(t, conn, creator, "Before", "house", 500)
	uploader := &stubUploader{url: "https://res.example.com/new.jpg"}
	svc := newTestService(t, conn, uploader)

	// Empty photo keeps the stored image and costs no upload.
	err := svc.Update(context.Background(), property.ID, UpdateInput{
		Title:        "After",
		Description:  "Repainted",
		PropertyType: "condo",
		Price:        decimal.NewFromInt(650),
		Location:     "Austin, TX",
	})
	require.NoError(t, err)
	assert.Empty(t, uploader.sources)

	var updated models.Property
	require.NoError(t, conn.First(&updated, "id = ?", property.ID).Error)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "condo", updated.PropertyType)
	assert.Equal(t, property.Photo, updated.Photo)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(650)))

	err = svc.Update(context.Background(), property.ID, UpdateInput{
		Title: "After",
		Photo: "data:image/png;base64,replacement",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"data:image/png;base64,replacement"}, uploader.sources)
	require.NoError(t, conn.First(&updated, "id = ?", property.ID).Error)
	assert.Equal(t, "https://res.example.com/new.jpg", updated.Photo)
}

func TestServiceUpdate_notFound(t *testing.T) {
	conn := setupPropertiesTestDB(t)
	svc := newTestService(t, conn, &stubUploader{})

	err := svc.Update(context.Background(), uuid.New(), UpdateInput{Title: "Ghost"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.As(err).Code())
}

func TestServiceDelete(t *testing.T) {
	conn := setupPropertiesTestDB(t)
	creator := newUser(t, conn, "Owner", "owner@example.com")
	property := newProperty(t, conn, creator, "Condemned", "house", 400)
	require.NoError(t, NewRepository(conn).AppendToCreator(context.Background(), creator.ID, property.ID))
	svc := newTestService(t, conn, &stubUploader{})

	require.NoError(t, svc.Delete(context.Background(), property.ID))

	var count int64
	require.NoError(t, conn.Model(&models.Property{}).Count(&count).Error)
	assert.Zero(t, count)

	var reloaded models.User
	require.NoError(t, conn.First(&reloaded, "id = ?", creator.ID).Error)
	assert.Empty(t, reloaded.AllProperties)

	err := svc.Delete(context.Background(), property.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.As(err).Code())
}
