package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yarigadev/yariga-backend/internal/users"
	"github.com/yarigadev/yariga-backend/pkg/db/models"
	pkgerrors "github.com/yarigadev/yariga-backend/pkg/errors"
)

type stubUserService struct {
	listLimit     int
	listRows      []models.User
	listErr       error
	signInInput   users.FindOrCreateInput
	credential    string
	signInUser    *models.User
	signInErr     error
	profile       *users.ProfileDTO
	profileErr    error
	credentialHit bool
}

func (s *stubUserService) List(_ context.Context, limit int) ([]models.User, error) {
	s.listLimit = limit
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listRows, nil
}

func (s *stubUserService) FindOrCreate(_ context.Context, input users.FindOrCreateInput) (*models.User, error) {
	s.signInInput = input
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	return s.signInUser, nil
}

func (s *stubUserService) FindOrCreateFromCredential(_ context.Context, credential string) (*models.User, error) {
	s.credentialHit = true
	s.credential = credential
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	return s.signInUser, nil
}

func (s *stubUserService) GetByID(_ context.Context, _ uuid.UUID) (*users.ProfileDTO, error) {
	if s.profileErr != nil {
		return nil, s.profileErr
	}
	return s.profile, nil
}

func userRouter(svc users.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/users", UserList(svc, nil))
	r.Post("/users", UserSignIn(svc, nil))
	r.Get("/users/{id}", UserDetail(svc, nil))
	return r
}

func TestUserList(t *testing.T) {
	svc := &stubUserService{listRows: []models.User{{Name: "A"}, {Name: "B"}}}
	router := userRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/users?_end=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.listLimit != 10 {
		t.Fatalf("expected limit 10, got %d", svc.listLimit)
	}
	var payload []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("expected bare array body: %v", err)
	}
	if len(payload) != 2 {
		t.Fatalf("expected 2 users, got %d", len(payload))
	}
}

func TestUserSignIn_profileFields(t *testing.T) {
	svc := &stubUserService{signInUser: &models.User{Name: "John", Email: "john@example.com"}}
	router := userRouter(svc)

	body := `{"name":"John","email":"john@example.com","avatar":"https://lh3.example.com/a.png"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.credentialHit {
		t.Fatal("profile sign-in must not take the credential path")
	}
	if svc.signInInput.Email != "john@example.com" {
		t.Fatalf("unexpected email %q", svc.signInInput.Email)
	}
}

func TestUserSignIn_credential(t *testing.T) {
	svc := &stubUserService{signInUser: &models.User{Name: "Jane"}}
	router := userRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"credential":"header.payload.sig"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !svc.credentialHit {
		t.Fatal("expected the credential path")
	}
	if svc.credential != "header.payload.sig" {
		t.Fatalf("unexpected credential %q", svc.credential)
	}
}

func TestUserDetail(t *testing.T) {
	profile := &users.ProfileDTO{Name: "Collector", AllProperties: []models.Property{{Title: "Villa"}}}
	svc := &stubUserService{profile: profile}
	router := userRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/users/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	listings, ok := payload["allProperties"].([]any)
	if !ok || len(listings) != 1 {
		t.Fatalf("expected populated allProperties, got %v", payload["allProperties"])
	}
}

func TestUserDetail_notFound(t *testing.T) {
	svc := &stubUserService{profileErr: pkgerrors.New(pkgerrors.CodeNotFound, "user not found")}
	router := userRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/users/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
