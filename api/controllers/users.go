package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yarigadev/yariga-backend/api/responses"
	"github.com/yarigadev/yariga-backend/api/validators"
	"github.com/yarigadev/yariga-backend/internal/users"
	pkgerrors "github.com/yarigadev/yariga-backend/pkg/errors"
	"github.com/yarigadev/yariga-backend/pkg/logger"
)

func UserList(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "_end", 0, 0, maxPageBound)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.List(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, rows)
	}
}

type signInRequest struct {
	Credential string `json:"credential"`
	Name       string `json:"name"`
	Email      string `json:"email" validate:"omitempty,email"`
	Avatar     string `json:"avatar"`
}

// UserSignIn registers the Google account on first sight and returns the
// stored record on every sign-in after that. The popup flow posts the raw
// ID token as credential; older clients post the profile fields directly.
func UserSignIn(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		var payload signInRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var (
			user any
			err  error
		)
		if payload.Credential != "" {
			user, err = svc.FindOrCreateFromCredential(r.Context(), payload.Credential)
		} else {
			user, err = svc.FindOrCreate(r.Context(), users.FindOrCreateInput{
				Name:   payload.Name,
				Email:  payload.Email,
				Avatar: payload.Avatar,
			})
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, user)
	}
}

func UserDetail(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		profile, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, profile)
	}
}
