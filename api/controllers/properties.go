package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yarigadev/yariga-backend/api/responses"
	"github.com/yarigadev/yariga-backend/api/validators"
	"github.com/yarigadev/yariga-backend/internal/properties"
	pkgerrors "github.com/yarigadev/yariga-backend/pkg/errors"
	"github.com/yarigadev/yariga-backend/pkg/logger"
)

// maxPageBound caps the _start/_end query offsets; values outside
// 0..maxPageBound are rejected as a validation error.
const maxPageBound = 10000

// PropertyList serves the browse grid: filtered, sorted, paginated rows
// plus the x-total-count header.
func PropertyList(svc properties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
			return
		}

		start, err := validators.ParseQueryInt(r, "_start", 0, 0, maxPageBound)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		end, err := validators.ParseQueryInt(r, "_end", 0, 0, maxPageBound)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := r.URL.Query()
		input := properties.ListInput{
			Filters: properties.ListFilters{
				PropertyType: query.Get("propertyType"),
				TitleLike:    query.Get("title_like"),
			},
			Sort: properties.SortInput{
				Field: query.Get("_sort"),
				Order: query.Get("_order"),
			},
			Range: properties.RangeInput{Start: start, End: end},
		}

		result, err := svc.List(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, result.Total, result.Properties)
	}
}

// PropertyDetail returns one listing with its creator embedded.
func PropertyDetail(svc properties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid property id"))
			return
		}

		detail, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, detail)
	}
}

type propertyCreateRequest struct {
	Title        string          `json:"title" validate:"required"`
	Description  string          `json:"description"`
	PropertyType string          `json:"propertyType" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	Location     string          `json:"location"`
	Photo        string          `json:"photo" validate:"required"`
	Email        string          `json:"email" validate:"required,email"`
}

// PropertyCreate stores a listing for the user named by email. The
// response body carries no id; the frontend navigates back to the grid
// and refetches.
func PropertyCreate(svc properties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
			return
		}

		var payload propertyCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		err := svc.Create(r.Context(), properties.CreateInput{
			Title:        payload.Title,
			Description:  payload.Description,
			PropertyType: payload.PropertyType,
			Price:        payload.Price,
			Location:     payload.Location,
			Photo:        payload.Photo,
			Email:        payload.Email,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "Property created successfully")
	}
}

type propertyUpdateRequest struct {
	Title        string          `json:"title" validate:"required"`
	Description  string          `json:"description"`
	PropertyType string          `json:"propertyType" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	Location     string          `json:"location"`
	Photo        string          `json:"photo"`
}

// PropertyUpdate overwrites a listing's fields. An omitted photo keeps
// the stored image.
func PropertyUpdate(svc properties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid property id"))
			return
		}

		var payload propertyUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		err = svc.Update(r.Context(), id, properties.UpdateInput{
			Title:        payload.Title,
			Description:  payload.Description,
			PropertyType: payload.PropertyType,
			Price:        payload.Price,
			Location:     payload.Location,
			Photo:        payload.Photo,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "Property updated successfully")
	}
}

func PropertyDelete(svc properties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid property id"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "Property deleted successfully")
	}
}
