package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/yarigadev/yariga-backend/pkg/errors"
)

func TestWriteList(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteList(rec, 42, []string{"a", "b"})

	if got := rec.Header().Get(TotalCountHeader); got != "42" {
		t.Fatalf("expected total count header 42, got %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}

	var payload []string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(payload) != 2 {
		t.Fatalf("expected bare array of 2, got %v", payload)
	}
}

func TestWriteMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteMessage(rec, http.StatusOK, "Property created successfully")

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if payload["message"] != "Property created successfully" {
		t.Fatalf("unexpected message %q", payload["message"])
	}
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not found surfaces its message",
			err:        pkgerrors.New(pkgerrors.CodeNotFound, "property not found"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "property not found",
		},
		{
			name:       "precondition surfaces its message",
			err:        pkgerrors.New(pkgerrors.CodePrecondition, "user not found"),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "user not found",
		},
		{
			name:       "dependency surfaces its message",
			err:        pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("dial tcp refused"), "db: list properties"),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "db: list properties",
		},
		{
			name:       "internal surfaces its message",
			err:        pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "property service unavailable",
		},
		{
			name:       "untyped maps to internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "unexpected error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(context.Background(), nil, rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			var payload map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if payload["message"] != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, payload["message"])
			}
		})
	}
}
