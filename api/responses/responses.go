package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	pkgerrors "github.com/yarigadev/yariga-backend/pkg/errors"
	"github.com/yarigadev/yariga-backend/pkg/logger"
)

// TotalCountHeader carries the unpaginated row count the frontend's data
// provider reads for pagination.
const TotalCountHeader = "x-total-count"

// WriteJSON writes the payload as-is. The API serves bare objects and
// arrays rather than an envelope; the frontend's data provider expects the
// resource at the top level.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

// WriteList writes a bare JSON array plus the x-total-count header.
func WriteList(w http.ResponseWriter, total int64, payload any) {
	w.Header().Set(TotalCountHeader, strconv.FormatInt(total, 10))
	WriteJSON(w, http.StatusOK, payload)
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}

func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	// The error surface is deliberately unsanitized: clients see the
	// wrapping message for every code, store faults included.
	msg := meta.PublicMessage
	if m := typed.Message(); m != "" {
		msg = m
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)
		ctx = logg.WithFields(ctx, map[string]any{
			"error":       dump.TopMessage,
			"error_code":  dump.Code,
			"error_chain": dump.Chain,
			"pg_code":     dump.PGCode,
			"pg_detail":   dump.PGDetail,
			"pg_message":  dump.PGMessage,
		})
		logg.Error(ctx, "request.error", err)
	}

	WriteMessage(w, meta.HTTPStatus, msg)
}
