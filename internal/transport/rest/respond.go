package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

// Error codes returned in the "code" field.
const (
	CodeValidation        = "VALIDATION"
	CodeInvalidMedia      = "INVALID_MEDIA"
	CodeUnauthenticated   = "UNAUTHENTICATED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeUploadFailed      = "UPLOAD_FAILED"
	CodeBadRequest        = "BAD_REQUEST"
	CodeInternal          = "INTERNAL"
)

// Redirect hints tell clients where to send the user after an error.
const (
	RedirectLogin  = "login"
	RedirectItems  = "items"
	RedirectOrders = "orders"
)

const maxJSONBody = 1 << 20

// HeaderNextCursor carries the cursor of the next page on list responses.
const HeaderNextCursor = "X-Next-Cursor"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code"`
	Field    string `json:"field,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, body ErrorResponse) {
	writeJSON(w, status, body)
}

func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, ErrorResponse{Error: message, Code: CodeBadRequest})
}

// handleError maps a service error onto a response. Unknown errors are
// logged with their cause and reported generically.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *domain.ValidationError
		me *domain.MediaError
	)
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ErrorResponse{
			Error: ve.Message(),
			Code:  CodeValidation,
			Field: ve.Errors[0].Field,
		})
	case errors.As(err, &me):
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: me.Reason, Code: CodeInvalidMedia})
	case errors.Is(err, domain.ErrInvalidMedia):
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid image", Code: CodeInvalidMedia})
	case errors.Is(err, domain.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, ErrorResponse{
			Error:    "Please login to continue",
			Code:     CodeUnauthenticated,
			Redirect: RedirectLogin,
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, ErrorResponse{
			Error:    "Invalid credentials",
			Code:     CodeUnauthenticated,
			Redirect: RedirectLogin,
		})
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, ErrorResponse{
			Error: "You are not allowed to do that",
			Code:  CodeForbidden,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, ErrorResponse{
			Error:    "Not found",
			Code:     CodeNotFound,
			Redirect: RedirectItems,
		})
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, ErrorResponse{
			Error:    "Order cannot move to that status",
			Code:     CodeInvalidTransition,
			Redirect: RedirectOrders,
		})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, ErrorResponse{Error: "Already exists", Code: CodeConflict})
	case errors.Is(err, domain.ErrItemHasOrders):
		writeError(w, http.StatusConflict, ErrorResponse{
			Error: "This item has orders and cannot be deleted. Mark it as sold instead",
			Code:  CodeConflict,
		})
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, ErrorResponse{
			Error: "This item is no longer available",
			Code:  CodeConflict,
		})
	case errors.Is(err, domain.ErrUploadFailed):
		log.WarnContext(r.Context(), "upload failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, ErrorResponse{
			Error: "Failed to upload image",
			Code:  CodeUploadFailed,
		})
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Something went wrong",
			Code:  CodeInternal,
		})
	}
}

// decodeJSON reads a bounded JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			badRequest(w, "request body is required")
			return false
		}
		badRequest(w, "invalid request body")
		return false
	}
	return true
}

// idParam parses a UUID path parameter. Malformed ids cannot name a stored
// row and are reported as not found.
func idParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusNotFound, ErrorResponse{
			Error:    "Not found",
			Code:     CodeNotFound,
			Redirect: RedirectItems,
		})
		return uuid.Nil, false
	}
	return id, true
}
