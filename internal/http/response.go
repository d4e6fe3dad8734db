package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fjod/storefront/internal/catalog"
	"github.com/fjod/storefront/internal/commerce"
	"github.com/fjod/storefront/internal/service"
	"github.com/fjod/storefront/internal/session"
	"github.com/fjod/storefront/pkg/circuitbreaker"
	"github.com/go-chi/chi/v5"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleAPIError converts service and upstream errors to HTTP responses.
func handleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCheckout),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidProductID),
		errors.Is(err, service.ErrUnknownOrderFilter),
		errors.Is(err, service.ErrEmptyDraft),
		errors.Is(err, session.ErrInvalidDraftItem),
		errors.Is(err, catalog.ErrUnknownSort):
		respondError(w, http.StatusBadRequest, "invalid_argument", err.Error())
		return
	case circuitbreaker.IsOpen(err):
		respondError(w, http.StatusServiceUnavailable, "service_unavailable", "commerce api unavailable")
		return
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, "timeout", "commerce api timed out")
		return
	}

	var apiErr *commerce.APIError
	if !errors.As(err, &apiErr) {
		if errors.Is(err, commerce.ErrDecode) {
			respondError(w, http.StatusBadGateway, "upstream_error", "malformed commerce api response")
			return
		}
		slog.ErrorContext(r.Context(), "unhandled error", "request_id", getRequestID(r.Context()), "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	var httpStatus int
	var code string

	switch apiErr.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		httpStatus = http.StatusBadRequest
		code = "invalid_argument"
	case http.StatusNotFound:
		httpStatus = http.StatusNotFound
		code = "not_found"
	case http.StatusConflict:
		httpStatus = http.StatusConflict
		code = "already_exists"
	case http.StatusTooManyRequests:
		httpStatus = http.StatusTooManyRequests
		code = "rate_limit_exceeded"
	default:
		httpStatus = http.StatusBadGateway
		code = "upstream_error"
		slog.WarnContext(r.Context(), "commerce api error", "request_id", getRequestID(r.Context()), "status", apiErr.StatusCode, "error", apiErr.Message)
	}

	respondError(w, httpStatus, code, apiErr.Message)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return false
	}
	return true
}

func productIDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
