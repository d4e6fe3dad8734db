package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

type SessionHandler struct {
	sessions SessionService
	timeout  time.Duration
}

func NewSessionHandler(sessions SessionService, timeout time.Duration) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		timeout:  timeout,
	}
}

type SignInRequestDTO struct {
	Name string `json:"name"`
}

type B2BModeRequestDTO struct {
	Enabled *bool `json:"enabled"`
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	st, err := h.sessions.Session(ctx, getSessionID(r.Context()))
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, st)
}

func (h *SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req SignInRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	st, err := h.sessions.SignIn(ctx, getSessionID(r.Context()), req.Name)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, st)
}

func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	st, err := h.sessions.SignOut(ctx, getSessionID(r.Context()))
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, st)
}

// SetB2BMode sets the mode from {"enabled": bool}. An empty body or a
// missing field toggles it.
func (h *SessionHandler) SetB2BMode(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req B2BModeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	st, err := h.sessions.SetB2BMode(ctx, getSessionID(r.Context()), req.Enabled)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, st)
}
