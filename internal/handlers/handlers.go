package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/ledger"
	"finance-tracker/internal/models"
	"finance-tracker/internal/validate"
)

// Context key type to avoid collisions.
type contextKey string

// UserContextKey is the context key for the authenticated user.
const UserContextKey contextKey = "user"

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	ledger    *ledger.Ledger
	auth      *auth.Service
	validator *validate.Validator
	logger    *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(l *ledger.Ledger, a *auth.Service, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		ledger:    l,
		auth:      a,
		validator: validate.New(),
		logger:    logger.With("component", "http"),
	}
}

// GetUserFromContext retrieves the authenticated user from request context.
func GetUserFromContext(r *http.Request) *models.User {
	if user, ok := r.Context().Value(UserContextKey).(*models.User); ok {
		return user
	}
	return nil
}

// AuthMiddleware requires HTTP Basic credentials on every request and checks
// them against the credential store. There are no sessions.
func (h *Handlers) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			h.unauthorized(w)
			return
		}

		user, err := h.auth.Login(r.Context(), username, password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.unauthorized(w)
			return
		}
		if err != nil {
			h.internalError(w, r, "login", err)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handlers) unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="finance", charset="UTF-8"`)
	writeError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error(), nil)
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup creates a new account.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.auth.CreateUser(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, auth.ErrUserExists):
		writeError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, auth.ErrEmptyUsername):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	case err != nil:
		h.internalError(w, r, "signup", err)
	default:
		writeJSON(w, http.StatusCreated, user)
	}
}

// Me returns the authenticated user.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GetUserFromContext(r))
}

func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", nil)
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", validate.FieldErrors(err))
		return false
	}
	return true
}

func (h *Handlers) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.ErrorContext(r.Context(), "request failed", "operation", op, "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error", nil)
}

type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string, details map[string]string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}

// writeJSON encodes v fully before the status is written. A value that
// cannot be encoded is answered with 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
