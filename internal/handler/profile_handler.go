package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"property-portal/internal/api"
	"property-portal/internal/middleware"
	"property-portal/internal/model"
	"property-portal/pkg/apierror"
)

// ProfileHandler proxies the customer's own account surface. Like the
// favorites handler it forwards the raw Bearer token; the upstream
// resolves the token to an account.
type ProfileHandler struct {
	client *api.Client
}

func NewProfileHandler(client *api.Client) *ProfileHandler {
	return &ProfileHandler{client: client}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	tokenString, ok := middleware.BearerFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	profile, err := h.client.Profile(r.Context(), tokenString)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, profile, nil)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	tokenString, ok := middleware.BearerFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	var payload model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if strings.TrimSpace(payload.Username) == "" || !validEmail(payload.Email) {
		writeError(w, apierror.New("BAD_REQUEST", "username and a valid email are required", "", http.StatusBadRequest))
		return
	}

	if err := h.client.UpdateProfile(r.Context(), tokenString, payload); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"updated": true}, nil)
}

func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	tokenString, ok := middleware.BearerFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	var payload model.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if payload.CurrentPassword == "" {
		writeError(w, apierror.New("BAD_REQUEST", "current_password is required", "", http.StatusBadRequest))
		return
	}

	// Mirror the upstream's minimum so obviously short passwords fail
	// before a round trip.
	if len(payload.NewPassword) < 6 {
		writeError(w, apierror.New("BAD_REQUEST", "new_password must be at least 6 characters", "", http.StatusBadRequest))
		return
	}

	if err := h.client.ChangePassword(r.Context(), tokenString, payload.CurrentPassword, payload.NewPassword); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"changed": true}, nil)
}
