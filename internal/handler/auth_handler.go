package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"property-portal/internal/api"
	"property-portal/internal/model"
	"property-portal/pkg/apierror"
)

type AuthHandler struct {
	client *api.Client
}

func NewAuthHandler(client *api.Client) *AuthHandler {
	return &AuthHandler{client: client}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.client.Login)
}

func (h *AuthHandler) CustomerLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.client.CustomerLogin)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if strings.TrimSpace(payload.Username) == "" || strings.TrimSpace(payload.Password) == "" {
		writeError(w, apierror.New("BAD_REQUEST", "username and password are required", "", http.StatusBadRequest))
		return
	}

	accessToken, err := h.client.Register(r.Context(), payload.Username, payload.Password, payload.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, model.LoginResponse{AccessToken: accessToken}, nil)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, authenticate func(ctx context.Context, username string, password string) (string, error)) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if strings.TrimSpace(payload.Username) == "" || strings.TrimSpace(payload.Password) == "" {
		writeError(w, apierror.New("BAD_REQUEST", "username and password are required", "", http.StatusBadRequest))
		return
	}

	accessToken, err := authenticate(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.LoginResponse{AccessToken: accessToken}, nil)
}
