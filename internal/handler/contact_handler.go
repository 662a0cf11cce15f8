package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"property-portal/internal/api"
	"property-portal/internal/model"
	"property-portal/pkg/apierror"
)

type ContactHandler struct {
	client *api.Client
}

func NewContactHandler(client *api.Client) *ContactHandler {
	return &ContactHandler{client: client}
}

func (h *ContactHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Message) == "" {
		writeError(w, apierror.New("BAD_REQUEST", "name and message are required", "", http.StatusBadRequest))
		return
	}

	if !validEmail(payload.Email) {
		writeError(w, apierror.New("BAD_REQUEST", "valid email is required", "", http.StatusBadRequest))
		return
	}

	if err := h.client.SendContactMessage(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"sent": true}, nil)
}

// Subscribe records a newsletter signup. There is no upstream endpoint
// for this yet; subscribers are logged for later export.
// TODO: forward to the mailing-list provider once marketing settles on one.
func (h *ContactHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if !validEmail(payload.Email) {
		writeError(w, apierror.New("BAD_REQUEST", "valid email is required", "", http.StatusBadRequest))
		return
	}

	slog.Info("newsletter subscriber", "email", payload.Email)
	writeSuccess(w, http.StatusOK, map[string]any{"subscribed": true, "email": payload.Email}, nil)
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
