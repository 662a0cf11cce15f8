package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"property-portal/internal/api"
	"property-portal/internal/middleware"
	"property-portal/internal/model"
	"property-portal/pkg/apierror"
)

// AdminHandler proxies the back-office surface: dashboard aggregates,
// amenities, and property CRUD. Every call forwards the caller's admin
// token for upstream validation.
type AdminHandler struct {
	client *api.Client
}

func NewAdminHandler(client *api.Client) *AdminHandler {
	return &AdminHandler{client: client}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	tokenString, _ := middleware.BearerFromContext(r.Context())

	stats, err := h.client.Stats(r.Context(), tokenString)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, stats, nil)
}

func (h *AdminHandler) PropertiesByType(w http.ResponseWriter, r *http.Request) {
	tokenString, _ := middleware.BearerFromContext(r.Context())

	counts, err := h.client.PropertiesByType(r.Context(), tokenString)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, counts, nil)
}

func (h *AdminHandler) SearchStats(w http.ResponseWriter, r *http.Request) {
	tokenString, _ := middleware.BearerFromContext(r.Context())

	stats, err := h.client.SearchStats(r.Context(), tokenString)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, stats, nil)
}

func (h *AdminHandler) RevenueStats(w http.ResponseWriter, r *http.Request) {
	tokenString, _ := middleware.BearerFromContext(r.Context())

	revenue, err := h.client.RevenueStats(r.Context(), tokenString)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, revenue, nil)
}

func (h *AdminHandler) Amenities(w http.ResponseWriter, r *http.Request) {
	tokenString, _ := middleware.BearerFromContext(r.Context())

	amenities, err := h.client.Amenities(r.Context(), tokenString)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, amenities, nil)
}

func (h *AdminHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	tokenString, _ := middleware.BearerFromContext(r.Context())
	query := r.URL.Query()

	properties, err := h.client.AdminProperties(r.Context(), tokenString, query.Get("keyword"), query.Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, properties, nil)
}

func (h *AdminHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	tokenString, _ := middleware.BearerFromContext(r.Context())

	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	property, err := h.client.AdminPropertyByID(r.Context(), tokenString, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, property, nil)
}

func (h *AdminHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	tokenString, _ := middleware.BearerFromContext(r.Context())

	var payload model.Property
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	created, err := h.client.CreateProperty(r.Context(), tokenString, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, created, nil)
}

func (h *AdminHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	tokenString, _ := middleware.BearerFromContext(r.Context())

	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	var payload model.Property
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	updated, err := h.client.UpdateProperty(r.Context(), tokenString, id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, updated, nil)
}

func (h *AdminHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	tokenString, _ := middleware.BearerFromContext(r.Context())

	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	if err := h.client.DeleteProperty(r.Context(), tokenString, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": id}, nil)
}

func (h *AdminHandler) CloseDeal(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	tokenString, _ := middleware.BearerFromContext(r.Context())

	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	var payload model.CloseDealRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if payload.TransactionType != model.DealSold && payload.TransactionType != model.DealRented {
		writeError(w, apierror.New("BAD_REQUEST", "transaction_type must be Sold or Rented", "", http.StatusBadRequest))
		return
	}

	if payload.FinalPrice <= 0 {
		writeError(w, apierror.New("BAD_REQUEST", "final_price must be positive", "", http.StatusBadRequest))
		return
	}

	if err := h.client.CloseDeal(r.Context(), tokenString, id, payload); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"closed": id}, nil)
}

func (h *AdminHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	tokenString, _ := middleware.BearerFromContext(r.Context())

	imageID, err := strconv.ParseInt(chi.URLParam(r, "imageId"), 10, 64)
	if err != nil || imageID <= 0 {
		writeError(w, apierror.New("BAD_REQUEST", "invalid image id", "", http.StatusBadRequest))
		return
	}

	if err := h.client.DeleteImage(r.Context(), tokenString, imageID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": imageID}, nil)
}

func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	tokenString, _ := middleware.BearerFromContext(r.Context())

	users, err := h.client.Users(r.Context(), tokenString)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, users, nil)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	tokenString, _ := middleware.BearerFromContext(r.Context())

	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, apierror.New("BAD_REQUEST", "invalid user id", "", http.StatusBadRequest))
		return
	}

	if err := h.client.DeleteUser(r.Context(), tokenString, userID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": userID}, nil)
}

func propertyID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, apierror.New("BAD_REQUEST", "invalid property id", "", http.StatusBadRequest))
		return 0, false
	}

	return id, true
}
