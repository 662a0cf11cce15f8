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

// FavoritesHandler proxies the customer favorites collection. The
// gateway never inspects the token beyond presence; the upstream is the
// authorization boundary.
type FavoritesHandler struct {
	client *api.Client
}

func NewFavoritesHandler(client *api.Client) *FavoritesHandler {
	return &FavoritesHandler{client: client}
}

func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	tokenString, ok := middleware.BearerFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	ids, err := h.client.Favorites(r.Context(), tokenString)
	if err != nil {
		writeError(w, err)
		return
	}

	if ids == nil {
		ids = []int64{}
	}
	writeSuccess(w, http.StatusOK, ids, nil)
}

func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	tokenString, ok := middleware.BearerFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	var payload model.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if payload.PropertyID <= 0 {
		writeError(w, apierror.New("BAD_REQUEST", "propertyId is required", "", http.StatusBadRequest))
		return
	}

	if err := h.client.AddFavorite(r.Context(), tokenString, payload.PropertyID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"propertyId": payload.PropertyID}, nil)
}

func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	tokenString, ok := middleware.BearerFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "propertyId"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, apierror.New("BAD_REQUEST", "invalid property id", "", http.StatusBadRequest))
		return
	}

	if err := h.client.RemoveFavorite(r.Context(), tokenString, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"propertyId": id}, nil)
}
