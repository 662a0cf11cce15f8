package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"property-portal/internal/api"
	"property-portal/internal/model"
	"property-portal/pkg/apierror"
)

type PropertyHandler struct {
	client *api.Client
}

func NewPropertyHandler(client *api.Client) *PropertyHandler {
	return &PropertyHandler{client: client}
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	list, err := h.client.Properties(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	meta := &model.Meta{
		Page:       list.Pagination.CurrentPage,
		Limit:      filter.Limit,
		Total:      list.Pagination.TotalItems,
		TotalPages: list.Pagination.TotalPages,
	}
	writeSuccess(w, http.StatusOK, list.Properties, meta)
}

func (h *PropertyHandler) Featured(w http.ResponseWriter, r *http.Request) {
	properties, err := h.client.FeaturedProperties(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, properties, nil)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, apierror.New("BAD_REQUEST", "invalid property id", "", http.StatusBadRequest))
		return
	}

	property, err := h.client.PropertyByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, property, nil)
}

// LogSearch forwards search analytics upstream. Failures are swallowed:
// analytics must never break the search page.
func (h *PropertyHandler) LogSearch(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	_ = h.client.LogSearch(r.Context(), filter)
	writeSuccess(w, http.StatusAccepted, map[string]any{"logged": true}, nil)
}

func filterFromQuery(r *http.Request) model.PropertyFilter {
	query := r.URL.Query()

	filter := model.PropertyFilter{
		Status:  query.Get("status"),
		Type:    query.Get("type"),
		Keyword: query.Get("keyword"),
	}

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if minPrice, err := strconv.ParseFloat(query.Get("minPrice"), 64); err == nil && minPrice > 0 {
		filter.MinPrice = minPrice
	}
	if maxPrice, err := strconv.ParseFloat(query.Get("maxPrice"), 64); err == nil && maxPrice > 0 {
		filter.MaxPrice = maxPrice
	}

	return filter
}
