package handlers

import (
	"net/http"
	"strconv"

	"estatehub/internal/models"
	"estatehub/internal/repository"
)

type ListingResponse struct {
	Properties []models.Property  `json:"properties"`
	Pagination PaginationResponse `json:"pagination"`
}

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// SearchListings is the public browse endpoint. Criteria come from query
// parameters; unparseable or zero numeric values simply add no filter. The
// service returns the full published set and the window is sliced here.
func (h *Handlers) SearchListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := repository.SearchCriteria{
		Emirate:      q.Get("emirate"),
		Community:    q.Get("community"),
		Type:         q.Get("type"),
		PropertyType: q.Get("propertyType"),
		MinPrice:     parseFloat(q.Get("minPrice")),
		MaxPrice:     parseFloat(q.Get("maxPrice")),
		Bedrooms:     parseInt(q.Get("bedrooms")),
		Bathrooms:    parseInt(q.Get("bathrooms")),
		MinArea:      parseFloat(q.Get("minArea")),
		MaxArea:      parseFloat(q.Get("maxArea")),
	}

	properties, err := h.ListingService.Search(r.Context(), criteria)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	page := parseInt(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit := parseInt(q.Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 12
	}

	total := len(properties)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	WriteJSON(w, ListingResponse{
		Properties: properties[start:end],
		Pagination: PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}, http.StatusOK)
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
