package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
	"github.com/igoratamanchuk/findamechanic/internal/service"
	"github.com/igoratamanchuk/findamechanic/internal/site"
)

type shopResponse struct {
	domain.Shop
	domain.Tags
	Strength int `json:"strength"`
}

type shopListResponse struct {
	City  domain.City    `json:"city"`
	Count int            `json:"count"`
	Shops []shopResponse `json:"shops"`
}

type shopDetailResponse struct {
	shopResponse
	Page    site.Page `json:"page"`
	MapsURL string    `json:"mapsUrl"`
	TelLink string    `json:"telLink,omitempty"`
}

type shopNotFoundResponse struct {
	Error string    `json:"error"`
	Page  site.Page `json:"page"`
}

type tagsResponse struct {
	ServiceTags   []domain.ServiceTag   `json:"serviceTags"`
	SpecialtyTags []domain.SpecialtyTag `json:"specialtyTags"`
}

// ListShops handles GET /api/shops.
// Supports ?service=, ?specialty= and ?sort=strength. Each filter takes a
// single value; repeating a key is a 400 rather than a silent first-wins.
func (s *Server) ListShops(w http.ResponseWriter, r *http.Request) {
	var serviceTag, specialtyTag, sort *string
	for _, p := range []struct {
		name string
		dest **string
	}{
		{"service", &serviceTag},
		{"specialty", &specialtyTag},
		{"sort", &sort},
	} {
		if err := runtime.BindQueryParameter("form", true, false, p.name, r.URL.Query(), p.dest); err != nil {
			writeError(w, http.StatusBadRequest, "invalid "+p.name+" parameter")
			return
		}
	}

	f := service.ShopFilter{Service: deref(serviceTag), Specialty: deref(specialtyTag)}
	switch deref(sort) {
	case "":
	case "strength":
		f.SortByStrength = true
	default:
		writeError(w, http.StatusBadRequest, `sort must be "strength"`)
		return
	}

	listings, err := s.shops.List(r.Context(), f)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, unwrapMessage(err))
			return
		}
		s.log.ErrorContext(r.Context(), "list shops failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list shops.")
		return
	}

	out := make([]shopResponse, len(listings))
	for i, l := range listings {
		out[i] = toShopResponse(l)
	}
	writeJSON(w, http.StatusOK, shopListResponse{City: s.shops.City(), Count: len(out), Shops: out})
}

// GetShop handles GET /api/shops/{slug}.
func (s *Server) GetShop(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	d, err := s.shops.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, shopNotFoundResponse{Error: "Shop not found", Page: s.shops.NotFoundPage(slug)})
			return
		}
		s.log.ErrorContext(r.Context(), "get shop failed", "error", err, "slug", slug)
		writeError(w, http.StatusInternalServerError, "Failed to load shop.")
		return
	}

	writeJSON(w, http.StatusOK, shopDetailResponse{
		shopResponse: toShopResponse(d.ShopListing),
		Page:         d.Page,
		MapsURL:      d.MapsURL,
		TelLink:      d.TelLink,
	})
}

// ListTags handles GET /api/tags.
func (s *Server) ListTags(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, tagsResponse{ServiceTags: domain.ServiceTags(), SpecialtyTags: domain.SpecialtyTags()})
}

func toShopResponse(l service.ShopListing) shopResponse {
	return shopResponse{Shop: l.Shop, Tags: l.Tags, Strength: l.Strength}
}

// deref returns the value of an optional string or "" if nil.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
