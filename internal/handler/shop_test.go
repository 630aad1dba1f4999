package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
	"github.com/igoratamanchuk/findamechanic/internal/handler"
	"github.com/igoratamanchuk/findamechanic/internal/repo"
	"github.com/igoratamanchuk/findamechanic/internal/service"
	"github.com/igoratamanchuk/findamechanic/internal/site"
)

// mockShopServicer is a test double for handler.ShopServicer.
type mockShopServicer struct {
	list      func(ctx context.Context, f service.ShopFilter) ([]service.ShopListing, error)
	getBySlug func(ctx context.Context, slug string) (service.ShopDetail, error)
}

func (m *mockShopServicer) City() domain.City {
	return domain.City{Slug: "regina-sk", Name: "Regina", Province: "SK", Country: "CA"}
}
func (m *mockShopServicer) List(ctx context.Context, f service.ShopFilter) ([]service.ShopListing, error) {
	return m.list(ctx, f)
}
func (m *mockShopServicer) GetBySlug(ctx context.Context, slug string) (service.ShopDetail, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockShopServicer) NotFoundPage(slug string) site.Page {
	return site.New("", m.City()).NotFoundPage(slug)
}

// compile-time check: mockShopServicer must satisfy handler.ShopServicer.
var _ handler.ShopServicer = (*mockShopServicer)(nil)

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// newSeededShopHandler wires the real catalog and ShopService, the way the
// app package does in production.
func newSeededShopHandler(t *testing.T) http.Handler {
	t.Helper()
	c, err := repo.LoadCatalog()
	require.NoError(t, err)
	shops := service.NewShopService(c, site.New("https://findamechanic.ca", c.City()))
	return handler.NewServer(nil, nil, shops, nil).Routes(nil)
}

// ---- GET /api/shops ----------------------------------------------------------

func TestListShops_200_Seeded(t *testing.T) {
	rec := get(newSeededShopHandler(t), "/api/shops")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		City  domain.City      `json:"city"`
		Count int              `json:"count"`
		Shops []map[string]any `json:"shops"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "regina-sk", resp.City.Slug)
	assert.Equal(t, 9, resp.Count)
	require.Len(t, resp.Shops, 9)
	assert.Equal(t, "progressive-automotive-service", resp.Shops[0]["slug"])
	assert.Contains(t, resp.Shops[0], "serviceTags")
	assert.Contains(t, resp.Shops[0], "specialtyTags")
	assert.EqualValues(t, 20, resp.Shops[0]["strength"])
}

func TestListShops_BindsFilters(t *testing.T) {
	var seen service.ShopFilter
	svc := &mockShopServicer{list: func(_ context.Context, f service.ShopFilter) ([]service.ShopListing, error) {
		seen = f
		return nil, nil
	}}
	h := handler.NewServer(nil, nil, svc, nil).Routes(nil)

	rec := get(h, "/api/shops?service=brakes&specialty=ford&sort=strength")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.ShopFilter{Service: "brakes", Specialty: "ford", SortByStrength: true}, seen)
	assert.JSONEq(t, `{"city":{"slug":"regina-sk","name":"Regina","province":"SK","country":"CA"},"count":0,"shops":[]}`, rec.Body.String())
}

func TestListShops_400_UnknownSort(t *testing.T) {
	rec := get(newSeededShopHandler(t), "/api/shops?sort=alphabetical")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListShops_400_RepeatedParameter(t *testing.T) {
	called := false
	svc := &mockShopServicer{list: func(_ context.Context, _ service.ShopFilter) ([]service.ShopListing, error) {
		called = true
		return nil, nil
	}}
	h := handler.NewServer(nil, nil, svc, nil).Routes(nil)

	for _, target := range []string{
		"/api/shops?service=brakes&service=tires",
		"/api/shops?specialty=ford&specialty=toyota",
		"/api/shops?sort=strength&sort=strength",
	} {
		rec := get(h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
	assert.False(t, called)
}

func TestListShops_400_UnknownTag(t *testing.T) {
	svc := &mockShopServicer{list: func(_ context.Context, _ service.ShopFilter) ([]service.ShopListing, error) {
		return nil, fmt.Errorf("%w: unknown service tag %q", domain.ErrValidation, "teleport")
	}}
	h := handler.NewServer(nil, nil, svc, nil).Routes(nil)

	rec := get(h, "/api/shops?service=teleport")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"unknown service tag \"teleport\""}`, rec.Body.String())
}

// ---- GET /api/shops/{slug} ---------------------------------------------------

func TestGetShop_200_Seeded(t *testing.T) {
	rec := get(newSeededShopHandler(t), "/api/shops/rochdale-autopro")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Rochdale Autopro", resp["name"])
	assert.Equal(t, "tel:3067751900", resp["telLink"])
	page := resp["page"].(map[string]any)
	assert.Equal(t, "Rochdale Autopro (Regina)", page["title"])
	assert.Equal(t, "https://findamechanic.ca/regina-sk/shops/rochdale-autopro", page["canonical"])
}

func TestGetShop_404(t *testing.T) {
	rec := get(newSeededShopHandler(t), "/api/shops/no-such-shop")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp struct {
		Error string    `json:"error"`
		Page  site.Page `json:"page"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Shop not found", resp.Error)
	assert.Equal(t, "Shop not found", resp.Page.Title)
	assert.False(t, resp.Page.Robots.Index)
	assert.True(t, resp.Page.Robots.Follow)
}

// ---- GET /api/tags -----------------------------------------------------------

func TestListTags_200(t *testing.T) {
	rec := get(handler.NewHealthHandler().Routes(nil), "/api/tags")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		ServiceTags   []string `json:"serviceTags"`
		SpecialtyTags []string `json:"specialtyTags"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.ServiceTags, 21)
	assert.Len(t, resp.SpecialtyTags, 17)
	assert.Equal(t, "general", resp.ServiceTags[0])
}
