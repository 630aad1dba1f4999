package service

import (
	"context"
	"fmt"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
	"github.com/igoratamanchuk/findamechanic/internal/ranking"
	"github.com/igoratamanchuk/findamechanic/internal/repo"
	"github.com/igoratamanchuk/findamechanic/internal/shoptags"
	"github.com/igoratamanchuk/findamechanic/internal/site"
)

// ShopFilter narrows a directory listing. Empty tag fields match every shop.
type ShopFilter struct {
	Service        string
	Specialty      string
	SortByStrength bool
}

// ShopListing is a shop with its derived tags and listing strength.
type ShopListing struct {
	Shop     domain.Shop
	Tags     domain.Tags
	Strength int
}

// ShopDetail is a listing plus everything a profile page renders.
type ShopDetail struct {
	ShopListing
	Page    site.Page
	MapsURL string
	TelLink string
}

// ShopService serves the browsable shop directory.
type ShopService struct {
	shops repo.ShopRepo
	site  *site.Site
}

// NewShopService constructs a ShopService. Page URLs are built with s.
func NewShopService(shops repo.ShopRepo, s *site.Site) *ShopService {
	return &ShopService{shops: shops, site: s}
}

// City returns the city the catalog covers.
func (s *ShopService) City() domain.City {
	return s.shops.City()
}

// List returns the shops matching f, in catalog order unless f asks for
// strength ordering. An unknown tag in f is a domain.ErrValidation.
func (s *ShopService) List(ctx context.Context, f ShopFilter) ([]ShopListing, error) {
	service := domain.ServiceTag(f.Service)
	if f.Service != "" && !service.IsValid() {
		return nil, fmt.Errorf("%w: unknown service tag %q", domain.ErrValidation, f.Service)
	}
	specialty := domain.SpecialtyTag(f.Specialty)
	if f.Specialty != "" && !specialty.IsValid() {
		return nil, fmt.Errorf("%w: unknown specialty tag %q", domain.ErrValidation, f.Specialty)
	}

	shops, err := s.shops.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ShopService.List: %w", err)
	}
	if f.SortByStrength {
		shops = ranking.ByStrength(shops)
	}

	out := make([]ShopListing, 0, len(shops))
	for _, shop := range shops {
		l := listing(shop)
		if f.Service != "" && !l.Tags.HasService(service) {
			continue
		}
		if f.Specialty != "" && !l.Tags.HasSpecialty(specialty) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// GetBySlug returns the detail view for one shop, or domain.ErrNotFound.
func (s *ShopService) GetBySlug(ctx context.Context, slug string) (ShopDetail, error) {
	shop, err := s.shops.GetBySlug(ctx, slug)
	if err != nil {
		return ShopDetail{}, fmt.Errorf("service.ShopService.GetBySlug: %w", err)
	}

	d := ShopDetail{
		ShopListing: listing(shop),
		Page:        s.site.ShopPage(shop),
		MapsURL:     site.MapsURL(shop.Address),
	}
	if domain.Present(shop.Phone) {
		d.TelLink = site.TelLink(*shop.Phone)
	}
	return d, nil
}

// NotFoundPage returns the metadata served alongside a 404 for slug.
func (s *ShopService) NotFoundPage(slug string) site.Page {
	return s.site.NotFoundPage(slug)
}

func listing(shop domain.Shop) ShopListing {
	return ShopListing{Shop: shop, Tags: shoptags.Derive(shop), Strength: shoptags.Strength(shop)}
}
