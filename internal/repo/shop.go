// Package repo provides read access to the shop catalog.
// The catalog is decoded once from embedded seed data and is immutable
// afterwards, so a single instance is safe for concurrent use by all requests.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
	"github.com/igoratamanchuk/findamechanic/seed"
)

// ShopRepo defines the read operations on the shop catalog.
type ShopRepo interface {
	// List returns every shop in curated catalog order.
	List(ctx context.Context) ([]domain.Shop, error)

	// GetBySlug returns the shop with the given slug.
	// Returns domain.ErrNotFound if no shop has that slug.
	GetBySlug(ctx context.Context, slug string) (domain.Shop, error)

	// City returns the city the catalog covers.
	City() domain.City
}

// catalogFile mirrors the layout of the seed YAML.
type catalogFile struct {
	City  domain.City   `yaml:"city"`
	Shops []domain.Shop `yaml:"shops"`
}

// Catalog is the in-memory implementation of ShopRepo.
// It is built once by LoadCatalog or NewCatalog and never mutated.
type Catalog struct {
	city   domain.City
	shops  []domain.Shop
	bySlug map[string]int
}

// LoadCatalog decodes the embedded Regina seed data.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(seed.Regina)
}

// ParseCatalog decodes a YAML catalog document and validates it.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("repo.ParseCatalog: decode: %w", err)
	}
	c, err := NewCatalog(f.City, f.Shops)
	if err != nil {
		return nil, fmt.Errorf("repo.ParseCatalog: %w", err)
	}
	return c, nil
}

// NewCatalog builds a Catalog from already-decoded records.
// Slugs must be non-empty and unique; every shop needs a name and an address.
// The input slice is copied, so later changes by the caller have no effect.
func NewCatalog(city domain.City, shops []domain.Shop) (*Catalog, error) {
	c := &Catalog{
		city:   city,
		shops:  make([]domain.Shop, 0, len(shops)),
		bySlug: make(map[string]int, len(shops)),
	}

	var problems []string
	for i, s := range shops {
		switch {
		case strings.TrimSpace(s.Slug) == "":
			problems = append(problems, fmt.Sprintf("shop %d: slug is required", i))
			continue
		case strings.TrimSpace(s.Name) == "":
			problems = append(problems, fmt.Sprintf("shop %q: name is required", s.Slug))
		case strings.TrimSpace(s.Address) == "":
			problems = append(problems, fmt.Sprintf("shop %q: address is required", s.Slug))
		}
		if _, dup := c.bySlug[s.Slug]; dup {
			problems = append(problems, fmt.Sprintf("shop %q: duplicate slug", s.Slug))
			continue
		}
		c.bySlug[s.Slug] = len(c.shops)
		c.shops = append(c.shops, s.Clone())
	}

	if len(problems) > 0 {
		return nil, errors.New("invalid catalog: " + strings.Join(problems, "; "))
	}
	return c, nil
}

// List returns a copy of every shop in catalog order.
// Always returns a non-nil slice.
func (c *Catalog) List(_ context.Context) ([]domain.Shop, error) {
	out := make([]domain.Shop, len(c.shops))
	for i, s := range c.shops {
		out[i] = s.Clone()
	}
	return out, nil
}

// GetBySlug returns a copy of the shop with the given slug.
func (c *Catalog) GetBySlug(_ context.Context, slug string) (domain.Shop, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.Shop{}, fmt.Errorf("repo.Catalog.GetBySlug: %q: %w", slug, domain.ErrNotFound)
	}
	return c.shops[i].Clone(), nil
}

// City returns the city the catalog covers.
func (c *Catalog) City() domain.City {
	return c.city
}

// Len returns the number of shops in the catalog.
func (c *Catalog) Len() int {
	return len(c.shops)
}
