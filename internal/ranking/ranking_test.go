package ranking_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
	"github.com/igoratamanchuk/findamechanic/internal/ranking"
	"github.com/igoratamanchuk/findamechanic/internal/repo"
)

func parseOf(service []domain.ServiceTag, specialty []domain.SpecialtyTag) domain.IssueParse {
	return domain.IssueParse{
		Urgency:       domain.UrgencyMedium,
		ServiceTags:   service,
		SpecialtyTags: specialty,
	}
}

func slugs(ranked []domain.RankedShop) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Shop.Slug
	}
	return out
}

func seedShops(t *testing.T) []domain.Shop {
	t.Helper()
	c, err := repo.LoadCatalog()
	require.NoError(t, err)
	shops, err := c.List(context.Background())
	require.NoError(t, err)
	return shops
}

// TestRank_TwoShopScenario: a shop offering both requested services outranks
// one offering only brakes, with scores 10 and 5.
func TestRank_TwoShopScenario(t *testing.T) {
	shops := []domain.Shop{
		{Slug: "brakes-only", Name: "Shop A", Services: []string{"Brakes"}},
		{Slug: "brakes-and-tires", Name: "Shop B", Services: []string{"Brakes", "Tires"}},
	}
	parse := parseOf([]domain.ServiceTag{domain.ServiceBrakes, domain.ServiceTires}, []domain.SpecialtyTag{})

	got := ranking.Rank(shops, parse, ranking.DefaultLimit)

	want := []domain.RankedShop{
		{Shop: shops[1], MatchScore: 10},
		{Shop: shops[0], MatchScore: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rank() mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_SpecialtyPoints(t *testing.T) {
	shops := []domain.Shop{
		{Slug: "generic", Name: "Generic", Services: []string{"Brakes"}},
		{Slug: "ford", Name: "Ford Place", Services: []string{"Brakes"}, Specialties: []string{"Ford"}},
	}
	parse := parseOf([]domain.ServiceTag{domain.ServiceBrakes}, []domain.SpecialtyTag{domain.SpecialtyFord})

	got := ranking.Rank(shops, parse, ranking.DefaultLimit)

	assert.Equal(t, []string{"ford", "generic"}, slugs(got))
	assert.Equal(t, 8, got[0].MatchScore)
	assert.Equal(t, 5, got[1].MatchScore)
}

// TestRank_TiesKeepCatalogOrder verifies the sort is stable.
func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	shops := []domain.Shop{
		{Slug: "a", Name: "A"},
		{Slug: "b", Name: "B", Services: []string{"Brakes"}},
		{Slug: "c", Name: "C"},
		{Slug: "d", Name: "D", Services: []string{"Brakes"}},
		{Slug: "e", Name: "E"},
	}
	parse := parseOf([]domain.ServiceTag{domain.ServiceBrakes}, nil)

	got := ranking.Rank(shops, parse, 0)

	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, slugs(got))
}

func TestRank_SeedCatalog(t *testing.T) {
	parse := parseOf([]domain.ServiceTag{domain.ServiceBrakes, domain.ServiceTires}, nil)

	got := ranking.Rank(seedShops(t), parse, ranking.DefaultLimit)

	assert.Equal(t, []string{
		"rochdale-autopro",
		"ok-tire-auto-service-park-street",
		"progressive-automotive-service",
		"punjab-auto-repair",
		"minute-muffler-and-brake-victoria",
	}, slugs(got))
	assert.Equal(t, []int{10, 10, 5, 5, 5}, []int{
		got[0].MatchScore, got[1].MatchScore, got[2].MatchScore, got[3].MatchScore, got[4].MatchScore,
	})
}

func TestRank_NoTagsKeepsCatalogOrder(t *testing.T) {
	shops := seedShops(t)

	got := ranking.Rank(shops, parseOf(nil, nil), ranking.DefaultLimit)

	require.Len(t, got, 5)
	for i, r := range got {
		assert.Equal(t, shops[i].Slug, r.Shop.Slug)
		assert.Zero(t, r.MatchScore)
	}
}

func TestRank_Idempotent(t *testing.T) {
	shops := seedShops(t)
	parse := parseOf(
		[]domain.ServiceTag{domain.ServiceMaintenance, domain.ServiceFleet},
		[]domain.SpecialtyTag{domain.SpecialtyCommercial},
	)

	first := ranking.Rank(shops, parse, ranking.DefaultLimit)
	second := ranking.Rank(shops, parse, ranking.DefaultLimit)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-ranking changed output (-first +second):\n%s", diff)
	}
	assert.Equal(t, "mainline-fleet-service", first[0].Shop.Slug)
}

func TestScore_DuplicateRequestTagsCountOnce(t *testing.T) {
	tags := domain.Tags{Service: []domain.ServiceTag{domain.ServiceBrakes}}
	parse := parseOf([]domain.ServiceTag{domain.ServiceBrakes, domain.ServiceBrakes}, nil)

	assert.Equal(t, 5, ranking.Score(parse, tags))
}

func TestByStrength(t *testing.T) {
	got := ranking.ByStrength(seedShops(t))

	require.Len(t, got, 9)
	// Rochdale lists the most services.
	assert.Equal(t, "rochdale-autopro", got[0].Slug)
	assert.Equal(t, "progressive-automotive-service", got[1].Slug)
}
