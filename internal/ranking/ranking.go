// Package ranking scores catalog shops against a classified issue.
package ranking

import (
	"sort"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
	"github.com/igoratamanchuk/findamechanic/internal/shoptags"
)

// DefaultLimit is how many shops a search returns.
const DefaultLimit = 5

// Points earned per matching tag.
const (
	ServicePoints   = 5
	SpecialtyPoints = 3
)

// Score returns 5 points per requested service tag the shop offers plus
// 3 points per requested specialty tag it carries. Each tag counts once.
func Score(parse domain.IssueParse, tags domain.Tags) int {
	score := 0
	for _, t := range dedupe(parse.ServiceTags) {
		if tags.HasService(t) {
			score += ServicePoints
		}
	}
	for _, t := range dedupe(parse.SpecialtyTags) {
		if tags.HasSpecialty(t) {
			score += SpecialtyPoints
		}
	}
	return score
}

// Rank scores every shop, sorts by score descending and returns at most
// limit entries. Shops with equal scores keep their catalog order.
// A limit <= 0 returns every shop.
func Rank(shops []domain.Shop, parse domain.IssueParse, limit int) []domain.RankedShop {
	ranked := make([]domain.RankedShop, len(shops))
	for i, s := range shops {
		ranked[i] = domain.RankedShop{Shop: s, MatchScore: Score(parse, shoptags.Derive(s))}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ByStrength returns a copy of shops ordered by listing strength, strongest
// first, keeping catalog order among equals.
func ByStrength(shops []domain.Shop) []domain.Shop {
	out := append([]domain.Shop(nil), shops...)
	sort.SliceStable(out, func(i, j int) bool {
		return shoptags.Strength(out[i]) > shoptags.Strength(out[j])
	})
	return out
}

func dedupe[T comparable](in []T) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
