// Package shoptags derives controlled-vocabulary tags from a shop's free text.
//
// Derivation is a pure function of the shop record: the same input always
// yields the same tags. Tags are never stored; callers recompute them on demand.
package shoptags

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
)

// Derive maps a shop's name, neighborhood, description, services and
// specialties to service and specialty tags.
//
// Tags come out in rule order without duplicates. When no service rule
// matches, the service tags are exactly [general]. Specialty tags may be empty.
func Derive(shop domain.Shop) domain.Tags {
	text := CombinedText(shop)

	tags := domain.Tags{
		Service:   make([]domain.ServiceTag, 0, 4),
		Specialty: make([]domain.SpecialtyTag, 0, 2),
	}
	for _, r := range serviceRules {
		if matches(r.re, text) && !tags.HasService(r.tag) {
			tags.Service = append(tags.Service, r.tag)
		}
	}
	for _, r := range specialtyRules {
		if matches(r.re, text) && !tags.HasSpecialty(r.tag) {
			tags.Specialty = append(tags.Specialty, r.tag)
		}
	}

	if len(tags.Service) == 0 {
		tags.Service = append(tags.Service, domain.ServiceGeneral)
	}
	return tags
}

// CombinedText joins the shop's text fields with " | ", lowercases the result
// and collapses whitespace runs. Absent optional fields contribute an empty
// segment so field boundaries stay stable.
func CombinedText(shop domain.Shop) string {
	parts := make([]string, 0, 3+len(shop.Services)+len(shop.Specialties))
	parts = append(parts,
		shop.Name,
		domain.Value(shop.Neighborhood),
		domain.Value(shop.Description),
	)
	parts = append(parts, shop.Services...)
	parts = append(parts, shop.Specialties...)

	return strings.Join(strings.Fields(strings.ToLower(strings.Join(parts, " | "))), " ")
}

// Strength is a completeness signal for a listing:
// 2 per service, 1 per specialty, 2 for a description, 1 each for website and phone.
// The ranker does not use it; it is available for directory ordering.
func Strength(shop domain.Shop) int {
	n := 2*len(shop.Services) + len(shop.Specialties)
	if domain.Present(shop.Description) {
		n += 2
	}
	if domain.Present(shop.Website) {
		n++
	}
	if domain.Present(shop.Phone) {
		n++
	}
	return n
}

// matches reports whether re matches text. regexp2 only errors on a match
// timeout, and none is configured, so an error is treated as no match.
func matches(re *regexp2.Regexp, text string) bool {
	ok, err := re.MatchString(text)
	return err == nil && ok
}
