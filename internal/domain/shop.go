package domain

// Shop is a single auto-repair shop listed in the catalog.
// Slug is the stable external identifier used in URLs.
// Optional fields are nil when the listing does not provide them.
// Derived tags are never stored here; see package shoptags.
type Shop struct {
	Slug         string   `json:"slug" yaml:"slug"`
	Name         string   `json:"name" yaml:"name"`
	Address      string   `json:"address" yaml:"address"`
	Phone        *string  `json:"phone,omitempty" yaml:"phone,omitempty"`
	Website      *string  `json:"website,omitempty" yaml:"website,omitempty"`
	Neighborhood *string  `json:"neighborhood,omitempty" yaml:"neighborhood,omitempty"`
	Services     []string `json:"services" yaml:"services"`
	Specialties  []string `json:"specialties" yaml:"specialties"`
	Description  *string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// Clone returns a deep copy of s so callers can never mutate catalog state.
func (s Shop) Clone() Shop {
	out := s
	out.Phone = cloneString(s.Phone)
	out.Website = cloneString(s.Website)
	out.Neighborhood = cloneString(s.Neighborhood)
	out.Description = cloneString(s.Description)
	out.Services = append([]string{}, s.Services...)
	out.Specialties = append([]string{}, s.Specialties...)
	return out
}

// Value returns the dereferenced string, or "" when p is nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Present reports whether an optional field holds a non-empty value.
func Present(p *string) bool {
	return p != nil && *p != ""
}

// RankedShop pairs a shop with the score it earned against one IssueParse.
type RankedShop struct {
	Shop       Shop
	MatchScore int
}

// City describes the single city the directory covers.
type City struct {
	Slug     string `json:"slug" yaml:"slug"`
	Name     string `json:"name" yaml:"name"`
	Province string `json:"province" yaml:"province"`
	Country  string `json:"country" yaml:"country"`
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
