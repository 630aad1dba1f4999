// Package domain contains the core data types for the FindAMechanic backend.
// This package has almost no external dependencies and is imported by every
// other internal package (repo, service, handler).
package domain

// ServiceTag is a member of the closed service vocabulary.
type ServiceTag string

// SpecialtyTag is a member of the closed specialty vocabulary.
type SpecialtyTag string

const (
	ServiceGeneral      ServiceTag = "general"
	ServiceMaintenance  ServiceTag = "maintenance"
	ServiceOilChange    ServiceTag = "oil_change"
	ServiceDiagnostics  ServiceTag = "diagnostics"
	ServiceBrakes       ServiceTag = "brakes"
	ServiceSuspension   ServiceTag = "suspension"
	ServiceAlignment    ServiceTag = "alignment"
	ServiceTires        ServiceTag = "tires"
	ServiceAC           ServiceTag = "ac"
	ServiceEngine       ServiceTag = "engine"
	ServiceTransmission ServiceTag = "transmission"
	ServiceExhaust      ServiceTag = "exhaust"
	ServiceElectrical   ServiceTag = "electrical"
	ServiceBody         ServiceTag = "body"
	ServiceCollision    ServiceTag = "collision"
	ServiceFleet        ServiceTag = "fleet"
	ServiceCommercial   ServiceTag = "commercial"
	ServicePerformance  ServiceTag = "performance"
	ServiceRestoration  ServiceTag = "restoration"
	ServiceTruck        ServiceTag = "truck"
	ServiceTrailer      ServiceTag = "trailer"
)

const (
	SpecialtyDomestic    SpecialtyTag = "domestic"
	SpecialtyImport      SpecialtyTag = "import"
	SpecialtyEuropean    SpecialtyTag = "european"
	SpecialtyAsian       SpecialtyTag = "asian"
	SpecialtyFord        SpecialtyTag = "ford"
	SpecialtyGM          SpecialtyTag = "gm"
	SpecialtyToyota      SpecialtyTag = "toyota"
	SpecialtyHonda       SpecialtyTag = "honda"
	SpecialtyMercedes    SpecialtyTag = "mercedes"
	SpecialtyBMW         SpecialtyTag = "bmw"
	SpecialtyVWAudi      SpecialtyTag = "vw_audi"
	SpecialtyFleet       SpecialtyTag = "fleet"
	SpecialtyCommercial  SpecialtyTag = "commercial"
	SpecialtyElectrical  SpecialtyTag = "electrical"
	SpecialtyBody        SpecialtyTag = "body"
	SpecialtyPerformance SpecialtyTag = "performance"
	SpecialtyRestoration SpecialtyTag = "restoration"
)

var serviceTags = []ServiceTag{
	ServiceGeneral, ServiceMaintenance, ServiceOilChange, ServiceDiagnostics,
	ServiceBrakes, ServiceSuspension, ServiceAlignment, ServiceTires, ServiceAC,
	ServiceEngine, ServiceTransmission, ServiceExhaust, ServiceElectrical,
	ServiceBody, ServiceCollision, ServiceFleet, ServiceCommercial,
	ServicePerformance, ServiceRestoration, ServiceTruck, ServiceTrailer,
}

var specialtyTags = []SpecialtyTag{
	SpecialtyDomestic, SpecialtyImport, SpecialtyEuropean, SpecialtyAsian,
	SpecialtyFord, SpecialtyGM, SpecialtyToyota, SpecialtyHonda,
	SpecialtyMercedes, SpecialtyBMW, SpecialtyVWAudi, SpecialtyFleet,
	SpecialtyCommercial, SpecialtyElectrical, SpecialtyBody,
	SpecialtyPerformance, SpecialtyRestoration,
}

var (
	serviceSet   = toSet(serviceTags)
	specialtySet = toSet(specialtyTags)
)

// ServiceTags returns the service vocabulary in declaration order.
// The returned slice is a copy; callers may modify it.
func ServiceTags() []ServiceTag {
	return append([]ServiceTag(nil), serviceTags...)
}

// SpecialtyTags returns the specialty vocabulary in declaration order.
// The returned slice is a copy; callers may modify it.
func SpecialtyTags() []SpecialtyTag {
	return append([]SpecialtyTag(nil), specialtyTags...)
}

// IsValid reports whether t is a member of the service vocabulary.
func (t ServiceTag) IsValid() bool {
	_, ok := serviceSet[t]
	return ok
}

// IsValid reports whether t is a member of the specialty vocabulary.
func (t SpecialtyTag) IsValid() bool {
	_, ok := specialtySet[t]
	return ok
}

// SanitizeServiceTags keeps only the values that belong to the service
// vocabulary, dropping duplicates. First-seen order is preserved and the
// result is never nil. Unknown values are discarded, not reported.
func SanitizeServiceTags(values []string) []ServiceTag {
	return sanitize(values, serviceSet)
}

// SanitizeSpecialtyTags is the specialty counterpart of SanitizeServiceTags.
func SanitizeSpecialtyTags(values []string) []SpecialtyTag {
	return sanitize(values, specialtySet)
}

// Tags holds the derived service and specialty tags for one shop.
type Tags struct {
	Service   []ServiceTag   `json:"serviceTags"`
	Specialty []SpecialtyTag `json:"specialtyTags"`
}

// HasService reports whether tag is present in t.Service.
func (t Tags) HasService(tag ServiceTag) bool {
	for _, s := range t.Service {
		if s == tag {
			return true
		}
	}
	return false
}

// HasSpecialty reports whether tag is present in t.Specialty.
func (t Tags) HasSpecialty(tag SpecialtyTag) bool {
	for _, s := range t.Specialty {
		if s == tag {
			return true
		}
	}
	return false
}

func toSet[T ~string](tags []T) map[T]struct{} {
	m := make(map[T]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return m
}

func sanitize[T ~string](values []string, allowed map[T]struct{}) []T {
	out := make([]T, 0, len(values))
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		t := T(v)
		if _, ok := allowed[t]; !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
