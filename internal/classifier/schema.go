package classifier

import "github.com/igoratamanchuk/findamechanic/internal/domain"

// Kind is the JSON type of one schema property.
type Kind int

const (
	KindString Kind = iota
	KindBoolean
	KindStringArray
)

// Property is one field of a flat output schema. For KindString and
// KindStringArray, a non-empty Enum restricts the allowed values.
type Property struct {
	Name string
	Kind Kind
	Enum []string
}

// Schema is a provider-neutral description of a flat JSON object whose
// properties are all required and which allows no other properties.
// Each Generator translates it into its own structured-output format.
type Schema struct {
	Name       string
	Properties []Property
}

// Required returns the property names in declaration order.
func (s Schema) Required() []string {
	out := make([]string, len(s.Properties))
	for i, p := range s.Properties {
		out[i] = p.Name
	}
	return out
}

// IssueSchema is the issue_parse output contract: urgency, drivable, both
// tag arrays restricted to their vocabularies, and a free-form summary.
func IssueSchema() Schema {
	return Schema{
		Name: "issue_parse",
		Properties: []Property{
			{Name: "urgency", Kind: KindString, Enum: stringsOf(domain.Urgencies())},
			{Name: "drivable", Kind: KindBoolean},
			{Name: "serviceTags", Kind: KindStringArray, Enum: stringsOf(domain.ServiceTags())},
			{Name: "specialtyTags", Kind: KindStringArray, Enum: stringsOf(domain.SpecialtyTags())},
			{Name: "summary", Kind: KindString},
		},
	}
}

func stringsOf[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
