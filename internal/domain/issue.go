package domain

// Urgency is how soon the vehicle should be looked at.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Urgencies returns the urgency enum in schema order.
func Urgencies() []Urgency {
	return []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh}
}

// IsValid reports whether u is one of the three urgency levels.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// Issue is a user's free-text problem description plus optional vehicle details.
type Issue struct {
	Text  string
	Make  string
	Model string
	Year  string
}

// IssueParse is the validated result of classifying one Issue.
// Every tag is a member of its vocabulary and appears at most once.
// Tag slices are never nil.
type IssueParse struct {
	Urgency       Urgency        `json:"urgency"`
	Drivable      bool           `json:"drivable"`
	ServiceTags   []ServiceTag   `json:"serviceTags"`
	SpecialtyTags []SpecialtyTag `json:"specialtyTags"`
	Summary       string         `json:"summary"`
}
