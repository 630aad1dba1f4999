package classifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
)

// MalformedResponseError reports a reply that is not a JSON object.
// Raw holds the unmodified reply for diagnostics.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: %v", domain.ErrMalformedResponse, e.Err)
}

// Unwrap lets errors.Is match domain.ErrMalformedResponse.
func (e *MalformedResponseError) Unwrap() error {
	return domain.ErrMalformedResponse
}

var errNotObject = errors.New("reply is not a JSON object")

// ParseResponse decodes a raw model reply into a normalized IssueParse.
//
// The reply must be a JSON object, otherwise a *MalformedResponseError is
// returned; nothing is guessed from partial text. Inside the object every
// field is read leniently: a missing or invalid urgency becomes medium,
// drivable follows JSON truthiness, tag arrays keep only vocabulary members
// (deduplicated, first-seen order), and a missing summary becomes "".
func ParseResponse(raw string) (domain.IssueParse, error) {
	trimmed := strings.TrimSpace(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		if trimmed != "" && trimmed[0] != '{' {
			err = errNotObject
		}
		return domain.IssueParse{}, &MalformedResponseError{Raw: raw, Err: err}
	}
	if fields == nil {
		// The literal "null" decodes into a nil map.
		return domain.IssueParse{}, &MalformedResponseError{Raw: raw, Err: errNotObject}
	}

	return domain.IssueParse{
		Urgency:       decodeUrgency(fields["urgency"]),
		Drivable:      truthy(fields["drivable"]),
		ServiceTags:   domain.SanitizeServiceTags(decodeStrings(fields["serviceTags"])),
		SpecialtyTags: domain.SanitizeSpecialtyTags(decodeStrings(fields["specialtyTags"])),
		Summary:       decodeSummary(fields["summary"]),
	}, nil
}

func decodeUrgency(raw json.RawMessage) domain.Urgency {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.UrgencyMedium
	}
	if u := domain.Urgency(s); u.IsValid() {
		return u
	}
	return domain.UrgencyMedium
}

// decodeStrings returns the string members of a JSON array, skipping any
// other element types. A missing or non-array value yields nil.
func decodeStrings(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

func decodeSummary(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// truthy applies JavaScript truthiness to a decoded JSON value:
// false, null, 0 and "" are false; everything else, including empty arrays
// and objects, is true. A missing value is false.
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
