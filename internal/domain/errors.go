package domain

import "errors"

// ErrNotFound is returned when a requested resource (e.g. a shop slug) does
// not exist in the catalog.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when caller input fails
// validation (blank issue text, malformed email, short message, unknown tag).
// It is always reported before any external call is made.
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ErrClassifierUnavailable is returned when no generative-text credential is
// configured, or when the single outbound call fails at the transport level.
var ErrClassifierUnavailable = errors.New("classifier unavailable")

// ErrMalformedResponse is returned when the generative-text service replies
// with text that is not valid structured output.
var ErrMalformedResponse = errors.New("malformed classifier response")

// ErrDeliveryUnavailable is returned when no email-delivery credential is configured.
var ErrDeliveryUnavailable = errors.New("delivery unavailable")

// ErrDeliveryFailed is returned when the email-delivery service reports a
// transport error.
var ErrDeliveryFailed = errors.New("delivery failed")
