package domain

import "github.com/google/uuid"

// FeedbackSubmission is one feedback form post. It is request-scoped and
// never persisted; ID only correlates log lines with the delivered email.
type FeedbackSubmission struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Message string
}

// DeliveryResult reports what happened to a feedback submission.
// ID is the provider's message identifier and may be empty.
type DeliveryResult struct {
	Delivered bool
	ID        string
}
