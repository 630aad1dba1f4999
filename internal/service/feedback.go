package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
	"github.com/igoratamanchuk/findamechanic/internal/mailer"
)

const (
	// DefaultFeedbackFrom is the sender used when none is configured.
	DefaultFeedbackFrom = "FindAMechanic <onboarding@resend.dev>"
	// DefaultFeedbackTo is the inbox that receives every submission.
	DefaultFeedbackTo = "findamechanic.info@gmail.com"

	feedbackSubject  = "FindAMechanic Feedback"
	minMessageLength = 10
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// FeedbackConfig holds the fixed envelope addresses.
type FeedbackConfig struct {
	From string
	To   string
}

// FeedbackService validates feedback form posts and relays them by email.
type FeedbackService struct {
	mailer mailer.Mailer
	from   string
	to     string
	log    *slog.Logger
}

// NewFeedbackService constructs a FeedbackService. m may be nil when no
// delivery credential is configured; Submit then reports
// domain.ErrDeliveryUnavailable after validating the input.
func NewFeedbackService(m mailer.Mailer, cfg FeedbackConfig, logger *slog.Logger) *FeedbackService {
	if cfg.From == "" {
		cfg.From = DefaultFeedbackFrom
	}
	if cfg.To == "" {
		cfg.To = DefaultFeedbackTo
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedbackService{mailer: m, from: cfg.From, to: cfg.To, log: logger}
}

// Submit trims and validates sub, then sends it to the feedback inbox.
// Validation failures wrap domain.ErrValidation and happen before any
// delivery attempt.
func (s *FeedbackService) Submit(ctx context.Context, sub domain.FeedbackSubmission) (domain.DeliveryResult, error) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Message = strings.TrimSpace(sub.Message)

	if err := validateFeedback(sub); err != nil {
		return domain.DeliveryResult{}, err
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}

	if s.mailer == nil {
		s.log.WarnContext(ctx, "feedback received without a mailer",
			"submission_id", sub.ID,
			"name", sub.Name,
			"email", sub.Email,
			"message", sub.Message,
		)
		return domain.DeliveryResult{}, fmt.Errorf("service.FeedbackService.Submit: %w", domain.ErrDeliveryUnavailable)
	}

	id, err := s.mailer.Send(ctx, s.compose(sub))
	if err != nil {
		s.log.ErrorContext(ctx, "feedback delivery failed", "submission_id", sub.ID, "error", err)
		if !errors.Is(err, domain.ErrDeliveryFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrDeliveryFailed, err)
		}
		return domain.DeliveryResult{}, fmt.Errorf("service.FeedbackService.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "feedback delivered", "submission_id", sub.ID, "message_id", id)
	return domain.DeliveryResult{Delivered: true, ID: id}, nil
}

func validateFeedback(sub domain.FeedbackSubmission) error {
	if sub.Email == "" {
		return fmt.Errorf("%w: Email is required.", domain.ErrValidation)
	}
	if !emailPattern.MatchString(sub.Email) {
		return fmt.Errorf("%w: Invalid email format.", domain.ErrValidation)
	}
	if utf8.RuneCountInString(sub.Message) < minMessageLength {
		return fmt.Errorf("%w: Message must be at least 10 characters.", domain.ErrValidation)
	}
	return nil
}

func (s *FeedbackService) compose(sub domain.FeedbackSubmission) mailer.Message {
	return mailer.Message{
		From:    s.from,
		To:      []string{s.to},
		Subject: FeedbackSubject(sub.Name),
		HTML:    FeedbackHTML(sub),
		Text:    FeedbackText(sub),
		ReplyTo: FeedbackReplyTo(sub.Name, sub.Email),
	}
}

// FeedbackSubject returns the email subject, naming the sender when known.
func FeedbackSubject(name string) string {
	if name == "" {
		return feedbackSubject
	}
	return feedbackSubject + " — " + name
}

// FeedbackReplyTo returns "Name <email>" when a name is given, else the bare address.
func FeedbackReplyTo(name, email string) string {
	if name == "" {
		return email
	}
	return name + " <" + email + ">"
}

// FeedbackHTML renders the HTML body. Every user-supplied value is escaped.
func FeedbackHTML(sub domain.FeedbackSubmission) string {
	name := sub.Name
	if name == "" {
		name = "(not provided)"
	}
	return `<div style="font-family:ui-sans-serif,system-ui,Segoe UI,Roboto,Arial;line-height:1.5">` +
		`<h2 style="margin:0 0 12px">New feedback received</h2>` +
		`<p style="margin:0 0 6px"><strong>Name:</strong> ` + htmlEscaper.Replace(name) + `</p>` +
		`<p style="margin:0 0 6px"><strong>Email:</strong> ` + htmlEscaper.Replace(sub.Email) + `</p>` +
		`<p style="margin:12px 0 6px"><strong>Message:</strong></p>` +
		`<pre style="white-space:pre-wrap;background:#f6f7f9;border:1px solid #e5e7eb;border-radius:12px;padding:12px;margin:0">` +
		htmlEscaper.Replace(sub.Message) + `</pre>` +
		`<p style="color:#6b7280;font-size:12px;margin-top:12px">Sent from FindAMechanic feedback form</p>` +
		`</div>`
}

// FeedbackText renders the plain-text alternative body.
func FeedbackText(sub domain.FeedbackSubmission) string {
	name := sub.Name
	if name == "" {
		name = "(not provided)"
	}
	return "New feedback received\n\n" +
		"Name: " + name + "\n" +
		"Email: " + sub.Email + "\n" +
		"Reference: " + sub.ID.String() + "\n\n" +
		sub.Message + "\n"
}
