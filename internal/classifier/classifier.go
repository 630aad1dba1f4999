// Package classifier turns a free-text vehicle issue into a validated
// domain.IssueParse using a generative-text service.
//
// The remote service is constrained with a strict output schema, but its reply
// is never trusted: every reply is parsed and sanitized against the closed tag
// vocabularies before it leaves this package.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
)

// DefaultTimeout bounds the single outbound call when none is configured.
const DefaultTimeout = 30 * time.Second

const systemPrompt = "You are an auto repair routing assistant. Return ONLY JSON that matches the schema. " +
	"Choose serviceTags and specialtyTags ONLY from the enums in the schema. " +
	"If unsafe (brake failure, overheating, smoke, fuel smell), set urgency=high and drivable=false."

// ErrNoGenerator marks the domain.ErrClassifierUnavailable returned when no
// credential is configured, as opposed to a failed call.
var ErrNoGenerator = errors.New("no generative-text credential configured")

// Request is one call to a generative-text service.
type Request struct {
	System string
	User   string
	Schema Schema
}

// Generator is the generative-text collaborator. Implementations send exactly
// one request and return the model's raw text reply.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Classifier classifies issues with a Generator.
// A Classifier with a nil Generator reports domain.ErrClassifierUnavailable.
type Classifier struct {
	gen     Generator
	timeout time.Duration
	log     *slog.Logger
}

// New constructs a Classifier. gen may be nil when no credential is configured.
// A non-positive timeout falls back to DefaultTimeout; a nil logger to slog.Default().
func New(gen Generator, timeout time.Duration, logger *slog.Logger) *Classifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{gen: gen, timeout: timeout, log: logger}
}

// Available reports whether a Generator is configured.
func (c *Classifier) Available() bool {
	return c.gen != nil
}

// Classify sends the issue to the generative-text service and returns the
// sanitized result.
//
// Returns domain.ErrValidation for blank issue text (before any call),
// domain.ErrClassifierUnavailable when no Generator is configured or the call
// fails, and a *MalformedResponseError when the reply is not a JSON object.
func (c *Classifier) Classify(ctx context.Context, issue domain.Issue) (domain.IssueParse, error) {
	if strings.TrimSpace(issue.Text) == "" {
		return domain.IssueParse{}, fmt.Errorf("%w: issueText is required", domain.ErrValidation)
	}
	if c.gen == nil {
		return domain.IssueParse{}, fmt.Errorf("classifier.Classifier.Classify: %w: %w", domain.ErrClassifierUnavailable, ErrNoGenerator)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	raw, err := c.gen.Generate(ctx, BuildRequest(issue))
	if err != nil {
		c.log.ErrorContext(ctx, "classifier request failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return domain.IssueParse{}, fmt.Errorf("classifier.Classifier.Classify: %w: %w", domain.ErrClassifierUnavailable, err)
	}

	parsed, err := ParseResponse(raw)
	if err != nil {
		var mre *MalformedResponseError
		if errors.As(err, &mre) {
			c.log.WarnContext(ctx, "classifier returned malformed output", "raw", mre.Raw, "error", mre.Err)
		}
		return domain.IssueParse{}, err
	}

	c.log.DebugContext(ctx, "issue classified",
		"urgency", parsed.Urgency,
		"service_tags", parsed.ServiceTags,
		"specialty_tags", parsed.SpecialtyTags,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return parsed, nil
}

// BuildRequest assembles the system instruction, the user message and the
// issue_parse schema for one issue.
func BuildRequest(issue domain.Issue) Request {
	return Request{
		System: systemPrompt,
		User:   fmt.Sprintf("Vehicle: %s %s %s\nIssue: %s", issue.Year, issue.Make, issue.Model, issue.Text),
		Schema: IssueSchema(),
	}
}
