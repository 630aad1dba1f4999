// Package service contains the business logic for the FindAMechanic API.
// Services validate inputs, enforce business rules and orchestrate the catalog,
// the issue classifier and the mailer. They depend on interfaces, not
// implementations, so every collaborator can be replaced in tests.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
	"github.com/igoratamanchuk/findamechanic/internal/ranking"
	"github.com/igoratamanchuk/findamechanic/internal/repo"
)

// IssueClassifier turns a free-text issue into a validated IssueParse.
type IssueClassifier interface {
	Classify(ctx context.Context, issue domain.Issue) (domain.IssueParse, error)
}

// SearchResult is the outcome of one AI shop search.
type SearchResult struct {
	Parsed  domain.IssueParse
	Results []domain.RankedShop
}

// SearchService classifies an issue and ranks the catalog against it.
type SearchService struct {
	shops      repo.ShopRepo
	classifier IssueClassifier
	limit      int
	log        *slog.Logger
}

// NewSearchService constructs a SearchService returning at most
// ranking.DefaultLimit shops per search.
func NewSearchService(shops repo.ShopRepo, classifier IssueClassifier, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{shops: shops, classifier: classifier, limit: ranking.DefaultLimit, log: logger}
}

// Search validates the issue, classifies it and returns the top-ranked shops.
// Blank issue text is rejected with domain.ErrValidation before the
// classifier is consulted. Classifier errors are returned wrapped.
func (s *SearchService) Search(ctx context.Context, issue domain.Issue) (SearchResult, error) {
	if strings.TrimSpace(issue.Text) == "" {
		return SearchResult{}, fmt.Errorf("%w: issueText is required", domain.ErrValidation)
	}

	parsed, err := s.classifier.Classify(ctx, issue)
	if err != nil {
		return SearchResult{}, fmt.Errorf("service.SearchService.Search: %w", err)
	}

	shops, err := s.shops.List(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("service.SearchService.Search: %w", err)
	}

	results := ranking.Rank(shops, parsed, s.limit)
	s.log.InfoContext(ctx, "shop search ranked",
		"urgency", parsed.Urgency,
		"service_tags", parsed.ServiceTags,
		"specialty_tags", parsed.SpecialtyTags,
		"results", len(results),
	)
	return SearchResult{Parsed: parsed, Results: results}, nil
}
