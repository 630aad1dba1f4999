package handler

import (
	"errors"
	"net/http"

	"github.com/igoratamanchuk/findamechanic/internal/classifier"
	"github.com/igoratamanchuk/findamechanic/internal/domain"
)

type rankedShopResponse struct {
	domain.Shop
	MatchScore int `json:"matchScore"`
}

type searchResponse struct {
	Parsed  domain.IssueParse    `json:"parsed"`
	Results []rankedShopResponse `json:"results"`
}

type malformedBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Raw     string `json:"raw"`
}

// PostAIShopSearch handles POST /api/ai-shop-search.
// Body: {"issueText": "...", "make": "...", "model": "...", "year": "..."}.
func (s *Server) PostAIShopSearch(w http.ResponseWriter, r *http.Request) {
	body, err := decodeObject(r)
	if err != nil {
		writeDecodeError(w)
		return
	}

	res, err := s.search.Search(r.Context(), domain.Issue{
		Text:  body["issueText"],
		Make:  body["make"],
		Model: body["model"],
		Year:  body["year"],
	})
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}

	results := make([]rankedShopResponse, len(res.Results))
	for i, rs := range res.Results {
		results[i] = rankedShopResponse{Shop: rs.Shop, MatchScore: rs.MatchScore}
	}
	writeJSON(w, http.StatusOK, searchResponse{Parsed: res.Parsed, Results: results})
}

func (s *Server) writeSearchError(w http.ResponseWriter, r *http.Request, err error) {
	var malformed *classifier.MalformedResponseError
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, unwrapMessage(err))
	case errors.Is(err, classifier.ErrNoGenerator):
		writeError(w, http.StatusServiceUnavailable, "AI client not available")
	case errors.As(err, &malformed):
		writeJSON(w, http.StatusBadGateway, malformedBody{Error: "AI returned invalid JSON", Details: malformed.Raw, Raw: malformed.Raw})
	case errors.Is(err, domain.ErrClassifierUnavailable):
		s.log.ErrorContext(r.Context(), "ai shop search failed", "error", err)
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "AI search failed", Details: err.Error()})
	default:
		s.log.ErrorContext(r.Context(), "ai shop search failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "AI search failed", Details: err.Error()})
	}
}
