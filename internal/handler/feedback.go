package handler

import (
	"errors"
	"net/http"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
)

type feedbackResponse struct {
	OK        bool    `json:"ok"`
	Delivered bool    `json:"delivered"`
	ID        *string `json:"id,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// PostFeedback handles POST /api/feedback.
// Body: {"name": "...", "email": "...", "message": "..."}.
func (s *Server) PostFeedback(w http.ResponseWriter, r *http.Request) {
	body, err := decodeObject(r)
	if err != nil {
		writeDecodeError(w)
		return
	}

	res, err := s.feedback.Submit(r.Context(), domain.FeedbackSubmission{
		Name:    body["name"],
		Email:   body["email"],
		Message: body["message"],
	})
	switch {
	case err == nil:
		var id *string
		if res.ID != "" {
			id = &res.ID
		}
		writeJSON(w, http.StatusOK, feedbackResponse{OK: true, Delivered: res.Delivered, ID: id})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, unwrapMessage(err))
	case errors.Is(err, domain.ErrDeliveryUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, feedbackResponse{Error: "Email delivery is not configured."})
	case errors.Is(err, domain.ErrDeliveryFailed):
		writeJSON(w, http.StatusBadGateway, feedbackResponse{Error: "Email delivery failed."})
	default:
		s.log.ErrorContext(r.Context(), "feedback submission failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Failed to submit feedback.", Details: err.Error()})
	}
}
