package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Cau1809/quiz-programming/internal/quiz/service"
	"github.com/Cau1809/quiz-programming/pkg/httpx"
	"github.com/Cau1809/quiz-programming/pkg/slogx"
)

// SubmitHandler serves POST /quiz/submit. The account is taken from the
// verified token, not from the request body; a body user_id naming someone
// else is rejected.
type SubmitHandler struct {
	QuizService *service.QuizService
}

func (h *SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "invalid_request",
			Message: "Request body must be valid JSON",
		})
		return
	}

	if req.UserID == "" || req.Score == nil {
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "invalid_input",
			Message: "user_id and score are required",
		})
		return
	}

	userID := httpx.UserIDFromContext(r.Context())
	if req.UserID != userID {
		httpx.WriteJSON(w, http.StatusForbidden, errorResponse{
			Error:   "forbidden",
			Message: "Cannot submit a result for another user",
		})
		return
	}

	err := h.QuizService.SubmitResult(r.Context(), userID, *req.Score)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, messageResponse{
			Message: "Result saved successfully",
		})
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "invalid_input",
			Message: "user_id and score are required",
		})
	case errors.Is(err, service.ErrScoreOutOfRange):
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "score_out_of_range",
			Message: "Score must be between 0 and the number of questions",
		})
	default:
		l.Error("submit result failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "server_error",
			Message: "An internal error occurred",
		})
	}
}
