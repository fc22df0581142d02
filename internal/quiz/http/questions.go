package http

import (
	"net/http"

	"github.com/Cau1809/quiz-programming/internal/quiz/domain"
	"github.com/Cau1809/quiz-programming/internal/quiz/service"
	"github.com/Cau1809/quiz-programming/pkg/httpx"
	"github.com/Cau1809/quiz-programming/pkg/slogx"
)

// QuestionsHandler serves GET /quiz/questions. Sits behind the authn
// middleware; only logged-in users can pull the question list.
type QuestionsHandler struct {
	QuizService *service.QuizService
}

func (h *QuestionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	questions, err := h.QuizService.Questions(r.Context())
	if err != nil {
		l.Error("list questions failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "server_error",
			Message: "An internal error occurred",
		})
		return
	}

	if questions == nil {
		questions = []domain.Question{} // empty table renders as [], not null
	}
	httpx.WriteJSON(w, http.StatusOK, questions)
}
