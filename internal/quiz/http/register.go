package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Cau1809/quiz-programming/internal/quiz/service"
	"github.com/Cau1809/quiz-programming/pkg/httpx"
	"github.com/Cau1809/quiz-programming/pkg/slogx"
)

// RegisterHandler serves POST /auth/register.
type RegisterHandler struct {
	AuthService *service.AuthService
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "invalid_request",
			Message: "Request body must be valid JSON",
		})
		return
	}

	err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusCreated, messageResponse{
			Message: "User registered successfully",
		})
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "invalid_input",
			Message: "Username and password are required",
		})
	case errors.Is(err, service.ErrUserTaken):
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "username_taken",
			Message: "User already exists",
		})
	default:
		// Storage detail stays in the logs, never in the response
		l.Error("register failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "server_error",
			Message: "An internal error occurred",
		})
	}
}
