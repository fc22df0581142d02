package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Cau1809/quiz-programming/internal/quiz/service"
	"github.com/Cau1809/quiz-programming/pkg/httpx"
	"github.com/Cau1809/quiz-programming/pkg/slogx"
)

// LoginHandler serves POST /auth/login.
//
// Unknown-user and wrong-password responses are deliberately distinct; the
// frontend renders different messages for them. That allows username
// enumeration, which the product accepts for now.
type LoginHandler struct {
	AuthService *service.AuthService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "invalid_request",
			Message: "Request body must be valid JSON",
		})
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		httpx.NoCache(w)
		httpx.WriteJSON(w, http.StatusOK, tokenResponse{Token: token})
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "invalid_input",
			Message: "Username and password are required",
		})
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "user_not_found",
			Message: "User not found",
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "invalid_credentials",
			Message: "Incorrect password",
		})
	default:
		l.Error("login failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "server_error",
			Message: "An internal error occurred",
		})
	}
}
