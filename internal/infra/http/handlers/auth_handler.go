package handlers

import (
	"net/http"

	"github.com/rafaelmtz/leadtracker/internal/usecase"
)

type AuthHandler struct {
	LoginUC *usecase.LoginUseCase
}

func NewAuthHandler(loginUC *usecase.LoginUseCase) *AuthHandler {
	return &AuthHandler{LoginUC: loginUC}
}

// HandleLogin implements POST /auth/login. The body is form-encoded with
// the email in the "username" field, OAuth2 password-flow style.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form body"})
		return
	}

	input := usecase.LoginInput{
		Email:    r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	output, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
