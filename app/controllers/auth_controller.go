package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"reembolso-api/app/dto"
	"reembolso-api/app/services"
)

type AuthController struct{ Users *services.UserService }

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

// Login returns the profile itself; the password hash is stripped by the
// model's JSON tags.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email e senha são obrigatórios.")
		return
	}
	u, err := c.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Credenciais inválidas.")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, u)
}
