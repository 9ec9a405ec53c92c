package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"reembolso-api/app/dto"
	"reembolso-api/app/services"
)

type UserController struct{ Users *services.UserService }

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email e senha são obrigatórios.")
		return
	}
	u, err := c.Users.Register(r.Context(), req.Email, req.Name, req.Role, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "Email já cadastrado.")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, dto.CreatedResponse{InsertedID: u.UUID, Message: "Usuário criado com sucesso"})
}

func (c *UserController) GetByID(w http.ResponseWriter, r *http.Request) {
	u, err := c.Users.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			writeError(w, http.StatusBadRequest, "ID de usuário inválido.")
		case errors.Is(err, services.ErrNotFound):
			writeError(w, http.StatusNotFound, "Usuário não encontrado.")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, u)
}
