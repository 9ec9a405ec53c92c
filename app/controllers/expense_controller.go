package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"reembolso-api/app/dto"
	"reembolso-api/app/models"
	"reembolso-api/app/services"
)

type ExpenseController struct{ Expenses *services.ExpenseService }

func NewExpenseController(expenses *services.ExpenseService) *ExpenseController {
	return &ExpenseController{Expenses: expenses}
}

func (c *ExpenseController) writeExpenseErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "ID de despesa inválido.")
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Despesa não encontrada.")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (c *ExpenseController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExpenseRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	e, err := c.Expenses.Create(r.Context(), services.CreateExpenseInput{
		OwnerID:     req.UserID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, dto.CreatedResponse{InsertedID: e.UUID, Message: "Despesa registrada com sucesso"})
}

func (c *ExpenseController) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.Expenses.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []models.Expense{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (c *ExpenseController) Get(w http.ResponseWriter, r *http.Request) {
	e, err := c.Expenses.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		c.writeExpenseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (c *ExpenseController) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if err := c.Expenses.Update(r.Context(), r.PathValue("id"), body); err != nil {
		c.writeExpenseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Despesa atualizada com sucesso"})
}

func (c *ExpenseController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Expenses.Delete(r.Context(), r.PathValue("id")); err != nil {
		c.writeExpenseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Despesa excluída com sucesso"})
}

func (c *ExpenseController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusUpdateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	err := c.Expenses.TransitionStatus(r.Context(), r.PathValue("id"), req.Status, req.ValorAprovado, req.RejectionReason, req.ApprovalNotes)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, "Status inválido.")
			return
		}
		c.writeExpenseErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Status atualizado com sucesso"})
}

func (c *ExpenseController) ListPending(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	userID := r.URL.Query().Get("userId")
	list, err := c.Expenses.ListPending(r.Context(), role, userID)
	if err != nil {
		if errors.Is(err, services.ErrMissingRole) {
			writeError(w, http.StatusBadRequest, "Role é obrigatória.")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []models.Expense{}
	}
	writeJSON(w, http.StatusOK, list)
}
