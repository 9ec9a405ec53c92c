package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"reembolso-api/app/services"
)

type ReceiptController struct{ Expenses *services.ExpenseService }

func NewReceiptController(expenses *services.ExpenseService) *ReceiptController {
	return &ReceiptController{Expenses: expenses}
}

func (c *ReceiptController) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("receipt")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Nenhum arquivo enviado.")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	err = c.Expenses.AttachReceipt(r.Context(), r.PathValue("id"), data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoFile):
			writeError(w, http.StatusBadRequest, "Nenhum arquivo enviado.")
		case errors.Is(err, services.ErrInvalidID):
			writeError(w, http.StatusBadRequest, "ID de despesa inválido.")
		case errors.Is(err, services.ErrNotFound):
			writeError(w, http.StatusNotFound, "Despesa não encontrada.")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Comprovante anexado com sucesso"})
}

func (c *ReceiptController) Download(w http.ResponseWriter, r *http.Request) {
	e, err := c.Expenses.GetReceipt(r.Context(), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			writeError(w, http.StatusBadRequest, "ID de despesa inválido.")
		case errors.Is(err, services.ErrNotFound):
			writeError(w, http.StatusNotFound, "Comprovante não encontrado.")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	ct := e.ReceiptType
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	if e.ReceiptName != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", e.ReceiptName))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(e.ReceiptData)
}
