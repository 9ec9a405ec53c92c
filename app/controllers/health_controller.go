package controllers

import (
	"net/http"

	"reembolso-api/app/middleware"
)

type HealthController struct {
	Ready *middleware.Readiness
	Port  int
}

func NewHealthController(ready *middleware.Readiness, port int) *HealthController {
	return &HealthController{Ready: ready, Port: port}
}

func (c *HealthController) Status(w http.ResponseWriter, r *http.Request) {
	dbStatus := "Desconectado"
	if c.Ready.State() == middleware.StateReady {
		dbStatus = "Conectado"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "OK",
		"message":         "Servidor rodando e acessível.",
		"database_status": dbStatus,
		"port_used":       c.Port,
	})
}
