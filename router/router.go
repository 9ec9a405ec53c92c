package router

import (
	"net/http"

	"reembolso-api/app/controllers"
)

func NewRouter(healthCtrl *controllers.HealthController, userCtrl *controllers.UserController, authCtrl *controllers.AuthController, expenseCtrl *controllers.ExpenseController, receiptCtrl *controllers.ReceiptController) http.Handler {
	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /{$}", healthCtrl.Status)

	// users
	mux.HandleFunc("POST /users", userCtrl.Create)
	mux.HandleFunc("GET /users/{id}", userCtrl.GetByID)
	mux.HandleFunc("POST /login", authCtrl.Login)

	// expenses
	mux.HandleFunc("POST /expenses", expenseCtrl.Create)
	mux.HandleFunc("GET /expenses", expenseCtrl.List)
	// literal pattern, wins over /expenses/{id}
	mux.HandleFunc("GET /expenses/pendentes", expenseCtrl.ListPending)
	mux.HandleFunc("GET /expenses/{id}", expenseCtrl.Get)
	mux.HandleFunc("PUT /expenses/{id}", expenseCtrl.Update)
	mux.HandleFunc("DELETE /expenses/{id}", expenseCtrl.Delete)
	mux.HandleFunc("PUT /expenses/{id}/status", expenseCtrl.UpdateStatus)

	// receipts
	mux.HandleFunc("POST /expenses/{id}/receipt", receiptCtrl.Upload)
	mux.HandleFunc("GET /expenses/{id}/receipt", receiptCtrl.Download)

	return mux
}
