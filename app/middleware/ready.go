package middleware

import (
	"net/http"
	"sync/atomic"
)

// Store readiness states. Handlers must never run against an unready store,
// so the gate answers 503 until the connection sequence lands on StateReady.
type StoreState int32

const (
	StateUninitialized StoreState = iota
	StateConnecting
	StateReady
	StateFailed
)

type Readiness struct{ state atomic.Int32 }

func NewReadiness() *Readiness { return &Readiness{} }

func (r *Readiness) Set(s StoreState) { r.state.Store(int32(s)) }

func (r *Readiness) State() StoreState { return StoreState(r.state.Load()) }

func (r *Readiness) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if r.State() != StateReady {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"Serviço indisponível: conexão com o banco de dados não estabelecida."}`))
			return
		}
		next.ServeHTTP(w, req)
	})
}
