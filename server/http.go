package server

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"reembolso-api/global"
)

// StartHTTPServer binds the listener synchronously so a bad address or a
// taken port fails startup, then serves in the background.
func StartHTTPServer(host string, port int, handler http.Handler) error {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			global.Logger.Error().Err(err).Msg("http server stopped")
		}
	}()
	return nil
}
