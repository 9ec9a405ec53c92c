package main

import (
	"flag"

	"reembolso-api/global"
	"reembolso-api/initialize"
	"reembolso-api/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		// no store, no service
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	if err := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("listen failed")
	}
	global.Logger.Info().Str("host", app.Cfg.HTTP.Host).Int("port", app.Cfg.HTTP.Port).Msg("server listening")

	select {}
}
