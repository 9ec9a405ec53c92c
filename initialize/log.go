package initialize

import (
	"os"
	"time"

	"reembolso-api/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// console writer to stdout; full timestamps so request logs line up
	// with the store's createdAt values
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	global.Logger = log.Output(cw)
}
