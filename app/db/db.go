package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	Path     string
}

// Connect opens the configured store. The mysql DSN carries dial/read/write
// timeouts so no single store call can hang a request forever, and
// clientFoundRows so RowsAffected counts matched rows, not changed rows:
// a no-op update against an existing row must not look like a miss.
func Connect(cfg Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}
	switch cfg.Driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.Path), gcfg)
	case "mysql", "":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=5s&readTimeout=5s&writeTimeout=5s&clientFoundRows=true",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), gcfg)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
}
