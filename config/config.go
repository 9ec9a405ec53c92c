package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string
}

type Redis struct {
	Addr       string
	Pass       string
	TTLSeconds int
}

type Config struct {
	HTTP  HTTP
	DB    DB
	Redis Redis
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 3000)
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "bancoreembolso")
	v.SetDefault("db.path", "reembolso.db")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.pass", "")
	v.SetDefault("redis.ttl_seconds", 30)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
			Path:   v.GetString("db.path"),
		},
		Redis: Redis{
			Addr:       v.GetString("redis.addr"),
			Pass:       v.GetString("redis.pass"),
			TTLSeconds: v.GetInt("redis.ttl_seconds"),
		},
	}
	if cfg.Redis.TTLSeconds <= 0 {
		cfg.Redis.TTLSeconds = 30
	}
	return cfg, nil
}
