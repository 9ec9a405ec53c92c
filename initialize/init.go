package initialize

import (
	"fmt"
	"net/http"
	"time"

	"reembolso-api/app/cache"
	"reembolso-api/app/controllers"
	"reembolso-api/app/db"
	"reembolso-api/app/middleware"
	"reembolso-api/app/models"
	"reembolso-api/app/repo"
	"reembolso-api/app/services"
	"reembolso-api/config"
	"reembolso-api/global"
	"reembolso-api/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Ready    *middleware.Readiness
	Users    *services.UserService
	Expenses *services.ExpenseService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	// Connect DB behind the readiness gate
	ready := middleware.NewReadiness()
	ready.Set(middleware.StateConnecting)
	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
		Path:     cfg.DB.Path,
	})
	if err != nil {
		ready.Set(middleware.StateFailed)
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(&models.User{}, &models.Expense{}); err != nil {
		ready.Set(middleware.StateFailed)
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Optional pending-list cache
	var pending *cache.PendingCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Pass})
		global.Rdb = rdb
		pending = cache.NewPendingCache(rdb, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	expenseRepo := repo.NewExpenseRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	expenseSvc := services.NewExpenseService(expenseRepo, pending)

	// Controllers
	healthCtrl := controllers.NewHealthController(ready, cfg.HTTP.Port)
	userCtrl := controllers.NewUserController(userSvc)
	authCtrl := controllers.NewAuthController(userSvc)
	expenseCtrl := controllers.NewExpenseController(expenseSvc)
	receiptCtrl := controllers.NewReceiptController(expenseSvc)

	// Router with middleware chain
	h := router.NewRouter(healthCtrl, userCtrl, authCtrl, expenseCtrl, receiptCtrl)
	h = ready.Gate(h)
	h = middleware.Logging(h)
	h = middleware.CORS(h)

	ready.Set(middleware.StateReady)
	return &App{Cfg: cfg, DB: gdb, Router: h, Ready: ready, Users: userSvc, Expenses: expenseSvc}, nil
}
