package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-OrderService/internal/api/handlers/admin_upsert_order"
	"github.com/m04kA/SMC-OrderService/internal/api/handlers/health"
	"github.com/m04kA/SMC-OrderService/internal/api/handlers/me_orders"
	"github.com/m04kA/SMC-OrderService/internal/api/middleware"
	"github.com/m04kA/SMC-OrderService/internal/config"
	orderstore "github.com/m04kA/SMC-OrderService/internal/infra/storage/order"
	"github.com/m04kA/SMC-OrderService/internal/infra/storage/schema"
	userstore "github.com/m04kA/SMC-OrderService/internal/infra/storage/user"
	ordersSvc "github.com/m04kA/SMC-OrderService/internal/service/orders"
	telegramSvc "github.com/m04kA/SMC-OrderService/internal/service/telegram"
	usersSvc "github.com/m04kA/SMC-OrderService/internal/service/users"
	"github.com/m04kA/SMC-OrderService/internal/service/webappauth"
	"github.com/m04kA/SMC-OrderService/pkg/logger"
	"github.com/m04kA/SMC-OrderService/pkg/metrics"
)

func main() {
	// Подхватываем .env для локального запуска (в проде переменные задаёт окружение)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-OrderService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database")

	// Схема идемпотентна - применяем на каждом старте
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := schema.Apply(startupCtx, db); err != nil {
		cancelStartup()
		log.Fatal("Failed to apply database schema: %v", err)
	}
	cancelStartup()
	log.Info("Database schema applied")

	// Инициализируем repositories
	orderRepo := orderstore.NewRepository(db)
	userRepo := userstore.NewRepository(db)

	// Инициализируем сервисный слой
	verifier := webappauth.NewService(cfg.Telegram.BotToken)
	orderService := ordersSvc.NewService(orderRepo)
	userService := usersSvc.NewService(userRepo)

	// Уведомления владельцам опциональны - без них сервис полностью работоспособен
	var notifier admin_upsert_order.Notifier
	if cfg.Telegram.NotifyOwners {
		bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
		if err != nil {
			log.Fatal("Failed to initialize Telegram Bot API: %v", err)
		}
		notifier = telegramSvc.NewService(bot)
		log.Info("Telegram Bot API initialized (@%s)", bot.Self.UserName)
	}

	// Инициализируем handlers
	healthHandler := health.NewHandler(db)
	meOrdersHandler := me_orders.NewHandler(verifier, orderService, userService, log)
	adminUpsertHandler := admin_upsert_order.NewHandler(orderService, notifier, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// CORS: WebApp ходит к API из браузера со своего origin
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins(cfg.CORS.AllowedOrigins),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", me_orders.InitDataHeader, middleware.AdminTokenHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})
	r.Use(corsHandler.Handler)

	// Публичные endpoints
	r.HandleFunc("/health", healthHandler.Handle).Methods(http.MethodGet)

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Endpoints пользователя (авторизация через Telegram WebApp initData)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/me/orders", meOrdersHandler.Handle).Methods(http.MethodGet)

	// Админские endpoints (статический токен)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken))
	admin.HandleFunc("/order/upsert", adminUpsertHandler.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем HTTP сервер
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown HTTP сервера
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// allowedOrigins возвращает allow-list для CORS
// Пустой список в конфиге означает "разрешить все"
func allowedOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
