package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/org-lifecycle-api/internal/config"
	"github.com/org-lifecycle-api/internal/handler"
	"github.com/org-lifecycle-api/internal/health"
	"github.com/org-lifecycle-api/internal/logger"
	"github.com/org-lifecycle-api/internal/persistence"
	"github.com/org-lifecycle-api/internal/repository"
	"github.com/org-lifecycle-api/internal/service"
	"go.uber.org/zap"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Инициализация логгера
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		os.Stderr.WriteString("failed to init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// Подключение к БД
	db, err := persistence.Open(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := persistence.Migrate(db, cfg.Database.Driver, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Проверка зависимостей выполняется один раз, результат не меняется до перезапуска
	redisClient := persistence.NewRedis(cfg.Redis)
	defer redisClient.Close()

	probes := health.Probes{
		Redis:         redisClient,
		Database:      persistence.NewDatabase(db),
		DatabaseLabel: cfg.Database.Label(),
		Timeout:       cfg.Health.ProbeTimeout,
	}
	if es, err := persistence.NewElasticsearch(cfg.Elasticsearch); err != nil {
		log.Warn("elasticsearch client unavailable", zap.Error(err))
	} else {
		probes.Elasticsearch = es
	}
	snapshot := health.Capture(context.Background(), probes, log)

	// Инициализация репозиториев
	deptRepo := repository.NewDepartmentRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	// Инициализация сервисов
	deptService := service.NewDepartmentService(deptRepo)
	empService := service.NewEmployeeService(empRepo)

	// Инициализация хендлеров
	validate := validator.New()
	deptHandler := handler.NewDepartmentHandler(deptService, validate, log)
	empHandler := handler.NewEmployeeHandler(empService, validate, log)
	healthHandler := handler.NewHealthHandler(snapshot)

	// Настройка роутера
	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(deptHandler, empHandler, healthHandler, log)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error("could not gracefully shutdown the server", zap.Error(err))
		}
		close(done)
	}()

	log.Info("server is starting", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("could not listen on port", zap.String("port", cfg.Server.Port), zap.Error(err))
	}

	<-done
	log.Info("server stopped")
}
