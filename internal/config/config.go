package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Поддерживаемые драйверы БД
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config содержит настройки приложения
type Config struct {
	Server        ServerConfig
	Log           LogConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	Elasticsearch ElasticsearchConfig
	Health        HealthConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level string
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	SQLitePath      string
	ConnectAttempts int
}

// DSN возвращает строку подключения для выбранного драйвера
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath + "?_foreign_keys=on&_busy_timeout=5000"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Label возвращает человекочитаемое имя СУБД
func (c *DatabaseConfig) Label() string {
	if c.Driver == DriverSQLite {
		return "SQLite"
	}
	return "PostgreSQL"
}

// RedisConfig - настройки подключения к кэшу
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr возвращает адрес в формате host:port
func (c *RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// ElasticsearchConfig - настройки подключения к поисковому индексу
type ElasticsearchConfig struct {
	Scheme string
	Host   string
	Port   string
}

// URL возвращает адрес узла Elasticsearch
func (c *ElasticsearchConfig) URL() string {
	return fmt.Sprintf("%s://%s:%s", c.Scheme, c.Host, c.Port)
}

// HealthConfig - настройки проверок зависимостей при старте
type HealthConfig struct {
	ProbeTimeout time.Duration
}

// Load загружает конфигурацию из переменных окружения.
// Файл .env, если он есть, подмешивается в окружение, не перекрывая уже заданные переменные.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	attempts, err := getEnvInt("DB_CONNECT_ATTEMPTS", 30)
	if err != nil {
		return nil, err
	}
	probeTimeout, err := getEnvDuration("HEALTH_PROBE_TIMEOUT", 3*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverPostgres),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "orglifecycle"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "orglifecycle.db"),
			ConnectAttempts: attempts,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Elasticsearch: ElasticsearchConfig{
			Scheme: getEnv("ELASTICSEARCH_SCHEME", "http"),
			Host:   getEnv("ELASTICSEARCH_HOST", "localhost"),
			Port:   getEnv("ELASTICSEARCH_PORT", "9200"),
		},
		Health: HealthConfig{
			ProbeTimeout: probeTimeout,
		},
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	if cfg.Database.ConnectAttempts < 1 {
		return nil, fmt.Errorf("DB_CONNECT_ATTEMPTS must be positive, got %d", cfg.Database.ConnectAttempts)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
