// Package health проверяет внешние зависимости один раз при старте и хранит неизменяемый результат.
package health

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Pinger - зависимость, доступность которой можно проверить
type Pinger interface {
	Ping(ctx context.Context) error
}

// Snapshot - результат проверок на момент старта.
// Передаётся по значению, поэтому после захвата не меняется.
type Snapshot struct {
	Redis         string `json:"redis"`
	Elasticsearch string `json:"elasticsearch"`
	Database      string `json:"postgresql"`
}

// Probes описывает проверяемые зависимости
type Probes struct {
	Redis         Pinger
	Elasticsearch Pinger
	Database      Pinger
	DatabaseLabel string
	Timeout       time.Duration
}

// Capture опрашивает зависимости и возвращает снимок статусов.
// Ошибка проверки не прерывает старт, а превращается в строку статуса.
func Capture(ctx context.Context, p Probes, logger *zap.Logger) Snapshot {
	label := p.DatabaseLabel
	if label == "" {
		label = "PostgreSQL"
	}

	return Snapshot{
		Redis:         probe(ctx, "Redis", p.Redis, p.Timeout, logger),
		Elasticsearch: probe(ctx, "Elasticsearch", p.Elasticsearch, p.Timeout, logger),
		Database:      probe(ctx, label, p.Database, p.Timeout, logger),
	}
}

func probe(ctx context.Context, name string, pinger Pinger, timeout time.Duration, logger *zap.Logger) string {
	if pinger == nil {
		logger.Warn("dependency not configured", zap.String("dependency", name))
		return name + " connection failed"
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := pinger.Ping(ctx); err != nil {
		logger.Warn("dependency unavailable", zap.String("dependency", name), zap.Error(err))
		return name + " connection failed"
	}

	logger.Info("dependency available", zap.String("dependency", name))
	return name + " connection successful"
}
