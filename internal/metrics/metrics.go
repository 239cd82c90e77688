// Package metrics регистрирует метрики Prometheus и предоставляет
// явный помощник для замера длительности операций.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	// OperationDuration — распределение длительности именованных операций
	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "operation_duration_seconds",
			Help:    "Duration of named operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// RequestsTotal — счётчик обработанных HTTP-запросов.
	// Путь в метки не включается, чтобы не раздувать кардинальность.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Processed HTTP requests by method and status",
		},
		[]string{"method", "status"},
	)
)

func init() {
	prometheus.MustRegister(OperationDuration, RequestsTotal)
}

// Timed выполняет единицу работы, измеряя её длительность монотонными
// часами, и сообщает результат в гистограмму и структурированный лог.
// Ошибка работы возвращается вызывающему без изменений.
func Timed(logger *zap.Logger, label string, fn func() error) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	OperationDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	logger.Debug("Operation completed",
		zap.String("operation", label),
		zap.Duration("elapsed", elapsed),
		zap.Bool("success", err == nil),
	)

	return err
}
