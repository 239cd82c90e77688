// Package middleware содержит HTTP middleware для приложений,
// встраивающих ядро нормализации в собственный сервер. Сервер и
// маршрутизация остаются на стороне вызывающего.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/InQaaaaGit/attest_api.git/internal/metrics"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger создает middleware для логирования запросов и ответов.
// Каждому запросу присваивается идентификатор, который возвращается
// клиенту в заголовке X-Request-Id.
func RequestLogger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Начало запроса
			start := time.Now()
			requestID := uuid.New().String()

			// Создаем обертку для ResponseWriter, чтобы отслеживать статус и размер
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Header().Set("X-Request-Id", requestID)

			// Продолжаем обработку запроса
			next.ServeHTTP(ww, r)

			// После обработки запроса
			latency := time.Since(start)
			status := ww.Status()

			metrics.RequestsTotal.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()

			logger.Info("Request processed",
				zap.String("request_id", requestID),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
				zap.Duration("latency", latency),
				zap.Int("status", status),
				zap.Int("size", ww.BytesWritten()),
			)
		})
	}
}
