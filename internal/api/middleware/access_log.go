package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// AccessLog middleware логирует каждый запрос с его идентификатором
// Ставится после RequestID, чтобы идентификатор уже был в контексте
func AccessLog(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			id, _ := GetRequestID(r.Context())
			logger.Info("%s %s - %d, request_id=%s", r.Method, r.URL.Path, rec.status, id)
		})
	}
}
