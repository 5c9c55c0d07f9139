package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"dispatch/internal/generated/dto"
)

const codeShuttingDown = "SHUTTING_DOWN"

// Middleware отклоняет новые запросы, когда сервер уже гасит ongoingCtx.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Content-Type", "application/json")
					w.Header().Set("Connection", "close")
					w.WriteHeader(http.StatusServiceUnavailable)
					_ = json.NewEncoder(w).Encode(dto.Error{
						Code:    codeShuttingDown,
						Message: "service is shutting down",
					})
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
