package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/emberoak/atelier-backend/pkg/metrics"
)

// Metrics observes request counts and latency per chi route pattern.
func Metrics(httpMetrics *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if httpMetrics == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			httpMetrics.IncInFlight()
			defer httpMetrics.DecInFlight()

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			httpMetrics.ObserveRequest(
				r.Method,
				routePattern(r),
				strconv.Itoa(rec.status),
				time.Since(start),
			)
		})
	}
}
