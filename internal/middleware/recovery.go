package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/pkg"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a 500. The panic is logged with the matched
// route and request id so it can be found next to the request log line.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				log.WithFields(log.Fields{
					"route":      routeName(req),
					"method":     req.Method,
					"request_id": req.Header.Get(RequestIDHeader),
					"ip":         pkg.ReadUserIP(req),
				}).Errorf("http: panic serving %s: %v\n%s", req.URL.Path, r, debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(respWriter, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}
