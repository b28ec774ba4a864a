package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/apnode/apnode-go/pkg/log"
)

// logRequests reports every served request to slog and the diagnostic
// channel.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		reqID := middleware.GetReqID(r.Context())

		s.debugLog("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", elapsed,
			"request_id", reqID,
		)

		if s.config.Diagnostics != nil {
			s.config.Diagnostics.Log(log.Event{
				Timestamp: start,
				Category:  log.CategoryRequest,
				Component: log.ComponentRoutes,
				Request: &log.RequestEvent{
					Method:    r.Method,
					Path:      r.URL.Path,
					Status:    status,
					RequestID: reqID,
					Remote:    r.RemoteAddr,
					Duration:  elapsed,
				},
			})
		}
	})
}
