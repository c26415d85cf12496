package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware turns a handler panic into a 500 envelope unless the
// handler already started its response.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			rw, tracked := w.(*responseWriter)
			started := tracked && rw.wroteHeader()
			log.Printf("panic recovered method=%s path=%s request_id=%s response_started=%t error=%v stack=%s",
				r.Method, r.URL.Path, RequestIDFrom(r), started, rec, debug.Stack())

			if !started {
				JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
