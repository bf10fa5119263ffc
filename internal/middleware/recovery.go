package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/recruitme/recruitme-go/internal/logger"
	"github.com/recruitme/recruitme-go/internal/model"
)

// Recoverer turns a panic in any later handler into a 500 JSON response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.FromContext(r.Context()).Error("panic recovered",
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			writeJSONError(w, http.StatusInternalServerError, model.CodeInternal, "internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
