package main

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"regionsBack/internal/handlers"
)

// secureHeaders marks every response, including 404s and plaintext errors,
// as not sniffable and not frameable.
func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

// recoverPanic logs the panic with its stack and answers a plain 500.
func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				w.Header().Set("Connection", "close")
				app.errorLog.Output(2, fmt.Sprintf("panic serving %s: %v\n%s", r.URL.Path, rec, debug.Stack()))
				handlers.ServerError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
