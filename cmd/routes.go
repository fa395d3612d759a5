package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"regionsBack/internal/handlers"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, secureHeaders)

	mux := pat.New()

	// pat.Get would also register HEAD; only GET is served.
	mux.Add(http.MethodGet, "/uz_Uz", http.HandlerFunc(app.latinHandler.GetRegions))
	mux.Add(http.MethodGet, "/uz_Kr", http.HandlerFunc(app.cyrillicHandler.GetRegions))

	// Without NotFound pat answers 405 for known paths with another method.
	mux.NotFound = http.HandlerFunc(handlers.NotFound)

	return standardMiddleware.Then(mux)
}
