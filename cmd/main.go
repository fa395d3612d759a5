package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/rs/cors"

	"regionsBack/internal/config"
)

func main() {
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.LoadConfig()
	if err != nil {
		errorLog.Fatal(err)
	}

	if err := run(context.Background(), cfg, infoLog, errorLog); err != nil {
		errorLog.Fatal(err)
	}
}

// run binds the listener, announces it and serves until ctx is done.
// A bind failure is returned before anything is announced.
func run(ctx context.Context, cfg config.Config, infoLog, errorLog *log.Logger) error {
	app := initializeApp(cfg, errorLog, infoLog)
	srv := newServer(cfg, app)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	infoLog.Printf("Listening on http://%s", ln.Addr())

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newServer(cfg config.Config, app *application) *http.Server {
	// Preflights pass through so they reach the router and get 404 like any
	// other OPTIONS request.
	c := cors.New(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet},
		OptionsPassthrough: true,
	})

	return &http.Server{
		Addr:         cfg.Server.Address,
		ErrorLog:     app.errorLog,
		Handler:      c.Handler(app.routes()),
		IdleTimeout:  cfg.Server.IdleTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
