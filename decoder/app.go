package decoder

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"

	"github.com/alovak/vinflow-playground/internal/middleware"
	"github.com/alovak/vinflow-playground/internal/vin"
	"github.com/alovak/vinflow-playground/internal/vpic"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// App is the main application, it contains all the components of the
// decoder service and is responsible for starting and stopping them.
type App struct {
	srv    *http.Server
	wg     *sync.WaitGroup
	Addr   string
	logger *slog.Logger
	config *Config
}

func NewApp(logger *slog.Logger, config *Config) *App {
	logger = logger.With(slog.String("app", "decoder"))

	if config == nil {
		config = DefaultConfig()
	}

	return &App{
		wg:     &sync.WaitGroup{},
		logger: logger,
		config: config,
	}
}

func (a *App) Start() error {
	a.logger.Info("starting app...")

	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(a.logger))

	// Extended lookups go out to vPIC unless disabled via config or env.
	var source vin.ExtendedSource
	enabled := a.config.ExtendedEnabled && getenv("EXTENDED_ENABLED", "true") != "false"
	if enabled {
		base := getenv("VPIC_BASE_URL", a.config.VPICBaseURL)
		source = vpic.New(base, &http.Client{Timeout: a.config.VPICTimeout})
	}

	svc := NewService(source)

	api := NewAPI(svc)
	api.AppendRoutes(router)

	router.Get("/-/live", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	l, err := net.Listen("tcp", a.config.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening tcp port: %w", err)
	}

	a.Addr = l.Addr().String()

	a.srv = &http.Server{
		Handler: router,
	}

	a.wg.Add(1)
	go func() {
		a.logger.Info("http server started", slog.String("addr", a.Addr))

		if err := a.srv.Serve(l); err != nil {
			if err != http.ErrServerClosed {
				a.logger.Error("starting http server", "err", err)
			}

			a.logger.Info("http server stopped")
		}

		a.wg.Done()
	}()

	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func (a *App) Shutdown() {
	a.logger.Info("shutting down app...")

	a.srv.Shutdown(context.Background())

	a.wg.Wait()

	a.logger.Info("app stopped")
}
