package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mortalidad.saluddatos.org/internal/app"
	"mortalidad.saluddatos.org/internal/appconf"
	"mortalidad.saluddatos.org/internal/logging"
	"mortalidad.saluddatos.org/internal/restapi"
	"mortalidad.saluddatos.org/internal/vitals"
	"mortalidad.saluddatos.org/internal/webui"
)

func main() {
	var (
		port       int
		envFlag    string
		apiKeysRaw string
		dataDir    string
		dbPath     string
		rateLimit  int
		watch      bool
		verbose    bool
	)

	flag.IntVar(&port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysRaw, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.StringVar(&dataDir, "data-dir", "./data", "Directory holding the DANE CSV exports")
	flag.StringVar(&dbPath, "db-path", "vitals.db", "Path to the SQLite database file")
	flag.IntVar(&rateLimit, "rate-limit", 100, "Maximum requests per second per API key")
	flag.BoolVar(&watch, "watch", false, "Reload the dataset when files under data-dir change")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, logLevel)
	slog.SetDefault(logger)

	var apiKeys []string
	if apiKeysRaw != "" {
		apiKeys = strings.Split(apiKeysRaw, ",")
		for i := range apiKeys {
			apiKeys[i] = strings.TrimSpace(apiKeys[i])
		}
	}

	env := appconf.EnvFlagToEnvironment(envFlag)

	vitalsConfig := vitals.Config{
		DataDir:      dataDir,
		DBPath:       dbPath,
		Env:          env,
		Verbose:      verbose,
		WatchEnabled: watch,
		Logger:       logger,
	}

	manager, err := vitals.InitManager(vitalsConfig)
	if err != nil {
		logging.LogError(logger, "failed to initialize dataset manager", err)
		os.Exit(1)
	}

	manager.LogStatistics(logger)

	application := &app.Application{
		Config: appconf.Config{
			Port:      port,
			Env:       env,
			ApiKeys:   apiKeys,
			RateLimit: rateLimit,
			Verbose:   verbose,
		},
		VitalsConfig: vitalsConfig,
		Logger:       logger,
		Manager:      manager,
	}

	api := restapi.NewRestAPI(application)
	ui := webui.NewWebUI(application)

	router := httprouter.New()
	api.SetRoutes(router)
	ui.SetWebUIRoutes(router)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      api.Handler(router),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", env.String())

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logging.LogError(logger, "server failed", err)
		api.Shutdown()
		manager.Shutdown()
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logging.LogError(logger, "graceful shutdown failed", err)
	}

	api.Shutdown()
	manager.Shutdown()
	logger.Info("server stopped")
}
