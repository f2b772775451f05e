package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rbaiju151/CurrenseeHW3/internal/application/service"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/api"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/config"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/handler"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/logger"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/middleware"
)

func main() {
	cfg := config.Load()

	log := logger.NewJSONLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel))
	logger.SetDefaultLogger(log)

	log.Info("Starting Currensee rate comparison service", map[string]interface{}{
		"port": cfg.Port,
	})

	// Refuse to start without a credential; every rate lookup would fail.
	if cfg.CurrencyAPIKey == "" {
		log.Fatal("CURRENCYAPI_KEY is not set", map[string]interface{}{
			"hint": "set it in the environment or in a .env file",
		})
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	// Initialize provider clients
	countries := api.NewRESTCountriesClient(cfg.RESTCountriesBaseURL, httpClient, cfg.CacheTTL, log)
	rates := api.NewCurrencyAPIClient(cfg.CurrencyAPIBaseURL, cfg.CurrencyAPIKey, httpClient, cfg.CacheTTL, log)

	// Initialize services
	snapshotService := service.NewSnapshotService(countries, rates, log)
	comparisonService := service.NewComparisonService(countries, rates, log)

	// Initialize handlers
	directoryHandler := handler.NewDirectoryHandler(countries, log)
	snapshotHandler := handler.NewSnapshotHandler(snapshotService, log)
	comparisonHandler := handler.NewComparisonHandler(comparisonService, log)

	// Setup router
	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestLogging(log))
	directoryHandler.RegisterRoutes(router)
	snapshotHandler.RegisterRoutes(router)
	comparisonHandler.RegisterRoutes(router)

	// Start server
	log.Info("Server listening", map[string]interface{}{
		"addr": ":" + cfg.Port,
	})
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal("Server stopped", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
