package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rohmon/backend/internal/config"
	"github.com/rohmon/backend/internal/db"
	"github.com/rohmon/backend/internal/handlers"
	"github.com/rohmon/backend/internal/logger"
	"github.com/rohmon/backend/internal/repositories"
	"github.com/rohmon/backend/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	cfg := config.FromEnv()

	// Database connection
	dbConfig := db.NewConfig()
	database, err := db.Connect(dbConfig)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Health(); err != nil {
		zlog.Fatal("Database health check failed", zap.Error(err))
	}
	zlog.Info("Database connection established", zap.String("driver", dbConfig.Driver))

	// Repositories
	scrapedRepo := repositories.NewScrapedPriceRepository(database)
	if err := scrapedRepo.Migrate(context.Background()); err != nil {
		zlog.Fatal("Migration failed", zap.Error(err))
	}

	// Source chain in precedence order: persisted scrape beats live quote,
	// both beat the compiled-in fallback the aggregator appends itself.
	yahoo := services.NewYahooChartSource(cfg.YahooBaseURL)
	chain := []services.QuoteSource{
		services.NewScrapedRowSource(scrapedRepo),
		services.NewMinIntervalSource(yahoo, cfg.SourceSpacing),
	}
	if cfg.QuoteAPIKey != "" {
		globalQuote := services.NewGlobalQuoteSource(cfg.QuoteAPIBaseURL, cfg.QuoteAPIKey)
		chain = append(chain, services.NewMinIntervalSource(globalQuote, cfg.SourceSpacing))
	}

	// Services
	aggregator := services.NewAggregator(chain, services.NewNormalizer(), cfg.SourceTimeout, zlog)
	scraper := services.NewScraperService(yahoo, scrapedRepo, zlog)
	mailer := services.NewMailClient(cfg.MailBaseURL, cfg.MailAPIKey, cfg.MailFrom)
	reports := services.NewReportService(aggregator, mailer, zlog)

	// Handlers
	commodityHandler := handlers.NewCommodityHandler(aggregator)
	alertHandler := handlers.NewAlertHandler(aggregator)
	scrapeHandler := handlers.NewScrapeHandler(scraper)
	reportHandler := handlers.NewReportHandler(reports)

	// Router
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "rohmon-backend",
		})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/commodities", commodityHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/commodities/{id}/history", commodityHandler.HandleHistory).Methods(http.MethodGet)
	api.HandleFunc("/summary", commodityHandler.HandleSummary).Methods(http.MethodGet)
	api.HandleFunc("/alerts", alertHandler.HandleAlerts).Methods(http.MethodGet)
	api.HandleFunc("/scrape/{id}", scrapeHandler.HandleScrape).Methods(http.MethodPost)
	api.HandleFunc("/reports/send", reportHandler.HandleSend).Methods(http.MethodPost)
	api.HandleFunc("/reports/preview", reportHandler.HandlePreview).Methods(http.MethodGet)

	// CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	zlog.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := http.ListenAndServe(":"+cfg.ServerPort, corsHandler(r)); err != nil {
		zlog.Fatal("Server stopped", zap.Error(err))
	}
}
