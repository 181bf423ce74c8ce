package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/adapters/airtable"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/adapters/nbp"
	portssvc "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/services"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/services"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/handlers"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/middleware"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/platform/config"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:   "kantor-backend",
		Short: "Currency exchange backend: NBP rate sync, history and conversion API",
	}
	root.AddCommand(newServeCmd(logger), newUpdateRatesCmd(logger))

	if err := root.Execute(); err != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// bootstrap loads configuration and wires the service container.
func bootstrap() (*config.Config, *portssvc.ServiceContainer, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	spreads, err := config.LoadSpreadsConfig(cfg.SpreadsPath)
	if err != nil {
		return nil, nil, err
	}

	store := airtable.NewClient(airtable.Config{
		APIURL:  cfg.AirtableAPIURL,
		BaseID:  cfg.AirtableBaseID,
		Token:   cfg.AirtableToken,
		Timeout: cfg.HTTPTimeout,
	})
	source := nbp.NewClient(cfg.NBPAPIURL, cfg.HTTPTimeout)

	return cfg, services.NewServiceContainer(cfg, spreads, store, source), nil
}

func newServeCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, container, err := bootstrap()
			if err != nil {
				return err
			}

			if cfg.IsProduction {
				gin.SetMode(gin.ReleaseMode)
			}

			r := gin.New()

			// Global middleware (logging, recovery)
			r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

			if err := r.SetTrustedProxies(nil); err != nil {
				return err
			}

			r.Use(cors.New(cors.Config{
				AllowOrigins: []string{"*"},
				AllowMethods: []string{"GET", "POST", "OPTIONS"},
				AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			}))

			rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
			if err != nil {
				return err
			}
			r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

			handlers.RegisterRoutes(r, container)

			logger.Info("Server starting", slog.String("port", cfg.Port))
			return r.Run(":" + cfg.Port)
		},
	}
}

func newUpdateRatesCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "update-rates",
		Short: "Fetch the latest NBP tables and replace the stored snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, container, err := bootstrap()
			if err != nil {
				return err
			}

			ctx := middleware.WithLogger(context.Background(), logger)
			entries, err := container.Sync.SyncRates(ctx)
			if err != nil {
				return err
			}

			for _, entry := range entries {
				logger.Info("Rate updated",
					slog.String("currency", entry.Code.String()),
					slog.Float64("current_mid", entry.CurrentMid.Value()),
					slog.Float64("previous_mid", entry.PreviousMid.Value()),
					slog.String("effective_date", entry.EffectiveDate.String()),
				)
			}
			logger.Info("Rate update finished", slog.Int("count", len(entries)))
			return nil
		},
	}
}
