package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/medisuite/hospital-services/internal/adminapi"
	"github.com/medisuite/hospital-services/internal/config"
	"github.com/medisuite/hospital-services/internal/graphql"
	healthHandler "github.com/medisuite/hospital-services/internal/handler/health"
	"github.com/medisuite/hospital-services/internal/middleware"
	"github.com/medisuite/hospital-services/internal/repository/postgres"
	"github.com/medisuite/hospital-services/internal/router"
	medicineService "github.com/medisuite/hospital-services/internal/service/medicine"
	"github.com/medisuite/hospital-services/pkg/logger"
	"github.com/medisuite/hospital-services/pkg/metrics"
)

func main() {
	cfg, err := config.Load("pharmacy")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup("pharmacy", &logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.MigratePharmacy(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	m := metrics.New("hospital", "pharmacy")

	medicineRepo := postgres.NewMedicineRepository(db)
	adminClient := adminapi.NewClient(cfg.Remote.AdminURL, m)
	medicineSvc := medicineService.NewService(medicineRepo, adminClient)

	schema, err := graphql.NewPharmacySchema(graphql.PharmacyServices{
		Medicines: medicineSvc,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build schema")
	}

	routerCfg := router.Config{CORS: middleware.DefaultCORSConfig()}
	if cfg.RateLimit.Enabled {
		routerCfg.RateLimit = &middleware.RateLimiterConfig{
			Rate:  rate.Limit(cfg.RateLimit.RPS),
			Burst: cfg.RateLimit.Burst,
		}
	}

	r := router.New(routerCfg, m,
		graphql.NewHandler(schema, m),
		healthHandler.NewHandler(db),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting pharmacy service")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
