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

	"github.com/medisuite/hospital-services/internal/config"
	"github.com/medisuite/hospital-services/internal/graphql"
	healthHandler "github.com/medisuite/hospital-services/internal/handler/health"
	pharmacyHandler "github.com/medisuite/hospital-services/internal/handler/pharmacy"
	"github.com/medisuite/hospital-services/internal/middleware"
	"github.com/medisuite/hospital-services/internal/pharmacyapi"
	"github.com/medisuite/hospital-services/internal/repository/postgres"
	"github.com/medisuite/hospital-services/internal/router"
	appointmentService "github.com/medisuite/hospital-services/internal/service/appointment"
	doctorService "github.com/medisuite/hospital-services/internal/service/doctor"
	patientService "github.com/medisuite/hospital-services/internal/service/patient"
	recordService "github.com/medisuite/hospital-services/internal/service/record"
	"github.com/medisuite/hospital-services/pkg/logger"
	"github.com/medisuite/hospital-services/pkg/metrics"
)

func main() {
	cfg, err := config.Load("admin")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup("admin", &logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.MigrateAdmin(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	m := metrics.New("hospital", "admin")

	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	recordRepo := postgres.NewRecordRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)

	patientSvc := patientService.NewService(patientRepo, recordRepo, appointmentRepo)
	doctorSvc := doctorService.NewService(doctorRepo, appointmentRepo)
	recordSvc := recordService.NewService(recordRepo, patientRepo, doctorRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, doctorRepo)

	pharmacyClient := pharmacyapi.NewClient(cfg.Remote.PharmacyURL, m)

	schema, err := graphql.NewAdminSchema(graphql.AdminServices{
		Patients:     patientSvc,
		Doctors:      doctorSvc,
		Records:      recordSvc,
		Appointments: appointmentSvc,
		Pharmacy:     pharmacyClient,
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
		pharmacyHandler.NewHandler(pharmacyClient),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting admin service")
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
