// @title           Landlord Management API
// @version         1.0
// @description     Rental portfolio management: properties, tenancies, lease lifecycle, moderation, and reminders.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/propertymanager/landlord-api/docs"
	"github.com/propertymanager/landlord-api/internal/api"
	"github.com/propertymanager/landlord-api/internal/core/service"
	"github.com/propertymanager/landlord-api/internal/infrastructure/config"
	mongodb "github.com/propertymanager/landlord-api/internal/infrastructure/db/mongo"
	redisdb "github.com/propertymanager/landlord-api/internal/infrastructure/db/redis"
	"github.com/propertymanager/landlord-api/internal/infrastructure/mail"
	"github.com/propertymanager/landlord-api/internal/infrastructure/queue"
	"github.com/propertymanager/landlord-api/pkg/logger"
)

func main() {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	accountRepo := mongodb.NewAccountRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	tenancyRepo := mongodb.NewTenancyRepository(db)
	for _, r := range []interface {
		EnsureIndexes(context.Context) error
	}{accountRepo, propertyRepo, tenancyRepo} {
		if err := r.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	// --- Outbound channels ---
	mailer := mail.NewSendgridMailer(mail.Config{
		APIKey:      cfg.Mail.APIKey,
		FromName:    cfg.Mail.FromName,
		FromAddress: cfg.Mail.FromAddress,
	})
	dispatcher := service.NewDispatchService(mailer, log)

	reminderQueue := queue.NewDispatcher(cfg.Queue.Workers, dispatcher, log)
	reminderQueue.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(accountRepo, service.AdminCredentials{
		Username:     cfg.Admin.Username,
		PasswordHash: cfg.Admin.PasswordHash,
	}, cfg.JWTSecret, 24*time.Hour)
	cascade := service.NewCascadeManager(accountRepo, propertyRepo, tenancyRepo, log)
	locker := redisdb.NewAccountLocker(rdb)
	moderation := service.NewModerationService(accountRepo, cascade, locker, log)
	appeals := service.NewAppealService(dispatcher, cfg.Admin.NotifyAddress, log)
	properties := service.NewPropertyService(propertyRepo, tenancyRepo, log)
	tenancies := service.NewTenancyService(tenancyRepo, propertyRepo, log)
	reminders := service.NewReminderService(dispatcher, reminderQueue, tenancyRepo, log)

	e := api.NewRouter(api.Dependencies{
		JWTSecret:  cfg.JWTSecret,
		Logger:     log,
		Auth:       authService,
		Moderation: moderation,
		Appeals:    appeals,
		Properties: properties,
		Tenancies:  tenancies,
		Reminders:  reminders,
		Mongo:      db,
		Redis:      rdb,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
