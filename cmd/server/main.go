// @title           Gym System API
// @version         1.0
// @description     Account registration, role-based access and gym operations for admins, trainers and members.
// @BasePath        /
// @securityDefinitions.basic  BasicAuth
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pulsegym/gym-system/internal/api"
	"github.com/pulsegym/gym-system/internal/api/handler"
	"github.com/pulsegym/gym-system/internal/core/ports"
	"github.com/pulsegym/gym-system/internal/core/service"
	mongostore "github.com/pulsegym/gym-system/internal/infrastructure/db/mongo"
	redisstore "github.com/pulsegym/gym-system/internal/infrastructure/db/redis"
	"github.com/pulsegym/gym-system/internal/infrastructure/db/relational"
	"github.com/pulsegym/gym-system/internal/infrastructure/queue"
	"github.com/pulsegym/gym-system/internal/infrastructure/security"
	"github.com/pulsegym/gym-system/internal/pkg/config"
	"github.com/pulsegym/gym-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "gym-system",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := relational.Open(ctx, cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("open database")
	}
	defer db.Close()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("connect redis")
	}
	defer rdb.Close()

	checks := []handler.HealthCheck{
		handler.SQLCheck(db.Ping),
		handler.RedisCheck(rdb),
	}

	var audit ports.AuditRepository
	if cfg.Mongo.URI != "" {
		client, mdb, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("connect mongodb")
		}
		defer disconnect(client)

		repo := mongostore.NewAuditRepository(mdb)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("ensure audit indexes")
		}
		dispatcher := queue.NewAuditDispatcher(cfg.Mongo.Workers, repo, logger.Component("audit"))
		dispatcher.Start(context.Background())
		defer dispatcher.Close()
		audit = dispatcher
		checks = append(checks, handler.MongoCheck(mdb))
	} else {
		log.Info().Msg("MONGO_URI not set, audit trail disabled")
	}

	users := relational.NewUserRepository(db)
	classes := relational.NewClassRepository(db)
	memberships := relational.NewMembershipRepository(db)
	hasher := security.NewBcryptHasherWithCost(cfg.Security.BcryptCost)

	router := api.NewRouter(api.Deps{
		Auth:       service.NewAuthService(users, hasher, audit, logger.Component("auth")),
		Dispatcher: service.NewRoleDispatcher(),
		Admin: service.NewAdminService(service.AdminDeps{
			Users:           users,
			Classes:         classes,
			Memberships:     memberships,
			Hasher:          hasher,
			Confirmations:   redisstore.NewConfirmationStore(rdb),
			Audit:           audit,
			ConfirmationTTL: cfg.Security.ConfirmationTTL,
		}, logger.Component("admin")),
		Classes:     service.NewClassService(classes, logger.Component("classes")),
		Memberships: service.NewMembershipService(memberships, logger.Component("memberships")),
		Health:      checks,
		Log:         logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("db_driver", cfg.DB.Driver).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}
}

func disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx)
}
