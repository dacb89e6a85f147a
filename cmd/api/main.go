package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mem "pet-shelter/internal/adapters/storage/memory"
	mongostore "pet-shelter/internal/adapters/storage/mongodb"
	pg "pet-shelter/internal/adapters/storage/postgres"
	"pet-shelter/internal/adapters/uploads"
	"pet-shelter/internal/domain/pets"
	"pet-shelter/internal/platform/config"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/platform/metrics"
	"pet-shelter/internal/router"
)

// @title			Pet Shelter API
// @version		1.0
// @description	Registro de mascotas del refugio: alta, consulta, actualización, adopción y filtro por mood.
// @BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	images, err := uploads.NewDiskStore(cfg.UploadDir, cfg.UploadMaxBytes)
	if err != nil {
		return err
	}

	h := router.NewRouter(router.Options{
		Pets:               repo,
		Images:             images,
		Logger:             log,
		Metrics:            metrics.New("pet_shelter"),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store": cfg.Store})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped", nil)
	return nil
}

// openStore devuelve el repo según STORE y una función para liberar la conexión.
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (pets.Repository, func(), error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := pg.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if cfg.AutoMigrate {
			if err := pg.Migrate(ctx, db); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
			log.Info("migrations applied", nil)
		}
		return pg.NewPetsRepo(db), func() { _ = db.Close() }, nil

	case config.StoreMongo:
		client, err := mongostore.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		repo, err := mongostore.NewPetsRepo(ctx, client, cfg.MongoDatabase)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		return repo, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}, nil

	default:
		log.Warn("using in-memory store, data is lost on restart", nil)
		return mem.NewPetRepo(), func() {}, nil
	}
}
