package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/profutur/profutur-api/internal/api"
	"github.com/profutur/profutur-api/internal/config"
	"github.com/profutur/profutur-api/internal/db"
	"github.com/profutur/profutur-api/internal/ledger"
	"github.com/profutur/profutur-api/internal/logger"
	"github.com/profutur/profutur-api/internal/notify"
	"github.com/profutur/profutur-api/internal/repository/dao"
	"github.com/profutur/profutur-api/internal/service"
)

const (
	configPath      = "./cmd/app/config.yml"
	shutdownTimeout = 15 * time.Second
)

func Start() error {
	// Set once the server is built; config changes before that are ignored.
	var enrollments atomic.Pointer[service.EnrollmentService]

	conf, err := config.LoadAndWatch(configPath, func(updated *config.AppConfig, e fsnotify.Event) {
		svc := enrollments.Load()
		if svc == nil {
			return
		}
		svc.SetEnforceCapacity(updated.Enrollment.EnforceCapacity)
		zap.L().Info("config reloaded",
			zap.String("file", e.Name),
			zap.Bool("enforce_capacity", updated.Enrollment.EnforceCapacity),
		)
	})
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer logger.Sync()

	gdb, err := openDatabase(conf.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}
	if conf.Database.AutoMigrate {
		if err = dao.InitTables(gdb); err != nil {
			return fmt.Errorf("failed to migrate database -> %w", err)
		}
	}

	gateway, err := ledger.New(conf.Ledger)
	if err != nil {
		// Ledger operations fail with ErrLedgerUnavailable until fixed.
		zap.L().Error("ledger gateway unavailable", zap.String("network", conf.Ledger.Network), zap.Error(err))
	}
	defer func() {
		if err := gateway.Close(); err != nil {
			zap.L().Warn("closing ledger gateway", zap.Error(err))
		}
	}()

	mailer := notify.New(conf.SendGrid)

	s := api.NewServer(conf, gdb, gateway, mailer)
	enrollments.Store(s.Enrollments)

	if err = s.Reconciler.Start(conf.Reconciler.Schedule, conf.Reconciler.Location); err != nil {
		return fmt.Errorf("failed to start the reconciler -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + conf.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
	case <-ctx.Done():
		zap.L().Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.Reconciler.Stop(shutdownCtx)
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}
	if m, ok := mailer.(interface{ Wait() }); ok {
		m.Wait()
	}

	return nil
}

// openDatabase prefers DATABASE_URL, as exported by most hosting platforms.
func openDatabase(conf *config.DatabaseConfig) (*gorm.DB, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return db.OpenPostgresWithURL(dbURL, conf)
	}

	return db.Open(conf)
}
