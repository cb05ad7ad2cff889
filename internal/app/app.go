package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"remote-jobs-api/config"
	"remote-jobs-api/internal/api/handlers"
	"remote-jobs-api/internal/api/middleware"
	"remote-jobs-api/internal/api/openapi"
	"remote-jobs-api/internal/database"
	"remote-jobs-api/internal/gate"
	"remote-jobs-api/internal/identity"
	"remote-jobs-api/internal/mailer"
	"remote-jobs-api/internal/notify"
	"remote-jobs-api/internal/scheduler"
	"remote-jobs-api/internal/services"
	"remote-jobs-api/internal/storage"
	"remote-jobs-api/internal/storage/postgres"
	"remote-jobs-api/internal/storage/sqlite"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	limiterMaxIdle     = 10 * time.Minute
	housekeepingPeriod = time.Minute
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	Store       *storage.Store
	RedisClient *redis.Client // nil when the in-memory gate is used
	Gate        gate.Gate
	Verifier    *identity.Verifier
	Validator   *validator.Validate
	RateLimiter *middleware.RateLimiter
	RelayDoc    *openapi3.T
	Mailer      *mailer.Service

	JobService         services.JobService
	CompanyService     services.CompanyService
	ProfileService     services.ProfileService
	ApplicationService services.ApplicationService

	// Readiness probes by dependency name.
	Ready map[string]handlers.Pinger

	closers []func()
}

// New connects every backing service named in cfg and assembles the services.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	a := &Application{
		Config:    cfg,
		Validator: handlers.NewValidator(),
		Verifier:  identity.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience),
		Ready:     make(map[string]handlers.Pinger),
	}

	if err := a.openStore(ctx); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.openGate(ctx); err != nil {
		a.Close()
		return nil, err
	}

	doc, err := openapi.LoadRelaySpec(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.RelayDoc = doc

	a.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.ApplyPerMinute, cfg.RateLimit.Burst)
	a.Mailer = mailer.NewService(newSender(cfg.SMTP), mailer.Identity{
		FromName:    cfg.SMTP.FromName,
		FromAddress: cfg.SMTP.FromAddress,
		ReplyTo:     cfg.SMTP.ReplyTo,
	})

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Relay.BaseURL != "" {
		notifier = notify.NewClient(notify.ClientConfig{
			BaseURL:          cfg.Relay.BaseURL,
			ApplicationPath:  cfg.Relay.ApplicationPath,
			VerificationPath: cfg.Relay.VerificationPath,
			APIKey:           cfg.Relay.APIKey,
			Timeout:          cfg.Relay.Timeout,
		})
	} else {
		log.Warn().Msg("App: relay base_url not set, applicant notifications are disabled")
	}

	a.JobService = services.NewJobService(a.Store)
	a.CompanyService = services.NewCompanyService(a.Store)
	a.ProfileService = services.NewProfileService(a.Store, notifier)
	a.ApplicationService = services.NewApplicationService(services.ApplicationServiceConfig{
		Store:         a.Store,
		Gate:          a.Gate,
		Notifier:      notifier,
		PublicURL:     cfg.App.PublicURL,
		NotifyTimeout: cfg.Relay.Timeout,
	})
	return a, nil
}

func (a *Application) openStore(ctx context.Context) error {
	cfg := a.Config.DB
	switch cfg.Driver {
	case database.DialectSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		a.Store = sqlite.NewStore(db)
		a.closers = append(a.closers, a.Store.Close)
		a.Ready["database"] = handlers.PingFunc(db.PingContext)
		if cfg.Migrate {
			return database.Migrate(ctx, db, database.DialectSQLite)
		}
		return nil
	case database.DialectPostgres, "":
		pool, err := database.NewConnectionPool(ctx, cfg)
		if err != nil {
			return err
		}
		a.Store = postgres.NewStore(pool)
		a.closers = append(a.closers, a.Store.Close)
		a.Ready["database"] = handlers.PingFunc(pool.Ping)
		if cfg.Migrate {
			return migratePostgres(ctx, pool)
		}
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// migratePostgres runs the schema through a database/sql view of the pool.
func migratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return database.Migrate(ctx, db, database.DialectPostgres)
}

func (a *Application) openGate(ctx context.Context) error {
	cfg := a.Config.Redis
	if cfg.Addr == "" {
		log.Info().Msg("App: redis addr not set, using in-memory apply gate")
		a.Gate = gate.NewMemoryGate(cfg.ApplyGateTTL)
		return nil
	}
	rdb, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		return err
	}
	a.RedisClient = rdb
	a.closers = append(a.closers, func() { _ = rdb.Close() })
	a.Gate = gate.NewRedisGate(rdb, cfg.ApplyGateTTL)
	a.Ready["redis"] = handlers.PingFunc(func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	return nil
}

func newSender(cfg config.SMTPConfig) mailer.Sender {
	sender, err := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:      cfg.Host,
		Port:      cfg.Port,
		Username:  cfg.Username,
		Password:  cfg.Password,
		TLSPolicy: cfg.TLSPolicy,
	})
	if err != nil {
		if !errors.Is(err, mailer.ErrNotConfigured) {
			log.Error().Err(err).Msg("App: failed to create smtp sender")
		} else {
			log.Warn().Msg("App: smtp host not set, relay endpoints will report send failures")
		}
		return mailer.UnconfiguredSender{}
	}
	return sender
}

// Housekeeping registers the periodic pruning tasks on s.
func (a *Application) Housekeeping(s *scheduler.Scheduler) error {
	if err := s.Every("prune-rate-limiters", housekeepingPeriod, func() {
		if n := a.RateLimiter.Cleanup(limiterMaxIdle); n > 0 {
			log.Debug().Int("removed", n).Msg("Housekeeping: pruned idle rate limiters")
		}
	}); err != nil {
		return err
	}
	if mem, ok := a.Gate.(*gate.MemoryGate); ok {
		return s.Every("prune-apply-gate", housekeepingPeriod, func() {
			if n := mem.Prune(); n > 0 {
				log.Debug().Int("removed", n).Msg("Housekeeping: pruned expired apply gate entries")
			}
		})
	}
	return nil
}

// Close releases connections in reverse order of opening.
func (a *Application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
