// Package app wires the conversation engine to its configured collaborators.
// Both commands build on it.
package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"loan-assistant/internal/common/config"
	"loan-assistant/internal/common/database"
	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/conversation"
	"loan-assistant/internal/customer"
	"loan-assistant/internal/i18n"
	"loan-assistant/internal/models"
	"loan-assistant/internal/sanction"
	"loan-assistant/internal/session"
)

// App holds the engine and the connections it was built on.
type App struct {
	Config    *config.Config
	Engine    *conversation.Engine
	Directory customer.Directory
	Ledger    sanction.Ledger
	Postgres  *database.PostgresClient
	Redis     *database.RedisClient

	janitor *cron.Cron
	logger  logger.Logger
}

// Options adjust how New connects. Zero values connect once without retry.
type Options struct {
	Sink         conversation.Sink
	ConnectTries int
	RetryDelay   time.Duration
}

// New connects to the configured stores and builds the engine. Close must be
// called even when New fails part way, so New cleans up after itself.
func New(ctx context.Context, cfg *config.Config, opts Options, log logger.Logger) (*App, error) {
	a := &App{Config: cfg, logger: log}
	if err := a.build(ctx, opts); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) build(ctx context.Context, opts Options) error {
	cfg := a.Config
	tries := opts.ConnectTries
	if tries <= 0 {
		tries = 1
	}

	if cfg.Customers.Source == config.SourcePostgres {
		err := RetryWithBackoff(ctx, func() error {
			pg, err := database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			if err := pg.Ping(ctx); err != nil {
				pg.Close()
				return err
			}
			a.Postgres = pg
			return nil
		}, tries, opts.RetryDelay, a.logger, "PostgreSQL connection")
		if err != nil {
			return err
		}
		if err := a.preparePostgres(ctx); err != nil {
			return err
		}
	}

	if cfg.NeedsRedis() {
		a.Redis = database.NewRedis(cfg.Database.Redis)
		err := RetryWithBackoff(ctx, func() error {
			return a.Redis.Ping(ctx)
		}, tries, opts.RetryDelay, a.logger, "Redis connection")
		if err != nil {
			return err
		}
	}

	a.Directory = a.directory()
	store, err := a.sessionStore()
	if err != nil {
		return err
	}

	if a.Postgres != nil {
		a.Ledger = sanction.NewPostgresLedger(a.Postgres.DB)
	} else {
		a.Ledger = sanction.NewMemoryLedger()
	}

	engine, err := conversation.NewEngine(
		conversation.ConfigFrom(cfg.Engine, cfg.Documents),
		conversation.Deps{
			Directory: a.Directory,
			Extractor: conversation.ExtractorFrom(cfg.Engine, cfg.Documents),
			Store:     store,
			Localizer: i18n.NewCatalog(),
			Scheduler: conversation.SchedulerFrom(cfg.Engine),
			Sink:      opts.Sink,
		},
		a.logger,
	)
	if err != nil {
		return err
	}
	engine.OnSanction(a.recordSanction)
	a.Engine = engine
	return nil
}

func (a *App) preparePostgres(ctx context.Context) error {
	if a.Config.Customers.Migrate {
		if err := a.Postgres.Migrate(ctx); err != nil {
			return err
		}
		a.logger.Info("PostgreSQL schema migrated", nil)
	}
	if a.Config.Customers.SeedDemo {
		profiles := customer.DemoProfiles()
		if err := a.Postgres.SeedCustomers(ctx, profiles); err != nil {
			return err
		}
		a.logger.Info("Demo customers seeded", map[string]interface{}{"count": len(profiles)})
	}
	return nil
}

func (a *App) directory() customer.Directory {
	var dir customer.Directory
	if a.Postgres != nil {
		dir = customer.NewPostgresDirectory(a.Postgres.DB)
	} else {
		dir = customer.NewDemoDirectory()
	}

	if ttl := a.Config.Customers.CacheTTL; ttl > 0 {
		dir = customer.NewCachedDirectory(dir, a.Redis.Client, config.GetSeconds(ttl), a.logger)
	}
	return dir
}

func (a *App) sessionStore() (session.Store, error) {
	sc := a.Config.Session
	if sc.Store == config.StoreRedis {
		return session.NewRedisStore(a.Redis.Client, session.RedisConfig{
			TTL:      config.GetSeconds(sc.TTL),
			LockTTL:  config.GetSeconds(sc.LockTTL),
			LockWait: config.GetSeconds(sc.LockWait),
		}), nil
	}

	store := session.NewMemoryStore(config.GetSeconds(sc.TTL))
	janitor, err := session.StartJanitor(store, sc.JanitorSchedule, a.logger)
	if err != nil {
		return nil, err
	}
	a.janitor = janitor
	return store, nil
}

func (a *App) recordSanction(ctx context.Context, s models.Sanction) {
	err := a.Ledger.Record(ctx, s)
	switch {
	case err == nil:
		a.logger.Info("Sanction recorded", map[string]interface{}{
			"reference":  s.Reference,
			"customerId": s.CustomerID,
			"amount":     s.Amount,
		})
	case stderrors.Is(err, sanction.ErrDuplicate):
		a.logger.Warn("Sanction already recorded", map[string]interface{}{"reference": s.Reference})
	default:
		a.logger.Error("Failed to record sanction", map[string]interface{}{
			"reference": s.Reference,
			"error":     err.Error(),
		})
	}
}

// Close stops the janitor and closes the connections that were opened.
func (a *App) Close() {
	if a.janitor != nil {
		<-a.janitor.Stop().Done()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.logger.Warn("Error closing Redis", map[string]interface{}{"error": err.Error()})
		}
	}
	if a.Postgres != nil {
		if err := a.Postgres.Close(); err != nil {
			a.logger.Warn("Error closing PostgreSQL", map[string]interface{}{"error": err.Error()})
		}
	}
}

// RetryWithBackoff runs operation up to maxRetries times, doubling the delay
// after each failure. It gives up early when ctx is done.
func RetryWithBackoff(ctx context.Context, operation func() error, maxRetries int, initialDelay time.Duration, log logger.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName), map[string]interface{}{
				"error":       err.Error(),
				"attempt":     i + 1,
				"maxRetries":  maxRetries,
				"nextRetryIn": delay.String(),
			})
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("%s cancelled: %w", operationName, ctx.Err())
			}
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}
