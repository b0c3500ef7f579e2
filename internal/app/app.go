// Package app assembles the note store, its persistence backend and the
// assist pipeline from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/evgeniy-krivenko/ai-notes/internal/config"
	"github.com/evgeniy-krivenko/ai-notes/internal/gemini"
	"github.com/evgeniy-krivenko/ai-notes/internal/repository"
	"github.com/evgeniy-krivenko/ai-notes/internal/usecase/assist"
	"github.com/evgeniy-krivenko/ai-notes/internal/usecase/notes"
	"github.com/evgeniy-krivenko/ai-notes/pkg/database"
	"github.com/evgeniy-krivenko/ai-notes/pkg/logger/slogx"
)

type App struct {
	Notes  *notes.Usecase
	Assist *assist.Pipeline

	closers []func()
}

// New opens the configured backend and loads the note state. A failed load
// is returned but the App is still usable; writes stay suppressed.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{}

	slot, err := a.openSlot(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	repo := repository.NewStateRepo(slot, cfg.Storage.Key)

	a.Notes, err = notes.New(notes.NewOptions(repo))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init notes usecase: %v", err)
	}

	a.Assist, err = assist.New(assist.NewOptions(
		a.Notes,
		gemini.New(cfg.Gemini.URL, cfg.Gemini.APIKey, cfg.Gemini.Timeout),
		assist.WithAttempts(cfg.Assist.Attempts),
		assist.WithBaseDelay(cfg.Assist.BaseDelay),
	))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init assist pipeline: %v", err)
	}

	if err := a.Notes.Load(ctx); err != nil {
		return a, fmt.Errorf("load notes: %w", err)
	}

	return a, nil
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) openSlot(ctx context.Context, cfg config.Config) (repository.Slot, error) {
	slogx.Info(ctx, "open storage", slog.String("driver", cfg.Storage.Driver))

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return repository.NewMemorySlot(), nil

	case config.DriverSQLite:
		slot, err := repository.NewSQLiteSlot(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %v", err)
		}
		a.closers = append(a.closers, func() { _ = slot.Close() })

		return slot, nil

	case config.DriverPostgres:
		pool, err := database.NewPGX(ctx, database.NewOptions(
			net.JoinHostPort(cfg.Database.Host, cfg.Database.Port),
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			database.WithRetryAttempts(cfg.Database.RetryAttempts),
			database.WithLogger(slogx.Default()),
		))
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %v", err)
		}
		a.closers = append(a.closers, pool.Close)

		if err := database.Migrate(ctx, pool, slogx.Default()); err != nil {
			return nil, fmt.Errorf("migrate postgres: %v", err)
		}

		return repository.NewPostgresSlot(database.NewDatabase(pool)), nil

	case config.DriverDynamo:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Dynamo.Region))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %v", err)
		}

		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.Dynamo.Endpoint != "" {
				o.BaseEndpoint = &cfg.Dynamo.Endpoint
			}
		})

		return repository.NewDynamoSlot(client, cfg.Dynamo.Table), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
