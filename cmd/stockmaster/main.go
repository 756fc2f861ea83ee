package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/jhoicas/stockmaster/internal/application/analytics"
	"github.com/jhoicas/stockmaster/internal/application/controller"
	"github.com/jhoicas/stockmaster/internal/application/inventory"
	"github.com/jhoicas/stockmaster/internal/domain/repository"
	"github.com/jhoicas/stockmaster/internal/infrastructure/kvstore"
	infrapdf "github.com/jhoicas/stockmaster/internal/infrastructure/pdf"
	"github.com/jhoicas/stockmaster/internal/infrastructure/persistence"
	"github.com/jhoicas/stockmaster/internal/interfaces/cli"
	"github.com/jhoicas/stockmaster/pkg/config"
	"github.com/jhoicas/stockmaster/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración: "+err.Error())
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fs := afero.NewOsFs()
	st, err := openStore(ctx, cfg, fs)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir almacenamiento")
		os.Exit(1)
	}
	closeStore := st.close
	defer closeStore()

	var repo repository.StateRepository = persistence.NewStateRepository(st.kv, cfg.Store.Key)
	if st.valuations != nil {
		repo = persistence.NewValuationStateRepository(repo, st.valuations, nil)
	}

	ctrl, err := controller.New(
		ctx,
		inventory.NewEngine(),
		repo,
		persistence.JSONProjectCodec{},
		log,
	)
	if err != nil {
		log.Error().Err(err).Msg("cargar estado")
		os.Exit(1)
	}

	root := cli.NewRootCommand(cli.Deps{
		Controller: ctrl,
		Reports:    analytics.NewReportUseCase(infrapdf.NewMarotoReportGenerator()),
		Dashboard:  analytics.NewDashboardUseCase(nil),
		Valuations: st.valuations,
		Files:      fs,
		OutDir:     cfg.Export.Dir,
	})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		closeStore()
		os.Exit(1)
	}
}

type stores struct {
	kv         repository.KVStore
	valuations analytics.ValuationStore // solo con el driver postgres
	close      func()
}

// openStore construye el almacén clave-valor según STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, fs afero.Fs) (stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		client, err := kvstore.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return stores{}, err
		}
		return stores{
			kv:    kvstore.NewRedisStore(client, cfg.Redis.Prefix),
			close: func() { _ = client.Close() },
		}, nil
	case config.StoreDriverPostgres:
		pool, err := kvstore.NewPool(ctx, cfg.DB)
		if err != nil {
			return stores{}, err
		}
		kv := kvstore.NewPostgresStore(pool)
		valuations := kvstore.NewPostgresValuationStore(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return stores{}, err
		}
		if err := valuations.EnsureSchema(ctx); err != nil {
			pool.Close()
			return stores{}, err
		}
		return stores{kv: kv, valuations: valuations, close: pool.Close}, nil
	default:
		return stores{kv: kvstore.NewFileStore(fs, cfg.Store.Dir), close: func() {}}, nil
	}
}
