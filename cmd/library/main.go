package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"github.com/transparent-media/library/internal/adapter"
	"github.com/transparent-media/library/internal/config"
	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/internal/service"
	"github.com/transparent-media/library/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("library")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	local := store.NewLocalStore(cfg.Storage.Local.StateFile, cfg.App.DefaultTheme, log)
	remote := connectRemote(ctx, cfg.Storage.Remote, log)

	services := service.NewServices(local, remote, cfg.Storage.Remote, log)

	account, err := services.UserService.FindOrCreateUser(ctx, accountName())
	if err != nil {
		log.Fatal().Err(err).Msg("resolve library user")
	}
	log.Info().Int64("user_id", account.ID).Str("username", account.Username).Msg("library user resolved")

	services.RefreshJob.Start(ctx, account.ID, cfg.Workers.RefreshInterval)
	defer services.RefreshJob.Stop()

	<-ctx.Done()
	log.Info().Msg("shutting down")
}

// connectRemote builds the remote store for the configured driver. A remote
// that cannot be reached at startup is not fatal: the services carry on from
// the local mirror and the breaker re-probes later.
func connectRemote(ctx context.Context, cfg config.Remote, log *logger.Logger) store.RemoteLibrary {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := store.NewConnectPostgres(ctx, cfg, log)
		if err != nil {
			log.Warn().Err(err).Msg("remote postgres unavailable, starting in local-only mode")
			return nil
		}
		if err = db.Migrate(); err != nil {
			log.Warn().Err(err).Msg("remote migrations failed, starting in local-only mode")
			return nil
		}
		return store.NewSQLRemoteLibrary(db, log)

	case config.DriverSQLite:
		db, err := store.NewConnectSQLite(ctx, cfg, log)
		if err != nil {
			log.Warn().Err(err).Msg("remote sqlite unavailable, starting in local-only mode")
			return nil
		}
		if err = db.Migrate(); err != nil {
			log.Warn().Err(err).Msg("remote migrations failed, starting in local-only mode")
			return nil
		}
		return store.NewSQLRemoteLibrary(db, log)

	case config.DriverHTTP:
		remote, err := adapter.NewHTTPRemoteLibrary(cfg, log)
		if err != nil {
			log.Warn().Err(err).Msg("remote http adapter misconfigured, starting in local-only mode")
			return nil
		}
		return remote

	default:
		log.Info().Msg("no remote store configured, running in local-only mode")
		return nil
	}
}

// accountName picks the library account for this installation: the OS user
// when available, a fixed name otherwise.
func accountName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
