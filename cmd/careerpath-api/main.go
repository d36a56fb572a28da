// @title         CareerPath API
// @version       0.1.0
// @description   Career recommendations, quiz history, community feed and learning resources

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careerpath/internal/platform/config"
	"careerpath/internal/platform/config/raw"
	"careerpath/internal/platform/logger"
	phttp "careerpath/internal/platform/net/http"
	"careerpath/internal/platform/store"

	"careerpath/internal/modkit/httpkit"
	"careerpath/internal/services/api"

	"golang.org/x/sync/errgroup"
)

func main() {
	// .env before anything reads the environment
	loaded, envErr := raw.LoadDotenv()

	logger.Init(logger.FromEnv())
	l := logger.Named("main")
	if envErr != nil {
		l.Warn().Err(envErr).Msg("dotenv")
	} else if len(loaded) > 0 {
		l.Debug().Strs("files", loaded).Msg("dotenv loaded")
	}

	// service-scoped config for HTTP etc (CAREER_API_*)
	root := config.New()
	apiCfg := root.Prefix("CAREER_API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// backends are optional; each is enabled by its URL
	st, err := store.Open(ctx, store.ConfigFrom(root, "careerpath-api"), store.WithLogger(*logger.Named("store")))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	srv := phttp.NewServer(phttp.ServerConfigFrom(apiCfg))

	a := api.Mount(srv.Router(), api.Options{
		Config: apiCfg,
		Store:  st,
		Stack: httpkit.StackOptions{
			CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
			Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
			SlowRequest: apiCfg.MayDuration("SLOW_REQUEST", time.Second),
		},
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	if apiCfg.MayBool("ENSURE_SCHEMA", true) {
		ectx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err := a.Ensure(ectx)
		cancel()
		if err != nil {
			l.Fatal().Err(err).Msg("schema ensure failed")
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return a.Run(gctx) })
	if every := apiCfg.MayDuration("BACKEND_CHECK_EVERY", time.Minute); every > 0 {
		g.Go(func() error { watchBackends(gctx, st, every); return nil })
	}

	if err := g.Wait(); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		os.Exit(1)
	}
	l.Info().Msg("bye")
}

// watchBackends logs backend ping failures until ctx ends
func watchBackends(ctx context.Context, st *store.Store, every time.Duration) {
	log := logger.Named("store")
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			if err := st.Guard(pctx); err != nil {
				log.Warn().Err(err).Msg("backend ping failed")
			}
			cancel()
		}
	}
}
