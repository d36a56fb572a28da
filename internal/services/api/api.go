// Package api provides the HTTP API for the application
package api

import (
	"context"
	"fmt"

	"careerpath/internal/core/recommend"
	"careerpath/internal/platform/config"
	"careerpath/internal/platform/logger"
	phttp "careerpath/internal/platform/net/http"
	"careerpath/internal/platform/net/middleware"
	"careerpath/internal/platform/store"

	"careerpath/internal/modkit"
	"careerpath/internal/modkit/httpkit"
	"careerpath/internal/modkit/module"
	"careerpath/internal/modkit/swaggerkit"

	analyzemod "careerpath/internal/services/api/analyze/module"
	communitymod "careerpath/internal/services/api/community/module"
	metamod "careerpath/internal/services/api/meta/module"
	quizmod "careerpath/internal/services/api/quiz/module"
	resourcesmod "careerpath/internal/services/api/resources/module"
	resumemod "careerpath/internal/services/api/resume/module"
	statsmod "careerpath/internal/services/api/stats/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Stack          httpkit.StackOptions
	Engine         *recommend.Engine
	EnableSwagger  bool
	EnableProfiler bool
}

// API is the constructed module set
type API struct {
	Registry *module.Registry

	meta      *metamod.Module
	stats     *statsmod.Module
	analyze   *analyzemod.Module
	quiz      *quizmod.Module
	community *communitymod.Module
	resources *resourcesmod.Module
	resume    *resumemod.Module

	deps modkit.Deps
	opt  Options
}

// New builds every module; stats comes first so analyze can record through it
func New(opt Options) *API {
	deps := modkit.Deps{
		Log: *logger.Named("api"),
		Cfg: opt.Config,
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}
	engine := opt.Engine
	if engine == nil {
		engine = recommend.Default()
	}

	a := &API{Registry: module.NewRegistry(), deps: deps, opt: opt}

	a.stats = statsmod.New(deps)
	rec := module.MustPortsOf[statsmod.Ports](a.stats).Recorder

	a.analyze = analyzemod.New(deps, modkit.WithPorts(analyzemod.Ports{Recorder: rec, Engine: engine}))
	a.quiz = quizmod.New(deps, modkit.WithPorts(quizmod.Ports{Engine: engine}))
	a.meta = metamod.New(deps, modkit.WithPorts(metamod.Ports{Engine: engine}))
	a.community = communitymod.New(deps)
	a.resources = resourcesmod.New(deps)
	a.resume = resumemod.New(deps)

	a.Registry.Register(a.modules()...)
	return a
}

func (a *API) modules() []module.Module {
	return []module.Module{a.meta, a.stats, a.analyze, a.quiz, a.community, a.resources, a.resume}
}

// Mount builds the modules and mounts them onto r
func Mount(r phttp.Router, opt Options) *API {
	a := New(opt)
	a.Mount(r)
	return a
}

// Mount attaches the heartbeat, the versioned API, legacy aliases and docs
// it must run before any other route is added to r
func (a *API) Mount(r phttp.Router) {
	r.Use(middleware.Heartbeat("/healthz"))

	swaggerkit.Mount(r, a.opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", a.opt.EnableProfiler)

	stack := httpkit.CommonStack(a.opt.Stack)

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range a.modules() {
			m.MountRoutes(api)
		}
		a.meta.MountPing(api)
	})

	// unversioned paths older clients still call
	httpkit.MountUnder(r, "/api", stack, func(legacy httpkit.Router) {
		a.analyze.MountRoutes(legacy)
		a.quiz.MountRoutes(legacy)
		a.meta.MountPing(legacy)
	})
}

// Run drives background work, currently the analytics writer, until ctx ends
func (a *API) Run(ctx context.Context) error { return a.stats.Run(ctx) }

// Ensure creates tables for every configured backend; disabled backends are skipped
func (a *API) Ensure(ctx context.Context) error {
	log := logger.C(ctx)
	if a.deps.HasPG() {
		if err := a.quiz.Service().Ensure(ctx); err != nil {
			return fmt.Errorf("quiz schema: %w", err)
		}
		if err := a.community.Service().Ensure(ctx); err != nil {
			return fmt.Errorf("community schema: %w", err)
		}
		log.Info().Msg("postgres schemas ensured")
	} else {
		log.Warn().Msg("postgres disabled; quiz and community answer 503")
	}
	if a.deps.HasCH() {
		if err := a.stats.Service().Ensure(ctx); err != nil {
			return fmt.Errorf("analytics table: %w", err)
		}
		log.Info().Msg("clickhouse table ensured")
	} else {
		log.Warn().Msg("clickhouse disabled; analytics not recorded")
	}
	return nil
}
