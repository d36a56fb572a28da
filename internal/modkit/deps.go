package modkit

import (
	"careerpath/internal/modkit/repokit"
	"careerpath/internal/platform/config"
	"careerpath/internal/platform/logger"
	"careerpath/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// PG and CH are nil when the backend is disabled
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// HasPG reports whether a postgres seam is wired
func (d Deps) HasPG() bool { return d.PG != nil }

// HasCH reports whether a clickhouse seam is wired
func (d Deps) HasCH() bool { return d.CH != nil }

// Named returns a child logger tagged with the module name
func (d Deps) Named(module string) logger.Logger {
	return d.Log.With().Str("module", module).Logger()
}
