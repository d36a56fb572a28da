package store

import (
	"time"

	"careerpath/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// ConnectRetries bounds the ping loop at open; 0 means 20
	ConnectRetries int
	// PingTimeout bounds each ping; 0 means 3s
	PingTimeout time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled     bool
	URL         string
	DialTimeout time.Duration
}

// ConfigFrom reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_* keys
// each backend is enabled when its URL is set unless *_ENABLED says otherwise
func ConfigFrom(c config.Conf, app string) Config {
	pg := c.Prefix("SERVICE_PGSQL_")
	ch := c.Prefix("SERVICE_CLICKHOUSE_")

	pgURL := pg.MayString("URL", "")
	chURL := ch.MayString("URL", "")

	return Config{
		AppName: app,
		PG: PGConfig{
			Enabled:        pgURL != "" && pg.MayBool("ENABLED", true),
			URL:            pgURL,
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 10)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 250),
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled:     chURL != "" && ch.MayBool("ENABLED", true),
			URL:         chURL,
			DialTimeout: ch.MayDuration("DIAL_TIMEOUT", 5*time.Second),
		},
	}
}
