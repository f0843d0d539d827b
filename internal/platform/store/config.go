package store

import (
	"time"

	"modhook/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG    PGConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// MongoConfig configures the document database
type MongoConfig struct {
	Enabled  bool
	URI      string
	Database string
	Timeout  time.Duration
}

// RedisConfig configures redis connectivity
type RedisConfig struct {
	Enabled  bool
	Addr     string
	DB       int
	Password string
}

// ConfigFromEnv reads SERVICE_PGSQL_*, SERVICE_MONGO_* and SERVICE_REDIS_* under cfg.
// The enable flags are decided by the caller from the backend selection
func ConfigFromEnv(cfg config.Conf, appName string) Config {
	pg := cfg.Prefix("SERVICE_PGSQL_")
	mg := cfg.Prefix("SERVICE_MONGO_")
	rd := cfg.Prefix("SERVICE_REDIS_")
	return Config{
		AppName: appName,
		PG: PGConfig{
			URL:            pg.MayString("DBURL", ""),
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 8)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 250),
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		Mongo: MongoConfig{
			URI:      mg.MayString("URI", ""),
			Database: mg.MayString("DATABASE", "registry"),
			Timeout:  mg.MayDuration("TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Addr:     rd.MayString("ADDR", ""),
			DB:       rd.MayInt("DB", 0),
			Password: rd.MayString("PASSWORD", ""),
		},
	}
}
