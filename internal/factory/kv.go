package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hearthbook/hearthbook/internal/config"
	"github.com/hearthbook/hearthbook/internal/kv"
	kvmem "github.com/hearthbook/hearthbook/internal/kv/memory"
	kvpg "github.com/hearthbook/hearthbook/internal/kv/postgres"
	kvsqlite "github.com/hearthbook/hearthbook/internal/kv/sqlite"
)

// NewKV opens the KV driver selected by config. Connections are verified
// synchronously so startup fails fast on an unreachable store.
func NewKV(cfg *config.Config, log zerolog.Logger) (kv.KV, error) {
	switch cfg.KVDriver {
	case "sqlite":
		log.Info().Str("path", cfg.SQLitePath).Msg("opening sqlite store")
		return kvsqlite.New(cfg.SQLitePath)
	case "postgres":
		log.Info().Msg("opening postgres store")
		return kvpg.New(cfg.PostgresDSN)
	case "memory":
		log.Warn().Msg("using in-memory store; data will not survive restarts")
		return kvmem.New(), nil
	default:
		return nil, fmt.Errorf("unknown KV_DRIVER: %s", cfg.KVDriver)
	}
}
