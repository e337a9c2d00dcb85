package cookbookservice

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/hearthbook/hearthbook/internal/config"
)

func TestLogLevelFor(t *testing.T) {
	if lvl := logLevelFor(&config.Config{Environment: config.EnvProduction}); lvl != zerolog.InfoLevel {
		t.Fatalf("production level: %v", lvl)
	}
	if lvl := logLevelFor(&config.Config{Environment: config.EnvDevelopment}); lvl != zerolog.DebugLevel {
		t.Fatalf("development level: %v", lvl)
	}
	if lvl := logLevelFor(&config.Config{Environment: config.EnvTesting}); lvl != zerolog.DebugLevel {
		t.Fatalf("testing level: %v", lvl)
	}
}
