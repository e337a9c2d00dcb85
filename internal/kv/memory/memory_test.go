package memory

import (
	"testing"

	"github.com/hearthbook/hearthbook/internal/kv"
	"github.com/hearthbook/hearthbook/internal/kv/kvtest"
)

func TestMemoryKV_Compliance(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.KV { return New() })
}
