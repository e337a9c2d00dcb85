package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hearthbook/hearthbook/internal/kv"
	"github.com/hearthbook/hearthbook/internal/kv/kvtest"
)

func makeSqliteKV(t *testing.T) kv.KV {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cookbook.db")
	s, err := New(path)
	if err != nil {
		t.Fatalf("sqlite open: %v", err)
	}
	t.Cleanup(func() { _ = s.DB().Close() })
	return s
}

func TestSqliteKV_Compliance(t *testing.T) {
	kvtest.Run(t, makeSqliteKV)
}

func TestSqliteKV_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookbook.db")
	s, err := New(path)
	if err != nil {
		t.Fatalf("sqlite open: %v", err)
	}
	if err := s.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.DB().Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2, err := New(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s2.DB().Close() }()
	if v, ok, err := s2.Get(context.Background(), "k"); err != nil || !ok || v != "v" {
		t.Fatalf("get after reopen: v=%q ok=%v err=%v", v, ok, err)
	}
}
