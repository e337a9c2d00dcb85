// Package kvtest holds a compliance suite run against every KV driver.
package kvtest

import (
	"context"
	"testing"

	"github.com/hearthbook/hearthbook/internal/kv"
)

// Run exercises the KV contract against a driver. Implementations should
// provide a clean, isolated store from makeKV.
func Run(t *testing.T, makeKV func(t *testing.T) kv.KV) {
	t.Helper()

	s := makeKV(t)
	ctx := context.Background()

	// Absent key
	if v, ok, err := s.Get(ctx, "missing"); err != nil || ok || v != "" {
		t.Fatalf("Get missing: v=%q ok=%v err=%v", v, ok, err)
	}

	// Set then Get
	if err := s.Set(ctx, "a", "one"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, err := s.Get(ctx, "a"); err != nil || !ok || v != "one" {
		t.Fatalf("Get a: v=%q ok=%v err=%v", v, ok, err)
	}

	// Overwrite replaces the prior value
	if err := s.Set(ctx, "a", "two"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, _, _ := s.Get(ctx, "a"); v != "two" {
		t.Fatalf("Get after overwrite: v=%q", v)
	}

	// Values round-trip verbatim, including JSON documents
	doc := `{"settings":{"id":"x"},"recipes":[]}`
	if err := s.Set(ctx, "doc", doc); err != nil {
		t.Fatalf("Set doc: %v", err)
	}
	if v, _, _ := s.Get(ctx, "doc"); v != doc {
		t.Fatalf("doc round-trip: %q", v)
	}

	// Remove, and removing an absent key is fine
	if err := s.Remove(ctx, "a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "a"); ok {
		t.Fatal("key present after Remove")
	}
	if err := s.Remove(ctx, "a"); err != nil {
		t.Fatalf("Remove absent: %v", err)
	}
}
