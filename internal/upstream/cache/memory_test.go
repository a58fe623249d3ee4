package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory(0)
	ctx := context.Background()

	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	if err := m.Set(ctx, "k", []byte("v1"), []string{"stores"}, "s1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := m.Get(ctx, "k")
	if err != nil || !ok || string(got) != "v1" {
		t.Fatalf("get after set: %q ok=%v err=%v", got, ok, err)
	}

	// Last writer wins.
	_ = m.Set(ctx, "k", []byte("v2"), []string{"stores"}, "s1")
	got, _, _ = m.Get(ctx, "k")
	if string(got) != "v2" {
		t.Fatalf("expected v2, got %q", got)
	}
}

func TestMemory_TagInvalidation(t *testing.T) {
	m := NewMemory(0)
	ctx := context.Background()

	_ = m.Set(ctx, "stores-a", []byte("a"), []string{"stores"}, "s1")
	_ = m.Set(ctx, "stores-b", []byte("b"), []string{"stores"}, "s2")
	_ = m.Set(ctx, "users-a", []byte("u"), []string{"users"}, "s1")

	if err := m.Invalidate(ctx, "stores"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	if _, ok, _ := m.Get(ctx, "stores-a"); ok {
		t.Fatalf("tagged entry survived invalidation")
	}
	if _, ok, _ := m.Get(ctx, "stores-b"); ok {
		t.Fatalf("tagged entry in other session survived invalidation")
	}
	if _, ok, _ := m.Get(ctx, "users-a"); !ok {
		t.Fatalf("untagged entry was dropped")
	}
}

func TestMemory_PurgeSession(t *testing.T) {
	m := NewMemory(0)
	ctx := context.Background()

	_ = m.Set(ctx, "a", []byte("a"), []string{"stores"}, "s1")
	_ = m.Set(ctx, "b", []byte("b"), []string{"stores"}, "s2")

	if err := m.PurgeSession(ctx, "s1"); err != nil {
		t.Fatalf("purge: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "a"); ok {
		t.Fatalf("session entry survived purge")
	}
	if _, ok, _ := m.Get(ctx, "b"); !ok {
		t.Fatalf("other session's entry was dropped")
	}
}

func TestMemory_TTL(t *testing.T) {
	m := NewMemory(time.Minute)
	base := time.Now()
	m.now = func() time.Time { return base }
	ctx := context.Background()

	_ = m.Set(ctx, "k", []byte("v"), nil, "")
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatalf("fresh entry missing")
	}

	m.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatalf("expired entry still served")
	}
}
