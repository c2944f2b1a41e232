package cache_test

import (
	"context"
	"testing"

	"github.com/koperasi/finance-engine/cache"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("expected miss on empty cache")
	}

	if err := c.Set(ctx, "loan:10000000:12:36", `{"monthly_payment":332143}`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, ok := c.Get(ctx, "loan:10000000:12:36")
	if !ok || val != `{"monthly_payment":332143}` {
		t.Errorf("Get = (%q, %v)", val, ok)
	}
}

// Compile-time checks that both implementations satisfy Cache.
var (
	_ cache.Cache = (*cache.Memory)(nil)
	_ cache.Cache = (*cache.Redis)(nil)
)
