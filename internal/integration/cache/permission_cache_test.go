package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	"github.com/dapur-ledger/backend/internal/domain/rbac"
)

func newTestCache(t *testing.T) (adapter.PermissionCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewPermissionCache(client), mr
}

func TestPermissionCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	if _, err := cache.Get(ctx); !errors.Is(err, adapter.ErrCacheMiss) {
		t.Fatalf("Get() on empty cache error = %v, want ErrCacheMiss", err)
	}

	matrix := rbac.DefaultMatrix()
	if err := cache.Set(ctx, matrix); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := cache.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !rbac.HasPermission(got, entity.RoleAdministrator, rbac.CategoryAdmin, rbac.ActionResetData) {
		t.Error("expected cached matrix to preserve admin grants")
	}
	if rbac.HasPermission(got, entity.RoleUser, rbac.CategoryAdmin, rbac.ActionView) {
		t.Error("expected cached matrix to preserve denies")
	}
}

func TestPermissionCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, rbac.DefaultMatrix()); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}

	if _, err := cache.Get(ctx); !errors.Is(err, adapter.ErrCacheMiss) {
		t.Fatalf("Get() after invalidate error = %v, want ErrCacheMiss", err)
	}
}

func TestPermissionCacheDownstreamFailureIsAMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, rbac.DefaultMatrix()); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	mr.Close()

	if _, err := cache.Get(ctx); !errors.Is(err, adapter.ErrCacheMiss) {
		t.Fatalf("Get() with redis down error = %v, want ErrCacheMiss", err)
	}
}

func TestPermissionCacheCorruptPayloadIsAMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	if err := mr.Set("rbac:matrix", "not json"); err != nil {
		t.Fatalf("seed error = %v", err)
	}

	if _, err := cache.Get(ctx); !errors.Is(err, adapter.ErrCacheMiss) {
		t.Fatalf("Get() with corrupt payload error = %v, want ErrCacheMiss", err)
	}
}
