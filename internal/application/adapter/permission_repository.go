// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"errors"

	"github.com/dapur-ledger/backend/internal/domain/entity"
	"github.com/dapur-ledger/backend/internal/domain/rbac"
)

// ErrCacheMiss is returned by PermissionCache.Get when no matrix is cached or
// the cache is unreachable.
var ErrCacheMiss = errors.New("permission matrix not cached")

// PermissionRepository defines the interface for permission matrix persistence.
// The matrix is stored per role; Load assembles the full matrix.
type PermissionRepository interface {
	// Load retrieves the full stored matrix. An empty store yields an empty
	// matrix and no error; callers decide the defaults fallback.
	Load(ctx context.Context) (rbac.Matrix, error)

	// SaveRole persists the grants of a single role.
	SaveRole(ctx context.Context, role entity.Role, grants rbac.CategoryGrants) error

	// Seed writes the given matrix for any role not yet present.
	Seed(ctx context.Context, m rbac.Matrix) error
}

// PermissionCache caches the assembled matrix between loads. Implementations
// must treat a miss and an unavailable cache identically (return ErrCacheMiss);
// the permission store degrades to repository-only when the cache is down.
type PermissionCache interface {
	// Get retrieves the cached matrix.
	Get(ctx context.Context) (rbac.Matrix, error)

	// Set stores the matrix.
	Set(ctx context.Context, m rbac.Matrix) error

	// Invalidate drops the cached matrix after an update.
	Invalidate(ctx context.Context) error
}
