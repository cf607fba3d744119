// Package permission contains permission matrix use cases.
package permission

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/domain/rbac"
)

// MatrixSource says where a returned matrix came from.
type MatrixSource string

const (
	SourceStore    MatrixSource = "store"
	SourceCache    MatrixSource = "cache"
	SourceDefaults MatrixSource = "defaults"
)

// GetMatrixOutput carries the effective matrix and its provenance.
type GetMatrixOutput struct {
	Matrix rbac.Matrix
	Source MatrixSource
}

// GetMatrixUseCase resolves the effective permission matrix: cache first, then
// the store, then the compiled-in defaults. The cache is read-through and best
// effort; a cold or unreachable cache only costs a store round trip.
type GetMatrixUseCase struct {
	permissionRepo adapter.PermissionRepository
	cache          adapter.PermissionCache
}

// NewGetMatrixUseCase creates a new GetMatrixUseCase instance.
func NewGetMatrixUseCase(permissionRepo adapter.PermissionRepository, cache adapter.PermissionCache) *GetMatrixUseCase {
	return &GetMatrixUseCase{
		permissionRepo: permissionRepo,
		cache:          cache,
	}
}

// Execute returns the effective matrix. A store failure falls back to the
// defaults so permission checks keep working during an outage.
func (uc *GetMatrixUseCase) Execute(ctx context.Context) (*GetMatrixOutput, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx)
		if err == nil {
			return &GetMatrixOutput{Matrix: cached, Source: SourceCache}, nil
		}
		if !errors.Is(err, adapter.ErrCacheMiss) {
			slog.Warn("Permission cache read failed", "error", err)
		}
	}

	stored, err := uc.permissionRepo.Load(ctx)
	if err != nil {
		slog.Error("Failed to load permission matrix, serving defaults",
			"error", err,
			"code", domainerror.ErrCodePermissionMatrixLoad,
		)
		return &GetMatrixOutput{Matrix: rbac.DefaultMatrix(), Source: SourceDefaults}, nil
	}
	if len(stored) == 0 {
		return &GetMatrixOutput{Matrix: rbac.DefaultMatrix(), Source: SourceDefaults}, nil
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, stored); err != nil {
			slog.Warn("Permission cache write failed", "error", err)
		}
	}

	return &GetMatrixOutput{Matrix: stored, Source: SourceStore}, nil
}
