// Package permission contains permission matrix use cases.
package permission

import (
	"context"
	"log/slog"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/domain/rbac"
)

// UpdatePermissionInput represents a single permission toggle.
type UpdatePermissionInput struct {
	Role     entity.Role
	Category rbac.Category
	Action   rbac.Action
	Value    bool
}

// UpdatePermissionOutput carries the matrix after the update attempt. On a
// persist failure Matrix holds the authoritative stored state, not the
// optimistic one.
type UpdatePermissionOutput struct {
	Matrix rbac.Matrix
}

// UpdatePermissionUseCase handles permission updates. The stored matrix is the
// source of truth: an update that cannot be persisted is discarded and the
// caller receives the reloaded authoritative state alongside the error.
type UpdatePermissionUseCase struct {
	permissionRepo adapter.PermissionRepository
	cache          adapter.PermissionCache
}

// NewUpdatePermissionUseCase creates a new UpdatePermissionUseCase instance.
func NewUpdatePermissionUseCase(permissionRepo adapter.PermissionRepository, cache adapter.PermissionCache) *UpdatePermissionUseCase {
	return &UpdatePermissionUseCase{
		permissionRepo: permissionRepo,
		cache:          cache,
	}
}

// Execute applies a single permission toggle and persists the affected role.
func (uc *UpdatePermissionUseCase) Execute(ctx context.Context, input UpdatePermissionInput) (*UpdatePermissionOutput, error) {
	if !entity.IsValidRole(input.Role) || !rbac.IsKnownCategory(input.Category) || !rbac.IsKnownAction(input.Category, input.Action) {
		return nil, domainerror.ErrUnknownPermissionKey
	}

	current, err := uc.permissionRepo.Load(ctx)
	if err != nil {
		return nil, domainerror.ErrPermissionMatrixLoad
	}
	if len(current) == 0 {
		current = rbac.DefaultMatrix()
	}

	updated := rbac.UpdatePermission(current, input.Role, input.Category, input.Action, input.Value)

	if err := uc.permissionRepo.SaveRole(ctx, input.Role, updated[input.Role]); err != nil {
		slog.Error("Failed to persist permission update, reloading stored matrix",
			"role", input.Role,
			"category", input.Category,
			"action", input.Action,
			"error", err,
		)
		authoritative, loadErr := uc.permissionRepo.Load(ctx)
		if loadErr != nil || len(authoritative) == 0 {
			authoritative = rbac.DefaultMatrix()
		}
		return &UpdatePermissionOutput{Matrix: authoritative}, domainerror.ErrPermissionPersist
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			slog.Warn("Permission cache invalidation failed", "error", err)
		}
	}

	slog.Info("Permission updated",
		"role", input.Role,
		"category", input.Category,
		"action", input.Action,
		"value", input.Value,
	)

	return &UpdatePermissionOutput{Matrix: updated}, nil
}
