// Package permission contains permission matrix use cases.
package permission

import (
	"context"

	"github.com/dapur-ledger/backend/internal/domain/entity"
	"github.com/dapur-ledger/backend/internal/domain/rbac"
)

// ResolveAccessUseCase answers access questions against the effective matrix:
// landing tab resolution and per-tab gate checks.
type ResolveAccessUseCase struct {
	getMatrix *GetMatrixUseCase
}

// NewResolveAccessUseCase creates a new ResolveAccessUseCase instance.
func NewResolveAccessUseCase(getMatrix *GetMatrixUseCase) *ResolveAccessUseCase {
	return &ResolveAccessUseCase{
		getMatrix: getMatrix,
	}
}

// DefaultTab returns the first accessible tab for role in priority order. The
// boolean is false when the role can access no tab at all.
func (uc *ResolveAccessUseCase) DefaultTab(ctx context.Context, role entity.Role) (rbac.Category, bool, error) {
	out, err := uc.getMatrix.Execute(ctx)
	if err != nil {
		return "", false, err
	}
	tab, ok := rbac.DefaultTab(out.Matrix, role)
	return tab, ok, nil
}

// Can reports whether role may perform action in category.
func (uc *ResolveAccessUseCase) Can(ctx context.Context, role entity.Role, category rbac.Category, action rbac.Action) (bool, error) {
	out, err := uc.getMatrix.Execute(ctx)
	if err != nil {
		return false, err
	}
	return rbac.HasPermission(out.Matrix, role, category, action), nil
}

// CanOpenTab reports whether role may open the given tab.
func (uc *ResolveAccessUseCase) CanOpenTab(ctx context.Context, role entity.Role, tab rbac.Category) (bool, error) {
	out, err := uc.getMatrix.Execute(ctx)
	if err != nil {
		return false, err
	}
	return rbac.CheckTabAccess(tab, role, out.Matrix), nil
}
