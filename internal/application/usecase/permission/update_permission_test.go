package permission

import (
	"context"
	"errors"
	"testing"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/domain/rbac"
)

type fakePermissionRepo struct {
	matrix    rbac.Matrix
	loadErr   error
	saveErr   error
	saveCalls int
}

func (f *fakePermissionRepo) Load(_ context.Context) (rbac.Matrix, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.matrix, nil
}

func (f *fakePermissionRepo) SaveRole(_ context.Context, role entity.Role, grants rbac.CategoryGrants) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.matrix == nil {
		f.matrix = rbac.Matrix{}
	}
	f.matrix[role] = grants
	return nil
}

func (f *fakePermissionRepo) Seed(_ context.Context, m rbac.Matrix) error {
	for role, grants := range m {
		if _, ok := f.matrix[role]; !ok {
			if f.matrix == nil {
				f.matrix = rbac.Matrix{}
			}
			f.matrix[role] = grants
		}
	}
	return nil
}

type fakePermissionCache struct {
	matrix      rbac.Matrix
	invalidated int
}

func (f *fakePermissionCache) Get(_ context.Context) (rbac.Matrix, error) {
	if f.matrix == nil {
		return nil, adapter.ErrCacheMiss
	}
	return f.matrix, nil
}

func (f *fakePermissionCache) Set(_ context.Context, m rbac.Matrix) error {
	f.matrix = m
	return nil
}

func (f *fakePermissionCache) Invalidate(_ context.Context) error {
	f.invalidated++
	f.matrix = nil
	return nil
}

func TestUpdatePermissionPersistsAndInvalidatesCache(t *testing.T) {
	repo := &fakePermissionRepo{matrix: rbac.DefaultMatrix()}
	cache := &fakePermissionCache{matrix: rbac.DefaultMatrix()}
	uc := NewUpdatePermissionUseCase(repo, cache)

	out, err := uc.Execute(context.Background(), UpdatePermissionInput{
		Role:     entity.RoleUser,
		Category: rbac.CategoryTransactions,
		Action:   rbac.ActionDelete,
		Value:    true,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !rbac.HasPermission(out.Matrix, entity.RoleUser, rbac.CategoryTransactions, rbac.ActionDelete) {
		t.Error("expected updated matrix to grant the toggled permission")
	}
	if !rbac.HasPermission(repo.matrix, entity.RoleUser, rbac.CategoryTransactions, rbac.ActionDelete) {
		t.Error("expected repository to hold the persisted grant")
	}
	if cache.invalidated != 1 {
		t.Errorf("cache invalidations = %d, want 1", cache.invalidated)
	}
}

func TestUpdatePermissionRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name  string
		input UpdatePermissionInput
	}{
		{
			name: "unknown role",
			input: UpdatePermissionInput{
				Role: entity.Role("superuser"), Category: rbac.CategoryOrders, Action: rbac.ActionView, Value: true,
			},
		},
		{
			name: "unknown category",
			input: UpdatePermissionInput{
				Role: entity.RoleManager, Category: rbac.Category("payroll"), Action: rbac.ActionView, Value: true,
			},
		},
		{
			name: "action outside category",
			input: UpdatePermissionInput{
				Role: entity.RoleManager, Category: rbac.CategoryDashboard, Action: rbac.ActionManageUsers, Value: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePermissionRepo{matrix: rbac.DefaultMatrix()}
			uc := NewUpdatePermissionUseCase(repo, nil)

			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, domainerror.ErrUnknownPermissionKey) {
				t.Fatalf("Execute() error = %v, want ErrUnknownPermissionKey", err)
			}
			if repo.saveCalls != 0 {
				t.Error("expected no persistence attempt for an unknown key")
			}
		})
	}
}

func TestUpdatePermissionReloadsAuthoritativeStateOnPersistFailure(t *testing.T) {
	repo := &fakePermissionRepo{
		matrix:  rbac.DefaultMatrix(),
		saveErr: errors.New("connection reset"),
	}
	uc := NewUpdatePermissionUseCase(repo, nil)

	out, err := uc.Execute(context.Background(), UpdatePermissionInput{
		Role:     entity.RoleUser,
		Category: rbac.CategoryOrders,
		Action:   rbac.ActionDelete,
		Value:    true,
	})
	if !errors.Is(err, domainerror.ErrPermissionPersist) {
		t.Fatalf("Execute() error = %v, want ErrPermissionPersist", err)
	}
	if out == nil {
		t.Fatal("expected authoritative matrix alongside the error")
	}
	if rbac.HasPermission(out.Matrix, entity.RoleUser, rbac.CategoryOrders, rbac.ActionDelete) {
		t.Error("expected returned matrix to reflect stored state, not the failed toggle")
	}
}

func TestUpdatePermissionSeedsFromDefaultsWhenStoreEmpty(t *testing.T) {
	repo := &fakePermissionRepo{}
	uc := NewUpdatePermissionUseCase(repo, nil)

	out, err := uc.Execute(context.Background(), UpdatePermissionInput{
		Role:     entity.RoleManager,
		Category: rbac.CategoryAdmin,
		Action:   rbac.ActionView,
		Value:    true,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// The toggle lands on top of the defaults.
	if !rbac.HasPermission(out.Matrix, entity.RoleManager, rbac.CategoryAdmin, rbac.ActionView) {
		t.Error("expected toggled grant on top of default matrix")
	}
	if !rbac.HasPermission(out.Matrix, entity.RoleManager, rbac.CategoryTransactions, rbac.ActionView) {
		t.Error("expected default grants to be preserved")
	}
}

func TestGetMatrixFallsBackToDefaultsOnLoadFailure(t *testing.T) {
	repo := &fakePermissionRepo{loadErr: errors.New("db down")}
	uc := NewGetMatrixUseCase(repo, nil)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Source != SourceDefaults {
		t.Errorf("Source = %q, want %q", out.Source, SourceDefaults)
	}
	if !rbac.HasPermission(out.Matrix, entity.RoleAdministrator, rbac.CategoryAdmin, rbac.ActionView) {
		t.Error("expected default matrix grants")
	}
}

func TestGetMatrixPrefersCache(t *testing.T) {
	repo := &fakePermissionRepo{loadErr: errors.New("should not be called")}
	cached := rbac.DefaultMatrix()
	cache := &fakePermissionCache{matrix: cached}
	uc := NewGetMatrixUseCase(repo, cache)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Source != SourceCache {
		t.Errorf("Source = %q, want %q", out.Source, SourceCache)
	}
}

func TestGetMatrixPopulatesCacheFromStore(t *testing.T) {
	repo := &fakePermissionRepo{matrix: rbac.DefaultMatrix()}
	cache := &fakePermissionCache{}
	uc := NewGetMatrixUseCase(repo, cache)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Source != SourceStore {
		t.Errorf("Source = %q, want %q", out.Source, SourceStore)
	}
	if cache.matrix == nil {
		t.Error("expected matrix to be written back to the cache")
	}
}
