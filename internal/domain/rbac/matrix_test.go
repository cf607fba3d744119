package rbac

import (
	"testing"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

func TestHasPermissionDenyByDefault(t *testing.T) {
	sparse := Matrix{
		entity.RoleManager: CategoryGrants{
			CategoryTransactions: ActionGrants{ActionView: true},
		},
	}

	tests := []struct {
		name     string
		matrix   Matrix
		role     entity.Role
		category Category
		action   Action
		want     bool
	}{
		{"granted leaf", sparse, entity.RoleManager, CategoryTransactions, ActionView, true},
		{"missing action", sparse, entity.RoleManager, CategoryTransactions, ActionDelete, false},
		{"missing category", sparse, entity.RoleManager, CategoryOrders, ActionView, false},
		{"missing role", sparse, entity.RoleUser, CategoryTransactions, ActionView, false},
		{"unknown role", sparse, entity.Role("Ghost"), CategoryTransactions, ActionView, false},
		{"unknown category", sparse, entity.RoleManager, Category("reports"), ActionView, false},
		{"empty matrix", Matrix{}, entity.RoleAdministrator, CategoryAdmin, ActionView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPermission(tt.matrix, tt.role, tt.category, tt.action); got != tt.want {
				t.Errorf("HasPermission() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdatePermission(t *testing.T) {
	base := DefaultMatrix()

	updated := UpdatePermission(base, entity.RoleUser, CategoryOrders, ActionDelete, true)

	if !HasPermission(updated, entity.RoleUser, CategoryOrders, ActionDelete) {
		t.Error("updated leaf should be granted")
	}
	if HasPermission(base, entity.RoleUser, CategoryOrders, ActionDelete) {
		t.Error("input matrix must not be mutated")
	}

	// Every other leaf is unchanged.
	for _, role := range entity.Roles {
		for category, actions := range categoryActions {
			for _, action := range actions {
				if role == entity.RoleUser && category == CategoryOrders && action == ActionDelete {
					continue
				}
				before := HasPermission(base, role, category, action)
				after := HasPermission(updated, role, category, action)
				if before != after {
					t.Errorf("leaf (%s,%s,%s) changed: %v -> %v", role, category, action, before, after)
				}
			}
		}
	}
}

func TestUpdatePermissionSharesUntouchedBranches(t *testing.T) {
	base := DefaultMatrix()
	updated := UpdatePermission(base, entity.RoleUser, CategoryOrders, ActionDelete, true)

	// Untouched branches are the same underlying maps: a write through the
	// base is visible through the updated matrix.
	base[entity.RoleManager][CategoryOrders][ActionView] = false
	if HasPermission(updated, entity.RoleManager, CategoryOrders, ActionView) {
		t.Error("untouched role branch should be shared with the input")
	}

	base[entity.RoleUser][CategoryDashboard][ActionView] = false
	if HasPermission(updated, entity.RoleUser, CategoryDashboard, ActionView) {
		t.Error("untouched category of the updated role should be shared")
	}

	// The changed category of the changed role is a fresh map.
	base[entity.RoleUser][CategoryOrders][ActionView] = false
	if !HasPermission(updated, entity.RoleUser, CategoryOrders, ActionView) {
		t.Error("updated category must not share its action map with the input")
	}
}

func TestUpdatePermissionIdempotent(t *testing.T) {
	base := DefaultMatrix()

	once := UpdatePermission(base, entity.RoleManager, CategoryAdmin, ActionView, true)
	twice := UpdatePermission(once, entity.RoleManager, CategoryAdmin, ActionView, true)

	for _, role := range entity.Roles {
		for category, actions := range categoryActions {
			for _, action := range actions {
				if HasPermission(once, role, category, action) != HasPermission(twice, role, category, action) {
					t.Fatalf("matrix changed on idempotent update at (%s,%s,%s)", role, category, action)
				}
			}
		}
	}
}

func TestDefaultTab(t *testing.T) {
	tests := []struct {
		name    string
		matrix  Matrix
		role    entity.Role
		want    Category
		granted bool
	}{
		{
			name:    "administrator lands on dashboard",
			matrix:  DefaultMatrix(),
			role:    entity.RoleAdministrator,
			want:    CategoryDashboard,
			granted: true,
		},
		{
			name: "first granted tab wins in priority order",
			matrix: Matrix{
				entity.RoleUser: CategoryGrants{
					CategoryOrders:     ActionGrants{ActionView: true},
					CategoryCategories: ActionGrants{ActionView: true},
				},
			},
			role:    entity.RoleUser,
			want:    CategoryOrders,
			granted: true,
		},
		{
			name:    "no grants yields no tab",
			matrix:  Matrix{},
			role:    entity.RoleUser,
			granted: false,
		},
		{
			name: "non-view grants do not open a tab",
			matrix: Matrix{
				entity.RoleUser: CategoryGrants{
					CategoryTransactions: ActionGrants{ActionCreate: true},
				},
			},
			role:    entity.RoleUser,
			granted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DefaultTab(tt.matrix, tt.role)
			if ok != tt.granted {
				t.Fatalf("DefaultTab() ok = %v, want %v", ok, tt.granted)
			}
			if ok && got != tt.want {
				t.Errorf("DefaultTab() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckTabAccess(t *testing.T) {
	m := DefaultMatrix()

	if !CheckTabAccess(CategoryTransactions, entity.RoleManager, m) {
		t.Error("manager should access transactions tab")
	}
	if CheckTabAccess(CategoryAdmin, entity.RoleManager, m) {
		t.Error("manager should not access admin tab")
	}
	if CheckTabAccess(Category("reports"), entity.RoleAdministrator, m) {
		t.Error("unknown tab must deny even for administrators")
	}
}

func TestDefaultMatrixCoversEveryKnownPair(t *testing.T) {
	m := DefaultMatrix()

	for _, role := range entity.Roles {
		grants, ok := m[role]
		if !ok {
			t.Fatalf("role %s missing from default matrix", role)
		}
		for category, actions := range categoryActions {
			ag, ok := grants[category]
			if !ok {
				t.Fatalf("category %s missing for role %s", category, role)
			}
			for _, action := range actions {
				if _, ok := ag[action]; !ok {
					t.Errorf("action %s missing for (%s,%s)", action, role, category)
				}
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	base := DefaultMatrix()
	copied := Clone(base)

	copied[entity.RoleUser][CategoryAdmin][ActionView] = true

	if HasPermission(base, entity.RoleUser, CategoryAdmin, ActionView) {
		t.Error("mutating a clone must not affect the original")
	}
}
