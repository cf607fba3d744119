// Package rbac implements the role-based permission model: a three-level
// role → category → action matrix with deny-by-default evaluation, structural
// point updates, and tab resolution. All functions are pure; callers own
// loading and persistence.
package rbac

import "github.com/dapur-ledger/backend/internal/domain/entity"

// Category is a permission category, matching one navigational tab each.
type Category string

const (
	CategoryDashboard    Category = "dashboard"
	CategoryTransactions Category = "transactions"
	CategoryOrders       Category = "orders"
	CategoryCategories   Category = "categories"
	CategoryAdmin        Category = "admin"
)

// TabPriority is the fixed order used to resolve a role's landing tab.
var TabPriority = []Category{
	CategoryDashboard,
	CategoryTransactions,
	CategoryOrders,
	CategoryCategories,
	CategoryAdmin,
}

// Action is a permission action within a category.
type Action string

const (
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionExport  Action = "export"
	ActionReorder Action = "reorder"

	// Admin-category actions.
	ActionManageUsers       Action = "manageUsers"
	ActionManagePermissions Action = "managePermissions"
	ActionBackup            Action = "backup"
	ActionResetData         Action = "resetData"
)

// ActionGrants maps actions to their granted flag.
type ActionGrants map[Action]bool

// CategoryGrants maps categories to their action grants.
type CategoryGrants map[Category]ActionGrants

// Matrix is the full permission matrix for every role. A missing role,
// category, or action always evaluates to a deny.
type Matrix map[entity.Role]CategoryGrants

// HasPermission reports whether role may perform action in category.
// Fail-closed: any absent level denies.
func HasPermission(m Matrix, role entity.Role, category Category, action Action) bool {
	grants, ok := m[role]
	if !ok {
		return false
	}
	actions, ok := grants[category]
	if !ok {
		return false
	}
	return actions[action]
}

// DefaultTab returns the first tab in TabPriority whose view permission is
// granted to role. The second return is false when no tab is accessible; the
// caller is expected to render an access-denied state, not crash.
func DefaultTab(m Matrix, role entity.Role) (Category, bool) {
	for _, tab := range TabPriority {
		if HasPermission(m, role, tab, ActionView) {
			return tab, true
		}
	}
	return "", false
}

// CheckTabAccess reports whether role may open the given tab. Unknown tabs
// deny.
func CheckTabAccess(tab Category, role entity.Role, m Matrix) bool {
	for _, known := range TabPriority {
		if tab == known {
			return HasPermission(m, role, tab, ActionView)
		}
	}
	return false
}

// UpdatePermission returns a new matrix with exactly the (role, category,
// action) leaf set to value. The maps on the changed path are copied; every
// other branch is shared with the input, so unchanged roles and categories
// compare identical for cheap change detection.
func UpdatePermission(m Matrix, role entity.Role, category Category, action Action, value bool) Matrix {
	next := make(Matrix, len(m)+1)
	for r, grants := range m {
		next[r] = grants
	}

	grants := make(CategoryGrants, len(m[role])+1)
	for c, actions := range m[role] {
		grants[c] = actions
	}

	actions := make(ActionGrants, len(m[role][category])+1)
	for a, v := range m[role][category] {
		actions[a] = v
	}
	actions[action] = value

	grants[category] = actions
	next[role] = grants
	return next
}

// Clone returns a deep copy of the matrix.
func Clone(m Matrix) Matrix {
	next := make(Matrix, len(m))
	for r, grants := range m {
		cg := make(CategoryGrants, len(grants))
		for c, actions := range grants {
			ag := make(ActionGrants, len(actions))
			for a, v := range actions {
				ag[a] = v
			}
			cg[c] = ag
		}
		next[r] = cg
	}
	return next
}

// IsKnownCategory reports whether c is one of the fixed permission categories.
func IsKnownCategory(c Category) bool {
	for _, known := range TabPriority {
		if c == known {
			return true
		}
	}
	return false
}
