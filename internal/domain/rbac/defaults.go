package rbac

import "github.com/dapur-ledger/backend/internal/domain/entity"

// categoryActions lists every known action per category. The default matrix
// carries an explicit entry for each pair so that administrators see the full
// grid when editing permissions.
var categoryActions = map[Category][]Action{
	CategoryDashboard:    {ActionView, ActionExport},
	CategoryTransactions: {ActionView, ActionCreate, ActionEdit, ActionDelete, ActionExport},
	CategoryOrders:       {ActionView, ActionCreate, ActionEdit, ActionDelete, ActionExport},
	CategoryCategories:   {ActionView, ActionCreate, ActionEdit, ActionDelete, ActionReorder},
	CategoryAdmin:        {ActionView, ActionManageUsers, ActionManagePermissions, ActionBackup, ActionResetData},
}

// IsKnownAction reports whether action exists within category.
func IsKnownAction(category Category, action Action) bool {
	for _, known := range categoryActions[category] {
		if action == known {
			return true
		}
	}
	return false
}

// DefaultMatrix returns the compiled-in permission matrix used when no stored
// matrix can be loaded and to seed an empty store. Administrators get
// everything; managers get the bookkeeping surface without the admin tab;
// users get read access plus transaction and order entry.
func DefaultMatrix() Matrix {
	m := Matrix{}

	for _, role := range entity.Roles {
		grants := CategoryGrants{}
		for category, actions := range categoryActions {
			ag := ActionGrants{}
			for _, action := range actions {
				ag[action] = defaultGrant(role, category, action)
			}
			grants[category] = ag
		}
		m[role] = grants
	}

	return m
}

func defaultGrant(role entity.Role, category Category, action Action) bool {
	switch role {
	case entity.RoleAdministrator:
		return true
	case entity.RoleManager:
		return category != CategoryAdmin
	case entity.RoleUser:
		switch category {
		case CategoryDashboard:
			return action == ActionView
		case CategoryTransactions, CategoryOrders:
			return action == ActionView || action == ActionCreate
		}
		return false
	}
	return false
}
