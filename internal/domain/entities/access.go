package entities

// View is a reachable area of the application.
type View string

const (
	ViewLogin     View = "LOGIN"
	ViewDashboard View = "DASHBOARD"
	ViewPurchases View = "PURCHASES"
	ViewFinance   View = "FINANCE"
	ViewLogistics View = "LOGISTICS"
	ViewSettings  View = "SETTINGS"
)

// AllViews lists the screens reachable after login, in menu order.
var AllViews = []View{ViewDashboard, ViewPurchases, ViewFinance, ViewLogistics, ViewSettings}

// CanAccess reports whether a holder of roles may open view.
//
// ADMIN opens everything and DASHBOARD is open to every authenticated user.
// FINANCE, PURCHASES and LOGISTICS need their matching role; any other view
// is denied.
func CanAccess(roles []Role, view View) bool {
	if hasRole(roles, RoleAdmin) {
		return true
	}
	switch view {
	case ViewDashboard:
		return true
	case ViewFinance:
		return hasRole(roles, RoleFinance)
	case ViewPurchases:
		return hasRole(roles, RolePurchasing)
	case ViewLogistics:
		return hasRole(roles, RoleLogistics)
	default:
		return false
	}
}

func hasRole(roles []Role, role Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
