package access

import (
	"github.com/helmethub/dealerdesk/sessioninfo"
)

// MenuItem is one sidebar entry. An empty Permission means every
// authenticated user sees it.
type MenuItem struct {
	Label      string
	Path       string
	Permission string
}

// DefaultMenu is the dashboard sidebar in display order.
var DefaultMenu = []MenuItem{
	{Label: "Dashboard", Path: "/"},
	{Label: "Customers", Path: "/customers"},
	{Label: "Customer Information", Path: "/customer-information"},
	{Label: "Warranty Registration", Path: "/warranty-registration"},
	{Label: "Warranty Check", Path: "/warranty-check"},
	{Label: "Products", Path: "/products"},
	{Label: "Models", Path: "/models"},
	{Label: "Users", Path: "/users", Permission: PreviewUser},
	{Label: "Roles", Path: "/roles", Permission: PreviewRole},
	{Label: "Settings", Path: "/settings"},
	{Label: "Become a Dealer", Path: "/become-dealer"},
}

// Menu returns the items of menu visible to sess. It is recomputed on every
// render and never cached.
func Menu(sess *sessioninfo.Session, menu []MenuItem) []MenuItem {
	if !sess.Authenticated() {
		return nil
	}

	visible := make([]MenuItem, 0, len(menu))
	for _, item := range menu {
		if item.Permission != "" && !HasPermission(sess, item.Permission) {
			continue
		}
		visible = append(visible, item)
	}

	return visible
}
