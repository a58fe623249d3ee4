package handler

import (
	"github.com/storeratings/storefront/internal/core/domain"
)

// MenuItem is one navigation entry in the authenticated frame.
type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Shell is the persistent frame around every authenticated view: who is
// signed in, their role-scoped menu, and the sign-out action.
type Shell struct {
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Menu        []MenuItem `json:"menu"`
	SignOutPath string     `json:"sign_out_path"`
}

// menuByRole is static per role. Regular users and store owners also get
// the password page; admins manage everything from their dashboard.
var menuByRole = map[string][]MenuItem{
	domain.RoleUser: {
		{Label: "Dashboard", Path: "/dashboard"},
		{Label: "Update Password", Path: "/update-password"},
	},
	domain.RoleStoreOwner: {
		{Label: "Dashboard", Path: "/store-owner-dashboard"},
		{Label: "Update Password", Path: "/update-password"},
	},
	domain.RoleAdmin: {
		{Label: "Admin Dashboard", Path: "/admin"},
	},
}

// NewShell builds the frame for an admitted identity.
func NewShell(ident domain.Identity) Shell {
	return Shell{
		Name:        ident.Name,
		Role:        ident.Role,
		Menu:        menuByRole[ident.Role],
		SignOutPath: "/logout",
	}
}
