package webpath

import "github.com/goserg/bizness/internal/navigation"

const (
	Home       = "/"
	Auth       = "/auth"
	AuthToggle = Auth + "/toggle"
	AuthField  = Auth + "/field"
	Signout    = "/signout"
	Dashboard  = "/dashboard"
	Admin      = "/admin"
)

func Path() map[string]string {
	return map[string]string{
		"Home":       Home,
		"Auth":       Auth,
		"AuthToggle": AuthToggle,
		"AuthField":  AuthField,
		"SignOut":    Signout,
		"Dashboard":  Dashboard,
		"Admin":      Admin,
	}
}

// Route maps a navigation intent to the path that serves it.
func Route(intent navigation.Intent) string {
	switch intent {
	case navigation.Admin:
		return Admin
	case navigation.Dashboard:
		return Dashboard
	case navigation.Auth:
		return Auth
	default:
		return Home
	}
}
