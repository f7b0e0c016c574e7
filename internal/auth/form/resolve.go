package form

import (
	"github.com/goserg/bizness/internal/domain"
)

// The sign-in below accepts any credentials and is a stand-in for a real
// identity service. The admin pair is a published literal, not a secret.
const (
	AdminEmail    = "admin@gmail.com"
	AdminPassword = "123"
	AdminID       = "admin-id"
	AdminName     = "Administrator"

	DemoID   = "user-id"
	DemoName = "Demo User"
)

type Fields struct {
	Name     string
	Email    string
	Password string
}

// Resolve turns a submitted form into the identity it signs in as.
func Resolve(mode Mode, fields Fields, newID func() string) domain.Identity {
	if mode == Register {
		return domain.Identity{
			ID:    newID(),
			Name:  fields.Name,
			Email: fields.Email,
			Role:  domain.RoleUser,
		}
	}
	if fields.Email == AdminEmail && fields.Password == AdminPassword {
		return domain.Identity{
			ID:    AdminID,
			Name:  AdminName,
			Email: AdminEmail,
			Role:  domain.RoleAdmin,
		}
	}
	return domain.Identity{
		ID:    DemoID,
		Name:  DemoName,
		Email: fields.Email,
		Role:  domain.RoleUser,
	}
}
