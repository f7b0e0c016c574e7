package web

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goserg/bizness/internal/auth/form"
)

var validate = validator.New()

// authRequest is the posted auth panel. Name is only asked for on register.
type authRequest struct {
	Name     string `form:"name" validate:"required_if=Register true"`
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
	Register bool   `form:"-"`
}

var fieldLabels = map[string]string{
	"Name":     "full name",
	"Email":    "email address",
	"Password": "password",
}

func (r authRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var joined error
	for _, fe := range verrs {
		joined = errors.Join(joined, fmt.Errorf("%s is required", fieldLabels[fe.Field()]))
	}
	return joined
}

func (r authRequest) fields() form.Fields {
	return form.Fields{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}
