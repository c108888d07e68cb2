package rest

import (
	"github.com/jimiolaniyan/goaccounts/usecase"
	"github.com/jimiolaniyan/goaccounts/validation"
)

// LoginController authenticates credentials and returns the issued token.
type LoginController struct {
	authentication usecase.Authentication
	validation     validation.Validator
}

func NewLoginController(auth usecase.Authentication, v validation.Validator) *LoginController {
	return &LoginController{authentication: auth, validation: v}
}

// Handle returns 400 with the first validation error, 401 with an empty body
// when the credentials are rejected, 200 with the access token, or 500 when
// a capability fails. The 401 carries no detail about which credential was
// wrong.
func (c *LoginController) Handle(req Request) Response {
	if err := c.validation.Validate(req.Body); err != nil {
		return badRequest(err)
	}

	email, _ := req.Body["email"].(string)
	password, _ := req.Body["password"].(string)

	token, err := c.authentication.Auth(usecase.AuthenticationModel{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return serverError(err)
	}
	if token == "" {
		return unauthorized()
	}

	return ok(map[string]string{"accessToken": token})
}
