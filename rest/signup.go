package rest

import (
	"github.com/jimiolaniyan/goaccounts/usecase"
	"github.com/jimiolaniyan/goaccounts/validation"
)

// SignUpController registers a new account. Validation runs before any
// hashing or store access; a validation failure never reaches the pipeline.
type SignUpController struct {
	addAccount usecase.AddAccount
	validation validation.Validator
}

func NewSignUpController(addAccount usecase.AddAccount, v validation.Validator) *SignUpController {
	return &SignUpController{addAccount: addAccount, validation: v}
}

// Handle returns 400 with the first validation error, 200 with the persisted
// account, or 500 when the pipeline fails. The returned account carries the
// password hash; see DESIGN.md on why it is not stripped here.
func (c *SignUpController) Handle(req Request) Response {
	if err := c.validation.Validate(req.Body); err != nil {
		return badRequest(err)
	}

	name, _ := req.Body["name"].(string)
	email, _ := req.Body["email"].(string)
	password, _ := req.Body["password"].(string)

	acc, err := c.addAccount.Add(usecase.AddAccountModel{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return serverError(err)
	}

	return ok(acc)
}
