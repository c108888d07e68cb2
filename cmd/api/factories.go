package main

import (
	"log/slog"

	"github.com/jimiolaniyan/goaccounts/config"
	"github.com/jimiolaniyan/goaccounts/crypto"
	"github.com/jimiolaniyan/goaccounts/mongodb"
	"github.com/jimiolaniyan/goaccounts/rest"
	"github.com/jimiolaniyan/goaccounts/usecase"
	"github.com/jimiolaniyan/goaccounts/validation"
)

// makeSignUpValidation fixes the observable check order: required fields
// first, then password confirmation, then email format.
func makeSignUpValidation() validation.Validator {
	validators := []validation.Validator{}
	for _, field := range []string{"name", "email", "password", "passwordConfirmation"} {
		validators = append(validators, validation.NewRequiredField(field))
	}
	validators = append(validators, validation.NewCompareFields("password", "passwordConfirmation"))
	validators = append(validators, validation.NewEmail("email", validation.NewRegexpEmailValidator()))
	return validation.NewComposite(validators...)
}

func makeLoginValidation() validation.Validator {
	validators := []validation.Validator{}
	for _, field := range []string{"email", "password"} {
		validators = append(validators, validation.NewRequiredField(field))
	}
	validators = append(validators, validation.NewEmail("email", validation.NewRegexpEmailValidator()))
	return validation.NewComposite(validators...)
}

func makeSignUpController(cfg config.Config, client *mongodb.Client, logger *slog.Logger) rest.Controller {
	accounts := mongodb.NewAccountRepository(client.Collection("accounts"))
	addAccount := usecase.NewDBAddAccount(crypto.NewBcryptAdapter(cfg.BcryptCost), accounts)

	controller := rest.NewSignUpController(addAccount, makeSignUpValidation())
	return rest.NewLogControllerDecorator(controller, logger, mongodb.NewLogRepository(client.Collection("errors")))
}

func makeLoginController(cfg config.Config, client *mongodb.Client, logger *slog.Logger) rest.Controller {
	accounts := mongodb.NewAccountRepository(client.Collection("accounts"))
	auth := usecase.NewDBAuthentication(
		accounts,
		crypto.NewBcryptAdapter(cfg.BcryptCost),
		crypto.NewJWTAdapter(cfg.JWTSecret),
		accounts,
	)

	controller := rest.NewLoginController(auth, makeLoginValidation())
	return rest.NewLogControllerDecorator(controller, logger, mongodb.NewLogRepository(client.Collection("errors")))
}
