package rest

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jimiolaniyan/goaccounts/usecase"
	"github.com/jimiolaniyan/goaccounts/validation"
)

type authenticationSpy struct {
	model usecase.AuthenticationModel
	token string
	err   error
	calls int
}

func (s *authenticationSpy) Auth(model usecase.AuthenticationModel) (string, error) {
	s.calls++
	s.model = model
	return s.token, s.err
}

func loginValidation() validation.Validator {
	return validation.NewComposite(
		validation.NewRequiredField("email"),
		validation.NewRequiredField("password"),
		validation.NewEmail("email", validation.NewRegexpEmailValidator()),
	)
}

func loginBody() map[string]interface{} {
	return map[string]interface{}{"email": "a@b.com", "password": "pw"}
}

func TestLoginReturns400ForMissingFields(t *testing.T) {
	for _, field := range []string{"email", "password"} {
		body := loginBody()
		delete(body, field)
		spy := &authenticationSpy{}
		c := NewLoginController(spy, loginValidation())

		res := c.Handle(Request{Body: body})

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, &validation.MissingParamError{Param: field}, res.Body)
		assert.Zero(t, spy.calls)
	}
}

func TestLoginReturns401WithEmptyBodyWhenNotAuthenticated(t *testing.T) {
	spy := &authenticationSpy{}
	c := NewLoginController(spy, loginValidation())

	res := c.Handle(Request{Body: loginBody()})

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Nil(t, res.Body)
	assert.Equal(t, usecase.AuthenticationModel{Email: "a@b.com", Password: "pw"}, spy.model)
}

func TestLoginReturns200WithAccessToken(t *testing.T) {
	c := NewLoginController(&authenticationSpy{token: "tok1"}, loginValidation())

	res := c.Handle(Request{Body: loginBody()})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, map[string]string{"accessToken": "tok1"}, res.Body)
}

func TestLoginReturns500WhenPipelineFails(t *testing.T) {
	cause := errors.New("store unreachable")
	c := NewLoginController(&authenticationSpy{err: cause}, loginValidation())

	res := c.Handle(Request{Body: loginBody()})

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, &ServerError{Cause: cause}, res.Body)
}
