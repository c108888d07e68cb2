package validation

import "regexp"

// EmailValidator reports whether a string is a well-formed email address.
type EmailValidator interface {
	IsValid(email string) bool
}

var emailRegexp = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

type regexpEmailValidator struct{}

// NewRegexpEmailValidator returns the production email format checker.
func NewRegexpEmailValidator() EmailValidator {
	return regexpEmailValidator{}
}

func (regexpEmailValidator) IsValid(email string) bool {
	return emailRegexp.MatchString(email)
}
