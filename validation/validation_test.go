package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type validatorSpy struct {
	err    error
	called bool
}

func (v *validatorSpy) Validate(input map[string]interface{}) error {
	v.called = true
	return v.err
}

func TestCompositeReturnsFirstErrorAndShortCircuits(t *testing.T) {
	errB := errors.New("b failed")
	a := &validatorSpy{}
	b := &validatorSpy{err: errB}
	c := &validatorSpy{}

	err := NewComposite(a, b, c).Validate(map[string]interface{}{})

	assert.Equal(t, errB, err)
	assert.True(t, a.called)
	assert.True(t, b.called)
	assert.False(t, c.called)
}

func TestCompositeReturnsNilWhenAllValidatorsPass(t *testing.T) {
	a := &validatorSpy{}
	b := &validatorSpy{}

	err := NewComposite(a, b).Validate(map[string]interface{}{})

	assert.NoError(t, err)
	assert.True(t, a.called)
	assert.True(t, b.called)
}

func TestRequiredField(t *testing.T) {
	missing := &MissingParamError{Param: "name"}

	tests := []struct {
		input   map[string]interface{}
		wantErr error
	}{
		{input: map[string]interface{}{}, wantErr: missing},
		{input: map[string]interface{}{"name": nil}, wantErr: missing},
		{input: map[string]interface{}{"name": ""}, wantErr: missing},
		{input: map[string]interface{}{"name": "any name"}},
	}

	for _, tt := range tests {
		err := NewRequiredField("name").Validate(tt.input)
		assert.Equal(t, tt.wantErr, err)
	}
}

func TestCompareFields(t *testing.T) {
	tests := []struct {
		input   map[string]interface{}
		wantErr error
	}{
		{
			input:   map[string]interface{}{"password": "pw1", "passwordConfirmation": "pw2"},
			wantErr: &InvalidParamError{Param: "passwordConfirmation"},
		},
		{input: map[string]interface{}{"password": "pw1", "passwordConfirmation": "pw1"}},
	}

	for _, tt := range tests {
		err := NewCompareFields("password", "passwordConfirmation").Validate(tt.input)
		assert.Equal(t, tt.wantErr, err)
	}
}

func TestCompareFieldsHandlesNonStringValues(t *testing.T) {
	// decoded JSON may carry arrays or objects in either field; the check
	// must report an outcome, never panic
	tests := []struct {
		input   map[string]interface{}
		wantErr error
	}{
		{
			input: map[string]interface{}{"password": "pw", "passwordConfirmation": []interface{}{"pw"}},
			wantErr: &InvalidParamError{Param: "passwordConfirmation"},
		},
		{
			input: map[string]interface{}{"password": []interface{}{"pw"}, "passwordConfirmation": []interface{}{"pw"}},
		},
		{
			input: map[string]interface{}{"password": map[string]interface{}{"a": 1}, "passwordConfirmation": "pw"},
			wantErr: &InvalidParamError{Param: "passwordConfirmation"},
		},
	}

	for _, tt := range tests {
		var err error
		assert.NotPanics(t, func() {
			err = NewCompareFields("password", "passwordConfirmation").Validate(tt.input)
		})
		assert.Equal(t, tt.wantErr, err)
	}
}

type emailValidatorStub struct {
	valid bool
	got   string
}

func (s *emailValidatorStub) IsValid(email string) bool {
	s.got = email
	return s.valid
}

func TestEmailValidation(t *testing.T) {
	stub := &emailValidatorStub{valid: false}
	err := NewEmail("email", stub).Validate(map[string]interface{}{"email": "a@bcom"})

	assert.Equal(t, &InvalidParamError{Param: "email"}, err)
	assert.Equal(t, "a@bcom", stub.got)

	stub.valid = true
	err = NewEmail("email", stub).Validate(map[string]interface{}{"email": "a@b.com"})
	assert.NoError(t, err)
}

func TestRegexpEmailValidator(t *testing.T) {
	v := NewRegexpEmailValidator()

	tests := []struct {
		email string
		want  bool
	}{
		{email: "", want: false},
		{email: "email", want: false},
		{email: "email@sdf", want: false},
		{email: "a@b.com", want: true},
		{email: "user.name+tag@example.co", want: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, v.IsValid(tt.email), tt.email)
	}
}
