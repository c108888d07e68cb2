package validation

type requiredField struct {
	field string
}

// NewRequiredField fails with a MissingParamError when the named field is
// absent, nil or the empty string.
func NewRequiredField(field string) Validator {
	return &requiredField{field: field}
}

func (v *requiredField) Validate(input map[string]interface{}) error {
	val, ok := input[v.field]
	if !ok || val == nil || val == "" {
		return &MissingParamError{Param: v.field}
	}
	return nil
}

type compareFields struct {
	field          string
	fieldToCompare string
}

// NewCompareFields fails with an InvalidParamError naming the second field
// when the two field values differ.
func NewCompareFields(field, fieldToCompare string) Validator {
	return &compareFields{field: field, fieldToCompare: fieldToCompare}
}

func (v *compareFields) Validate(input map[string]interface{}) error {
	a, _ := input[v.field].(string)
	b, _ := input[v.fieldToCompare].(string)
	if a != b {
		return &InvalidParamError{Param: v.fieldToCompare}
	}
	return nil
}

type email struct {
	field     string
	validator EmailValidator
}

// NewEmail fails with an InvalidParamError when the injected EmailValidator
// rejects the field value.
func NewEmail(field string, validator EmailValidator) Validator {
	return &email{field: field, validator: validator}
}

func (v *email) Validate(input map[string]interface{}) error {
	val, _ := input[v.field].(string)
	if !v.validator.IsValid(val) {
		return &InvalidParamError{Param: v.field}
	}
	return nil
}
