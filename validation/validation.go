// Package validation composes independent field checks over a decoded
// request body. Validators report outcomes as returned errors, never
// panics; a nil return means the input passed.
package validation

// Validator checks one aspect of a request body. Input is the decoded
// JSON object keyed by field name.
type Validator interface {
	Validate(input map[string]interface{}) error
}

// Composite runs validators in order and reports only the first failure.
type Composite struct {
	validators []Validator
}

func NewComposite(validators ...Validator) *Composite {
	return &Composite{validators: validators}
}

// Validate short-circuits on the first failing validator. Validators after
// the failing one are never invoked.
func (c *Composite) Validate(input map[string]interface{}) error {
	for _, v := range c.validators {
		if err := v.Validate(input); err != nil {
			return err
		}
	}
	return nil
}
