package validation

import "fmt"

// MissingParamError reports a required field that was absent from the input.
type MissingParamError struct {
	Param string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("missing param: %s", e.Param)
}

// InvalidParamError reports a field that failed a semantic check.
type InvalidParamError struct {
	Param string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid param: %s", e.Param)
}
