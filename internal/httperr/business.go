package httperr

import "errors"

const (
	CodeNoSlots          = "no_slots"
	CodeLoadFailed       = "load_failed"
	CodeInvalidResponse  = "invalid_response"
	CodeUnexpectedStatus = "unexpected_status"
	CodeControlNotFound  = "control_not_found"
	CodeUnknownOption    = "unknown_option"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
