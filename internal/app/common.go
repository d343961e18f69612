package app

type InputErrorCode string

const (
	InputErrMissingField InputErrorCode = "MISSING_FIELD"
	InputErrInvalidValue InputErrorCode = "INVALID_VALUE"
)

type InputError struct {
	Code    InputErrorCode
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return string(e.Code) + ": " + e.Field + ": " + e.Message
}
