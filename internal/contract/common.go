package contract

import "github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/app"

type InputErrorCode = app.InputErrorCode

const (
	InputErrMissingField InputErrorCode = app.InputErrMissingField
	InputErrInvalidValue InputErrorCode = app.InputErrInvalidValue
)

type InputError = app.InputError
