package httperr

import "errors"

// Códigos de regra de negócio das operações de conta. Falhas de negócio
// não são erros de infra: sobem como BusinessError e o handler escolhe o
// status HTTP pelo código.
const (
	CodeEmailTaken         = "email_already_exists"
	CodeInvalidCredentials = "invalid_credentials"
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
