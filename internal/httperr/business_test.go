package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsBusinessMatchesByCode(t *testing.T) {
	err := ErrBusiness(CodeEmailTaken)

	if !IsBusiness(err, CodeEmailTaken) {
		t.Error("must match its own code")
	}
	if IsBusiness(err, CodeInvalidCredentials) {
		t.Error("must not match a different code")
	}
	if !IsBusiness(fmt.Errorf("register user: %w", err), CodeEmailTaken) {
		t.Error("must match through wrapping")
	}
	if IsBusiness(errors.New("plain failure"), CodeEmailTaken) {
		t.Error("plain errors are not business errors")
	}
	if IsBusiness(nil, CodeEmailTaken) {
		t.Error("nil is not a business error")
	}
}
