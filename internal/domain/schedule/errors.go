package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound é retornado quando o identificador referenciado não existe.
	ErrNotFound = errors.New("schedule: record not found")
)

// PartialWriteError marca uma sequência de escritas onde uma escrita
// anterior persistiu e uma posterior falhou. Não há rollback entre
// coleções; a inconsistência é exposta ao chamador, nunca escondida.
type PartialWriteError struct {
	Op  string
	Err error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("schedule: partial write during %s: %v", e.Op, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsPartialWrite(err error) bool {
	var pw *PartialWriteError
	return errors.As(err, &pw)
}
