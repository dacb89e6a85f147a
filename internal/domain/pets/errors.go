package pets

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("pet not found")
	ErrAlreadyAdopted = errors.New("pet is already adopted")
	ErrStore          = errors.New("store error")
)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

// storeErr envuelve fallas del repositorio que no son errores de dominio.
func storeErr(err error) error {
	if err == nil ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAlreadyAdopted) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrStore) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStore, err)
}
