package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrNotFound            = errors.New("não encontrado")
	ErrValidation          = errors.New("dados inválidos")
	ErrInsufficientStock   = errors.New("estoque insuficiente")
	ErrInsufficientPayment = errors.New("pagamento insuficiente")
	ErrNoPendingSale       = errors.New("nenhuma venda pendente")
	ErrUnauthorized        = errors.New("não autorizado")
)

// Error pairs a kind with the message shown to the user.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...interface{}) error {
	return newError(ErrNotFound, format, args...)
}

func invalid(format string, args ...interface{}) error {
	return newError(ErrValidation, format, args...)
}

// errCentavos rejects an amount with digits past the cent.
func errCentavos(campo string) error {
	return invalid("O valor de %s deve ter no máximo duas casas decimais", campo)
}

func semVendaPendente() error {
	return newError(ErrNoPendingSale, "Nenhuma venda em andamento")
}

// notFoundOr turns gorm.ErrRecordNotFound into a NotFound with msg and passes
// every other error through.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound("%s", msg)
	}
	return err
}

// duplicadoOr turns a unique-constraint violation into a ValidationError.
func duplicadoOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return invalid("%s", msg)
	}
	return err
}
