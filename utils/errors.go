package utils

import (
	"errors"
	"net/http"
)

// Taxonomia de erros das operações: campos obrigatórios ausentes
// (ValidationError), violação de invariante de estado (ConflictError),
// entidade referenciada inexistente (NotFoundError). Qualquer outro erro é
// tratado como falha interna (500).

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func NewConflictError(msg string) error {
	return &ConflictError{Msg: msg}
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

// HTTPStatus mapeia um erro da taxonomia para o código HTTP correspondente.
func HTTPStatus(err error) int {
	var (
		validation *ValidationError
		conflict   *ConflictError
		notFound   *NotFoundError
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &conflict):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
