package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidInput       = errors.New("entrada inválida")
)

// FieldErrors mapea campo -> mensajes de validación.
type FieldErrors map[string][]string

// NonFieldKey campo reservado para errores del registro completo (ej. discount vs price).
const NonFieldKey = "non_field_errors"

// ValidationError agrupa errores de validación por campo.
type ValidationError struct {
	Fields FieldErrors
}

// NewValidationError construye un error con un solo campo y mensaje.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: FieldErrors{field: {message}}}
}

// Add acumula un mensaje para un campo.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = FieldErrors{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty indica si no se acumuló ningún error.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Error implementa error con los campos en orden estable.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validación fallida"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return strings.Join(parts, " | ")
}

// AsValidationError devuelve el *ValidationError subyacente si err lo es.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
