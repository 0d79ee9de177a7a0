package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// Error kinds understood by the HTTP layer. Services wrap them with context
// using fmt.Errorf("...: %w", Err...).
var (
	ErrNotFound       = errors.New("no existe")
	ErrConflict       = errors.New("conflicto")
	ErrUnauthorized   = errors.New("credenciales invalidas")
	ErrForbidden      = errors.New("permisos insuficientes")
	ErrRoleAssignment = errors.New("error al asignar rol")
	ErrUnavailable    = errors.New("servicio no disponible")
	ErrUpstream       = errors.New("error en servicio externo")
)

// FieldError is a validation failure tied to request fields.
type FieldError struct {
	Fields map[string]string
}

func (e *FieldError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validacion: " + strings.Join(parts, ", ")
}

// Invalid builds a FieldError for a single field.
func Invalid(field, msg string) *FieldError {
	return &FieldError{Fields: map[string]string{field: msg}}
}

// storeErr converts ORM errors into service error kinds.
func storeErr(err error, entidad string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s %w", entidad, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s duplicado: %w", entidad, ErrConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Invalid("referencia", "la entidad relacionada no existe o tiene dependencias")
	default:
		return err
	}
}
