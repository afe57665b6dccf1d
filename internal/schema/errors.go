package schema

import (
	"errors"
	"strings"
)

var (
	// ErrMalformedSchema документ не удалось разобрать как схему
	ErrMalformedSchema = errors.New("kvgen: malformed schema")
	// ErrInvalidSchema документ разобран, но нарушает правила схемы
	ErrInvalidSchema = errors.New("kvgen: invalid schema")
)

// SchemaError ошибка генерации одного документа схемы
type SchemaError struct {
	Source  string // Путь к документу
	Field   string // Ключ поля, если ошибка относится к полю
	Message string
	Kind    error // ErrMalformedSchema или ErrInvalidSchema
	Cause   error
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("kvgen: ")
	if e.Source != "" {
		b.WriteString(e.Source)
		b.WriteString(": ")
	}
	if e.Field != "" {
		b.WriteString("поле ")
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is сопоставляет ошибку с ErrMalformedSchema / ErrInvalidSchema
func (e *SchemaError) Is(target error) bool {
	return target == e.Kind
}

// Malformed создаёт ошибку разбора документа
func Malformed(source, message string, cause error) *SchemaError {
	return &SchemaError{Source: source, Message: message, Kind: ErrMalformedSchema, Cause: cause}
}

// Invalid создаёт ошибку нарушения правил схемы для поля
func Invalid(source, field, message string) *SchemaError {
	return &SchemaError{Source: source, Field: field, Message: message, Kind: ErrInvalidSchema}
}
