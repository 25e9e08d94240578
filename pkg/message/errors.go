package message

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrUnknownType is returned when a type tag matches no message variant.
var ErrUnknownType = errors.New("message.errors.unknown_type")

// UnknownTypeError carries the tag that failed to match any variant.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	known := lo.Map(Types(), func(t Type, _ int) string { return string(t) })
	return fmt.Sprintf("tipo de mensagem desconhecido: %s (known: %s)", e.Type, strings.Join(known, ", "))
}

// Unwrap allows errors.Is(err, ErrUnknownType).
func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

func NewUnknownTypeError(tag string) *UnknownTypeError {
	return &UnknownTypeError{Type: tag}
}

func IsUnknownTypeError(err error) bool {
	var e *UnknownTypeError
	return errors.As(err, &e)
}
