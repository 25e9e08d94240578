package message

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// constructors is the Simple Factory dispatch table. There is no default
// entry: an unmatched tag is always an error.
var constructors = map[Type]func(content string) Message{
	TypeSimple:      func(c string) Message { return NewSimple(c) },
	TypeUrgent:      func(c string) Message { return NewUrgent(c) },
	TypePromotional: func(c string) Message { return NewPromotional(c) },
}

// Types returns the known type tags in lexical order.
func Types() []Type {
	types := lo.Keys(constructors)
	slices.Sort(types)
	return types
}

// ParseType resolves a tag to a Type, ignoring case.
// Matching uses Unicode case folding, so "URGENT", "Urgent" and "urgent"
// all resolve to TypeUrgent.
func ParseType(tag string) (Type, error) {
	t := Type(cases.Fold().String(tag))
	if _, ok := constructors[t]; !ok {
		return "", NewUnknownTypeError(tag)
	}
	return t, nil
}

// New is the Simple Factory: it builds the message variant named by tag.
// The tag is only used for dispatch and is not stored on the message.
func New(tag, content string) (Message, error) {
	t, err := ParseType(tag)
	if err != nil {
		return nil, err
	}
	return constructors[t](content), nil
}

// MustNew is like New but panics on an unknown tag.
func MustNew(tag, content string) Message {
	m, err := New(tag, content)
	if err != nil {
		panic(fmt.Sprintf("failed to create message: %v", err))
	}
	return m
}
