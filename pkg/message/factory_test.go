package message_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifier/pkg/message"
)

func TestParseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want message.Type
	}{
		{"SIMPLE", message.TypeSimple},
		{"simple", message.TypeSimple},
		{"Simple", message.TypeSimple},
		{"URGENT", message.TypeUrgent},
		{"uRgEnT", message.TypeUrgent},
		{"PROMOTIONAL", message.TypePromotional},
		{"promotional", message.TypePromotional},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			got, err := message.ParseType(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_UnknownType(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"bogus", "", " simple", "simples", "URGENTE"} {
		tag := tag
		t.Run(tag, func(t *testing.T) {
			t.Parallel()
			m, err := message.New(tag, "x")
			assert.Nil(t, m)
			require.Error(t, err)
			assert.ErrorIs(t, err, message.ErrUnknownType)
			assert.True(t, message.IsUnknownTypeError(err))

			var typeErr *message.UnknownTypeError
			require.True(t, errors.As(err, &typeErr))
			assert.Equal(t, tag, typeErr.Type)
			assert.Equal(t, "tipo de mensagem desconhecido: "+tag+" (known: promotional, simple, urgent)", err.Error())
		})
	}
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { message.MustNew("bogus", "x") })
	assert.NotPanics(t, func() {
		m := message.MustNew("PROMOTIONAL", "x")
		assert.Equal(t, "[PROMOÇÃO] x Aproveite!", m.Format())
	})
}

func TestTypes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []message.Type{
		message.TypePromotional,
		message.TypeSimple,
		message.TypeUrgent,
	}, message.Types())
}

// Simple Factory and Factory Method must be observationally equivalent.
func TestFactoriesAgree(t *testing.T) {
	t.Parallel()

	creators := map[message.Type]message.Creator{
		message.TypeSimple:      message.SimpleCreator{},
		message.TypeUrgent:      message.UrgentCreator{},
		message.TypePromotional: message.PromotionalCreator{},
	}

	tags := []string{"simple", "SIMPLE", "urgent", "Urgent", "promotional", "PROMOTIONAL"}

	for _, tag := range tags {
		for _, c := range contents {
			fromFactory, err := message.New(tag, c)
			require.NoError(t, err)

			typ, err := message.ParseType(tag)
			require.NoError(t, err)

			fromCreator := creators[typ].CreateMessage(c)
			assert.Equal(t, fromFactory.Format(), fromCreator.Format(), "tag=%q content=%q", tag, c)
			assert.Equal(t, fromFactory.Type(), fromCreator.Type())
			assert.Equal(t, fromFactory, fromCreator)

			lookedUp, err := message.CreatorFor(typ)
			require.NoError(t, err)
			assert.Equal(t, fromFactory.Format(), lookedUp.CreateMessage(c).Format())
		}
	}
}

func TestCreatorFor_UnknownType(t *testing.T) {
	t.Parallel()
	c, err := message.CreatorFor(message.Type("bogus"))
	assert.Nil(t, c)
	assert.ErrorIs(t, err, message.ErrUnknownType)
}
