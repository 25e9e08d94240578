package notifications

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/dmitrymomot/notifier/pkg/message"
)

// Strategy delivers a message to a recipient through one channel.
// The returned error only reports a failure of the underlying output.
type Strategy interface {
	Send(ctx context.Context, msg message.Message, recipient string) error
}

// Channel is the label a strategy prints for its delivery medium.
type Channel string

const (
	ChannelEmail Channel = "Email"
	ChannelSMS   Channel = "SMS"
)

// ConsoleStrategy renders deliveries as plain text lines on a writer.
// Channels differ only in the label; the message is always rendered with
// message.Format.
type ConsoleStrategy struct {
	channel Channel
	out     io.Writer
}

// StrategyOption configures a ConsoleStrategy.
type StrategyOption func(*ConsoleStrategy)

// WithStrategyOutput redirects the rendered lines. Nil writers are ignored.
func WithStrategyOutput(w io.Writer) StrategyOption {
	return func(c *ConsoleStrategy) {
		if w != nil {
			c.out = w
		}
	}
}

// NewConsoleStrategy creates a strategy printing to stdout under the given channel label.
func NewConsoleStrategy(channel Channel, opts ...StrategyOption) *ConsoleStrategy {
	c := &ConsoleStrategy{
		channel: channel,
		out:     os.Stdout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func NewEmailStrategy(opts ...StrategyOption) *ConsoleStrategy {
	return NewConsoleStrategy(ChannelEmail, opts...)
}

func NewSMSStrategy(opts ...StrategyOption) *ConsoleStrategy {
	return NewConsoleStrategy(ChannelSMS, opts...)
}

// Channel returns the label, or an empty one on a nil receiver.
func (c *ConsoleStrategy) Channel() Channel {
	if c == nil {
		return ""
	}
	return c.channel
}

// Send writes three lines and a blank separator:
//
//	Enviando <channel> para: <recipient>
//	Mensagem: <formatted message>
//	<channel> enviado com sucesso.
func (c *ConsoleStrategy) Send(_ context.Context, msg message.Message, recipient string) error {
	if c == nil {
		return ErrNilStrategy
	}
	if msg == nil {
		return ErrNilMessage
	}

	_, err := fmt.Fprintf(c.out,
		"Enviando %s para: %s\nMensagem: %s\n%s enviado com sucesso.\n\n",
		c.channel, recipient, msg.Format(), c.channel,
	)
	if err != nil {
		return errors.Join(ErrDeliveryFailed, err)
	}
	return nil
}

// channelOf returns the channel label of s when it exposes one.
func channelOf(s Strategy) string {
	if c, ok := s.(interface{ Channel() Channel }); ok {
		return string(c.Channel())
	}
	return fmt.Sprintf("%T", s)
}

// isNilStrategy reports whether s is nil or an interface holding a nil value.
func isNilStrategy(s Strategy) bool {
	if s == nil {
		return true
	}
	switch v := reflect.ValueOf(s); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
