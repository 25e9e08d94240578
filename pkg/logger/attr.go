package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Channel records the delivery channel under the key "channel".
func Channel(name string) slog.Attr {
	return slog.String("channel", name)
}

// Recipient records the delivery target under the key "recipient".
func Recipient(to string) slog.Attr {
	return slog.String("recipient", to)
}

// MessageType records the message variant under the key "message_type".
// If t is nil, it returns an empty Attr.
func MessageType(t any) slog.Attr {
	if t == nil {
		return slog.Attr{}
	}
	return slog.Any("message_type", t)
}

// DeliveryID records the delivery identifier under the key "delivery_id".
// If id is nil, it returns an empty Attr.
func DeliveryID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("delivery_id", id)
}

// RunID records the run identifier under the key "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// State records a state machine state name under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}
