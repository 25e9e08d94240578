// Package message defines the notification payloads and the two ways of
// creating them.
//
// A Message is immutable text plus a variant-specific formatting rule:
//
//   - SimpleMessage: the content verbatim
//   - UrgentMessage: "[URGENTE] " + content
//   - PromotionalMessage: "[PROMOÇÃO] " + content + " Aproveite!"
//
// # Simple Factory
//
// New dispatches on a case-insensitive type tag and fails with an
// *UnknownTypeError (wrapping ErrUnknownType) for anything outside
// simple, urgent and promotional:
//
//	msg, err := message.New("URGENT", "Falha crítica detectada no servidor XYZ.")
//	if errors.Is(err, message.ErrUnknownType) {
//	    // handle bad tag
//	}
//
// MustNew panics instead, for call sites where a bad tag is a programming
// error.
//
// # Factory Method
//
// Creator has one implementation per variant. A creator is bound to its
// product at compile time, so CreateMessage has no failure path:
//
//	var c message.Creator = message.UrgentCreator{}
//	msg := c.CreateMessage("Falha crítica detectada no servidor XYZ.")
//
// Both mechanisms produce messages with identical Format output for the
// same tag and content.
package message
