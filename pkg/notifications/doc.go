// Package notifications delivers messages through interchangeable
// strategies selected at runtime.
//
// # Architecture
//
//   - Strategy: delivers one message to one recipient over a channel.
//     ConsoleStrategy renders to a writer; NewEmailStrategy and
//     NewSMSStrategy differ only in the channel label.
//   - Service: holds the current strategy and forwards sends to it.
//
// Service tracks whether a strategy is selected with a two-state machine
// (no_strategy, has_strategy) from the statemachine package. SetStrategy
// fires the set_strategy event; the transition action performs the swap.
//
// # Usage
//
//	svc := notifications.NewService()
//	svc.SetStrategy(notifications.NewEmailStrategy())
//
//	msg := message.NewUrgent("Falha crítica detectada no servidor XYZ.")
//	_ = svc.SendNotification(ctx, msg, "admin@exemplo.com")
//
// prints:
//
//	Enviando Email para: admin@exemplo.com
//	Mensagem: [URGENTE] Falha crítica detectada no servidor XYZ.
//	Email enviado com sucesso.
//
// # Error Handling
//
// Misuse of the service is not an error. Sending with no strategy selected
// or with a nil message writes WarnNoStrategy or WarnNilMessage followed by
// a blank line and returns nil. Only a failing writer produces an error,
// wrapping ErrDeliveryFailed when it comes from a strategy.
package notifications
