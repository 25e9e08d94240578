package notifications

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/notifier/pkg/logger"
	"github.com/dmitrymomot/notifier/pkg/message"
	"github.com/dmitrymomot/notifier/pkg/statemachine"
)

// Service states and the event that moves between them.
const (
	StateNoStrategy  = statemachine.StringState("no_strategy")
	StateHasStrategy = statemachine.StringState("has_strategy")

	EventSetStrategy = statemachine.StringEvent("set_strategy")
)

// User-facing warnings printed instead of failing.
const (
	WarnNoStrategy = "Erro: Nenhuma estratégia de notificação foi definida."
	WarnNilMessage = "Erro: Mensagem não pode ser nula."
)

// Service forwards notifications to the currently selected Strategy.
type Service struct {
	mu       sync.RWMutex
	strategy Strategy
	state    *statemachine.Machine
	out      io.Writer
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithStrategy selects the initial strategy. A nil strategy, typed or
// not, leaves the service in StateNoStrategy.
func WithStrategy(s Strategy) ServiceOption {
	return func(svc *Service) {
		if isNilStrategy(s) {
			s = nil
		}
		svc.strategy = s
	}
}

// WithOutput sets where user-facing warnings are written. Nil writers are ignored.
func WithOutput(w io.Writer) ServiceOption {
	return func(svc *Service) {
		if w != nil {
			svc.out = w
		}
	}
}

// WithLogger sets the logger for the Service.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(svc *Service) {
		if l != nil {
			svc.logger = l
		}
	}
}

// NewService creates a service. Without WithStrategy it starts in
// StateNoStrategy and every send prints WarnNoStrategy until SetStrategy
// is called.
func NewService(opts ...ServiceOption) *Service {
	svc := &Service{
		out:    os.Stdout,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(svc)
	}

	initial := StateNoStrategy
	if svc.strategy != nil {
		initial = StateHasStrategy
	}

	// A non-nil strategy always lands in has_strategy; a nil one clears it.
	// Candidates are tried in order, so the unguarded one is the fallback.
	var transitions []statemachine.Option
	for _, from := range []statemachine.State{StateNoStrategy, StateHasStrategy} {
		transitions = append(transitions,
			statemachine.WithTransition(from, StateHasStrategy, EventSetStrategy,
				statemachine.WithGuard(isStrategy),
				statemachine.WithAction(svc.swap),
			),
			statemachine.WithTransition(from, StateNoStrategy, EventSetStrategy,
				statemachine.WithAction(svc.swap),
			),
		)
	}
	svc.state = statemachine.MustNew(initial, transitions...)

	return svc
}

func isStrategy(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
	s, ok := data.(Strategy)
	return ok && !isNilStrategy(s)
}

// swap runs under svc.mu held by SetStrategy.
func (svc *Service) swap(_ context.Context, _, _ statemachine.State, _ statemachine.Event, data any) error {
	s, _ := data.(Strategy)
	if isNilStrategy(s) {
		s = nil
	}
	svc.strategy = s
	return nil
}

// SetStrategy replaces the current strategy. It always succeeds.
// A nil strategy, including a typed nil pointer, clears the selection.
func (svc *Service) SetStrategy(s Strategy) {
	ctx := context.Background()
	if isNilStrategy(s) {
		s = nil
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	from := svc.state.Current()
	if err := svc.state.Fire(ctx, EventSetStrategy, s); err != nil {
		// Unreachable with the transition table above.
		svc.logger.LogAttrs(ctx, slog.LevelError, "failed to switch notification strategy",
			logger.State(from.Name()),
			logger.Error(err),
		)
		return
	}

	attrs := []slog.Attr{
		logger.Component("notifications"),
		logger.State(svc.state.Current().Name()),
	}
	if s != nil {
		attrs = append(attrs, logger.Channel(channelOf(s)))
	}
	svc.logger.LogAttrs(ctx, slog.LevelDebug, "notification strategy switched", attrs...)
}

// State returns the current service state.
func (svc *Service) State() statemachine.State {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.state.Current()
}

// SendNotification forwards msg to the current strategy.
//
// Misuse is reported softly: with no strategy selected, or with a nil
// message, a warning line is written to the service output and nil is
// returned without invoking any strategy. The strategy check comes first.
// A non-nil error means the output itself failed.
func (svc *Service) SendNotification(ctx context.Context, msg message.Message, recipient string) error {
	svc.mu.RLock()
	strategy := svc.strategy
	hasStrategy := svc.state.Is(StateHasStrategy)
	svc.mu.RUnlock()

	if !hasStrategy {
		svc.logger.LogAttrs(ctx, slog.LevelWarn, "notification skipped: no strategy selected",
			logger.Recipient(recipient),
		)
		return svc.warn(WarnNoStrategy)
	}

	if msg == nil {
		svc.logger.LogAttrs(ctx, slog.LevelWarn, "notification skipped: nil message",
			logger.Channel(channelOf(strategy)),
			logger.Recipient(recipient),
		)
		return svc.warn(WarnNilMessage)
	}

	deliveryID := uuid.New()

	if err := strategy.Send(ctx, msg, recipient); err != nil {
		svc.logger.LogAttrs(ctx, slog.LevelError, "failed to deliver notification",
			logger.DeliveryID(deliveryID.String()),
			logger.Channel(channelOf(strategy)),
			logger.Recipient(recipient),
			logger.Error(err),
		)
		return fmt.Errorf("failed to deliver notification %s: %w", deliveryID, err)
	}

	svc.logger.LogAttrs(ctx, slog.LevelDebug, "notification delivered",
		logger.DeliveryID(deliveryID.String()),
		logger.Channel(channelOf(strategy)),
		logger.MessageType(msg.Type()),
		logger.Recipient(recipient),
	)

	return nil
}

func (svc *Service) warn(text string) error {
	if _, err := fmt.Fprintf(svc.out, "%s\n\n", text); err != nil {
		return fmt.Errorf("failed to write warning: %w", err)
	}
	return nil
}
