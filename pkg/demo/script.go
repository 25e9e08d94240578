package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/dmitrymomot/notifier/pkg/message"
	"github.com/dmitrymomot/notifier/pkg/notifications"
)

// Message contents shared by both scripts.
const (
	WelcomeContent = "Bem-vindo(a) ao nosso sistema!"
	AlertContent   = "Falha crítica detectada no servidor XYZ."
	PromoContent   = "Desconto de 20% em todos os produtos."
)

// Recipients per channel, in send order.
var (
	EmailRecipients = []string{"aluno@exemplo.com", "admin@exemplo.com", "cliente@exemplo.com"}
	SMSRecipients   = []string{"+5511912345678", "+5521987654321", "+5544998765432"}
)

// Script is a fixed demonstration: three messages sent over email, then
// the same three over SMS.
type Script struct {
	EmailHeader string
	SMSHeader   string
	Messages    []message.Message
}

// SimpleFactoryScript builds the messages through the Simple Factory.
func SimpleFactoryScript() (Script, error) {
	tags := []string{"SIMPLE", "URGENT", "PROMOTIONAL"}
	contents := []string{WelcomeContent, AlertContent, PromoContent}

	msgs := make([]message.Message, 0, len(tags))
	for i, tag := range tags {
		m, err := message.New(tag, contents[i])
		if err != nil {
			return Script{}, err
		}
		msgs = append(msgs, m)
	}

	return Script{
		EmailHeader: "--- Usando Estratégia de Email ---",
		SMSHeader:   "--- Mudando para Estratégia de SMS ---",
		Messages:    msgs,
	}, nil
}

// FactoryMethodScript builds the messages through one creator per variant.
func FactoryMethodScript() Script {
	var (
		simpleCreator message.Creator = message.SimpleCreator{}
		urgentCreator message.Creator = message.UrgentCreator{}
		promoCreator  message.Creator = message.PromotionalCreator{}
	)

	return Script{
		EmailHeader: "--- [Factory Method] Usando Estratégia de Email ---",
		SMSHeader:   "--- [Factory Method] Mudando para Estratégia de SMS ---",
		Messages: []message.Message{
			simpleCreator.CreateMessage(WelcomeContent),
			urgentCreator.CreateMessage(AlertContent),
			promoCreator.CreateMessage(PromoContent),
		},
	}
}

// Run plays the script against svc. Headers and strategy output go to out;
// svc keeps its own output for warnings.
func Run(ctx context.Context, out io.Writer, svc *notifications.Service, script Script) error {
	phases := []struct {
		header     string
		strategy   notifications.Strategy
		recipients []string
	}{
		{script.EmailHeader, notifications.NewEmailStrategy(notifications.WithStrategyOutput(out)), EmailRecipients},
		{script.SMSHeader, notifications.NewSMSStrategy(notifications.WithStrategyOutput(out)), SMSRecipients},
	}

	for _, phase := range phases {
		if _, err := fmt.Fprintln(out, phase.header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		svc.SetStrategy(phase.strategy)

		for _, pair := range lo.Zip2(script.Messages, phase.recipients) {
			if err := svc.SendNotification(ctx, pair.A, pair.B); err != nil {
				return err
			}
		}
	}

	return nil
}
