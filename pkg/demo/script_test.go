package demo_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifier/pkg/demo"
	"github.com/dmitrymomot/notifier/pkg/logger"
	"github.com/dmitrymomot/notifier/pkg/message"
	"github.com/dmitrymomot/notifier/pkg/notifications"
)

const deliveries = `Enviando %[1]s para: %[2]s
Mensagem: Bem-vindo(a) ao nosso sistema!
%[1]s enviado com sucesso.

Enviando %[1]s para: %[3]s
Mensagem: [URGENTE] Falha crítica detectada no servidor XYZ.
%[1]s enviado com sucesso.

Enviando %[1]s para: %[4]s
Mensagem: [PROMOÇÃO] Desconto de 20%% em todos os produtos. Aproveite!
%[1]s enviado com sucesso.

`

func expected(emailHeader, smsHeader string) string {
	var b strings.Builder
	b.WriteString(emailHeader + "\n")
	b.WriteString(fmt.Sprintf(deliveries, "Email", "aluno@exemplo.com", "admin@exemplo.com", "cliente@exemplo.com"))
	b.WriteString(smsHeader + "\n")
	b.WriteString(fmt.Sprintf(deliveries, "SMS", "+5511912345678", "+5521987654321", "+5544998765432"))
	return b.String()
}

func run(t *testing.T, script demo.Script) string {
	t.Helper()
	out := &bytes.Buffer{}
	svc := notifications.NewService(
		notifications.WithOutput(out),
		notifications.WithLogger(logger.New(logger.WithOutput(&bytes.Buffer{}))),
	)
	require.NoError(t, demo.Run(context.Background(), out, svc, script))
	return out.String()
}

func TestRun_SimpleFactory(t *testing.T) {
	t.Parallel()

	script, err := demo.SimpleFactoryScript()
	require.NoError(t, err)

	assert.Equal(t,
		expected("--- Usando Estratégia de Email ---", "--- Mudando para Estratégia de SMS ---"),
		run(t, script),
	)
}

func TestRun_FactoryMethod(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		expected("--- [Factory Method] Usando Estratégia de Email ---", "--- [Factory Method] Mudando para Estratégia de SMS ---"),
		run(t, demo.FactoryMethodScript()),
	)
}

func TestScripts_SameMessages(t *testing.T) {
	t.Parallel()

	simple, err := demo.SimpleFactoryScript()
	require.NoError(t, err)
	method := demo.FactoryMethodScript()

	require.Len(t, simple.Messages, 3)
	assert.Equal(t, simple.Messages, method.Messages)
	assert.Equal(t, []message.Type{message.TypeSimple, message.TypeUrgent, message.TypePromotional},
		[]message.Type{method.Messages[0].Type(), method.Messages[1].Type(), method.Messages[2].Type()})
}

func TestRun_MissingMessageWarns(t *testing.T) {
	t.Parallel()

	script := demo.FactoryMethodScript()
	script.Messages = script.Messages[:2]

	got := run(t, script)
	assert.Equal(t, 2, strings.Count(got, notifications.WarnNilMessage))
	assert.Equal(t, 4, strings.Count(got, "enviado com sucesso."))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRun_WriterFailure(t *testing.T) {
	t.Parallel()

	svc := notifications.NewService(notifications.WithLogger(logger.New(logger.WithOutput(&bytes.Buffer{}))))
	err := demo.Run(context.Background(), failingWriter{}, svc, demo.FactoryMethodScript())
	assert.Error(t, err)
}

func TestRunID(t *testing.T) {
	t.Parallel()

	ctx := demo.WithRunID(context.Background(), "run-42")
	assert.Equal(t, "run-42", demo.RunIDFromContext(ctx))
	assert.Empty(t, demo.RunIDFromContext(context.Background()))

	attr, ok := demo.LogExtractor(ctx)
	require.True(t, ok)
	assert.Equal(t, "run_id", attr.Key)
	assert.Equal(t, "run-42", attr.Value.Any())

	_, ok = demo.LogExtractor(context.Background())
	assert.False(t, ok)
}

func TestRunID_InLogs(t *testing.T) {
	t.Parallel()

	logs := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(logs),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(demo.LogExtractor),
	)
	svc := notifications.NewService(notifications.WithLogger(log))

	ctx := demo.WithRunID(context.Background(), "run-7")
	require.NoError(t, demo.Run(ctx, &bytes.Buffer{}, svc, demo.FactoryMethodScript()))

	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		if strings.Contains(line, "notification delivered") {
			assert.Contains(t, line, `"run_id":"run-7"`)
		}
	}
	assert.Equal(t, 6, strings.Count(logs.String(), "notification delivered"))
}
