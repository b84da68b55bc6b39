package weather

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"trpc.group/trpc-go/trpc-a2a-go/protocol"
	"trpc.group/trpc-go/trpc-a2a-go/taskmanager"

	"github.com/nimbusworks/weatherd/pkg/telemetry"
)

// Processor translates inbound A2A messages into agent answers.
type Processor struct {
	agent  *Agent
	logger *slog.Logger
}

func NewProcessor(agent *Agent, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{agent: agent, logger: logger}
}

func (p *Processor) ProcessMessage(
	ctx context.Context,
	message protocol.Message,
	options taskmanager.ProcessOptions,
	handle taskmanager.TaskHandler,
) (*taskmanager.MessageProcessingResult, error) {
	text := extractText(message)
	if text == "" {
		telemetry.Metrics.ErrorsTotal.WithLabelValues("weather").Inc()
		return nil, fmt.Errorf("no text found in message")
	}

	ctx, span := telemetry.StartSpan(ctx, "weather.answer")
	defer span.End()

	answer, outcome := p.agent.Answer(text)
	span.SetAttributes(attribute.String("weather.outcome", string(outcome)))
	telemetry.Metrics.QuestionsTotal.WithLabelValues(string(outcome)).Inc()

	p.logger.Debug("answered weather question",
		slog.String("outcome", string(outcome)),
		slog.Int("question_len", len(text)),
	)

	response := protocol.NewMessage(
		protocol.MessageRoleAgent,
		[]protocol.Part{protocol.NewTextPart(answer)},
	)
	return &taskmanager.MessageProcessingResult{
		Result: &response,
	}, nil
}

func extractText(message protocol.Message) string {
	for _, part := range message.Parts {
		if textPart, ok := part.(*protocol.TextPart); ok {
			return textPart.Text
		}
	}
	return ""
}
