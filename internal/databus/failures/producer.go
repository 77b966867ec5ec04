package failures

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/s21platform/chat-api/internal/config"
	"github.com/s21platform/chat-api/internal/model"
)

// Producer publishes one event per dropped message to the message DLQ
// topic, keyed by the message's upload id so a submitter can correlate
// the event with the acknowledgement it received.
type Producer struct {
	writer *kafka.Writer
}

func New(cfg *config.Config) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(net.JoinHostPort(cfg.Kafka.Host, cfg.Kafka.Port)),
			Topic:    cfg.Kafka.MessageDLQTopic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Producer) Close() {
	_ = p.writer.Close()
}

func (p *Producer) ReportFailure(ctx context.Context, message model.Message, cause error) error {
	event := model.MessageFailureEvent{
		MessageID:  message.ID,
		SenderID:   message.SenderID,
		RoomID:     message.RoomID,
		Reason:     cause.Error(),
		OccurredAt: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal failure event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(message.ID.String()),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish failure event: %w", err)
	}

	return nil
}
