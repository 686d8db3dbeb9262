package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DIMO-Network/cloudevent"
	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	wm_kafka "github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/aicruise/cruise-bot/internal/controllers/webhook"
	"github.com/google/uuid"
)

const (
	ConversationEventType   = "cruisebot.conversation"
	ConversationDataVersion = "cruisebot.conversation/v1.0"

	// senderMetadataKey carries the sender so all events of one conversation land on one partition.
	senderMetadataKey = "sender"
)

// NewKafkaPublisher creates a synchronous watermill publisher for the given brokers.
func NewKafkaPublisher(brokers []string, version sarama.KafkaVersion) (message.Publisher, error) {
	saramaConfig := wm_kafka.DefaultSaramaSyncPublisherConfig()
	saramaConfig.Version = version
	saramaConfig.Net.DialTimeout = 5 * time.Second
	saramaConfig.Net.WriteTimeout = 5 * time.Second
	saramaConfig.Producer.Timeout = 5 * time.Second

	publisher, err := wm_kafka.NewPublisher(
		wm_kafka.PublisherConfig{
			Brokers:               brokers,
			Marshaler:             conversationMarshaler(),
			OverwriteSaramaConfig: saramaConfig,
		},
		watermill.NewStdLogger(false, false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	return publisher, nil
}

func conversationMarshaler() wm_kafka.MarshalerUnmarshaler {
	return wm_kafka.NewWithPartitioningMarshaler(func(_ string, msg *message.Message) (string, error) {
		return msg.Metadata.Get(senderMetadataKey), nil
	})
}

// ConversationPublisher wraps conversation events in a CloudEvent and publishes them.
type ConversationPublisher struct {
	publisher message.Publisher
	topic     string
	source    string
}

// NewConversationPublisher creates a publisher writing to topic; source names this service in the event header.
func NewConversationPublisher(publisher message.Publisher, topic, source string) *ConversationPublisher {
	return &ConversationPublisher{
		publisher: publisher,
		topic:     topic,
		source:    source,
	}
}

// PublishConversation publishes one handled inbound message.
// It stops waiting when ctx is done; the send itself may still complete in the background.
func (p *ConversationPublisher) PublishConversation(ctx context.Context, event webhook.ConversationEvent) error {
	ce := p.newCloudEvent(event)
	payload, err := json.Marshal(ce)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation event: %w", err)
	}

	msg := message.NewMessage(ce.ID, payload)
	msg.SetContext(ctx)
	msg.Metadata.Set(senderMetadataKey, event.From)
	msg.Metadata.Set("ce_type", ConversationEventType)

	done := make(chan error, 1)
	go func() {
		done <- p.publisher.Publish(p.topic, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to publish conversation event to %s: %w", p.topic, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("gave up publishing conversation event to %s: %w", p.topic, ctx.Err())
	}
}

func (p *ConversationPublisher) newCloudEvent(event webhook.ConversationEvent) *cloudevent.CloudEvent[webhook.ConversationEvent] {
	return &cloudevent.CloudEvent[webhook.ConversationEvent]{
		CloudEventHeader: cloudevent.CloudEventHeader{
			ID:              uuid.New().String(),
			Source:          p.source,
			Subject:         event.From,
			Time:            time.Now().UTC(),
			DataContentType: "application/json",
			DataVersion:     ConversationDataVersion,
			Type:            ConversationEventType,
			SpecVersion:     "1.0",
		},
		Data: event,
	}
}

func (p *ConversationPublisher) Close() error {
	return p.publisher.Close()
}
