package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DIMO-Network/cloudevent"
	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	wm_kafka "github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/aicruise/cruise-bot/internal/controllers/webhook"
)

type Config struct {
	ClusterConfig   *sarama.Config
	BrokerAddresses []string
	Topic           string
	GroupID         string
}

// Consumer reads conversation events back from the topic.
type Consumer struct {
	subscriber message.Subscriber
	topic      string
}

func NewConsumer(cfg *Config) (*Consumer, error) {
	saramaSubscriberConfig := wm_kafka.DefaultSaramaSubscriberConfig()

	if cfg.ClusterConfig != nil {
		saramaSubscriberConfig.Version = cfg.ClusterConfig.Version
		saramaSubscriberConfig.Consumer.Offsets.Initial = cfg.ClusterConfig.Consumer.Offsets.Initial
	}

	subscriber, err := wm_kafka.NewSubscriber(
		wm_kafka.SubscriberConfig{
			Brokers:               cfg.BrokerAddresses,
			Unmarshaler:           conversationMarshaler(),
			OverwriteSaramaConfig: saramaSubscriberConfig,
			ConsumerGroup:         cfg.GroupID,
		},
		watermill.NewStdLogger(false, false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka subscriber: %w", err)
	}

	return &Consumer{
		subscriber: subscriber,
		topic:      cfg.Topic,
	}, nil
}

// Start subscribes to the topic and hands the message channel to process in a new goroutine.
func (c *Consumer) Start(ctx context.Context, process func(messages <-chan *message.Message)) error {
	messages, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		return fmt.Errorf("could not subscribe to topic %s: %w", c.topic, err)
	}

	go process(messages)
	return nil
}

func (c *Consumer) Close() error {
	return c.subscriber.Close()
}

// DecodeConversation parses a message produced by ConversationPublisher.
func DecodeConversation(msg *message.Message) (*cloudevent.CloudEvent[webhook.ConversationEvent], error) {
	var event cloudevent.CloudEvent[webhook.ConversationEvent]
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse conversation event %s: %w", msg.UUID, err)
	}
	if event.Type != ConversationEventType {
		return nil, fmt.Errorf("unexpected event type %q", event.Type)
	}
	return &event, nil
}
