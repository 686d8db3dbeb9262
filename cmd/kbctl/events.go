package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/aicruise/cruise-bot/internal/kafka"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	eventsGroup         string
	eventsFromBeginning bool
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Tail conversation events from Kafka",
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		logger := newLogger(settings)
		if strings.TrimSpace(settings.KafkaBrokers) == "" {
			return fmt.Errorf("KAFKA_BROKERS is not set")
		}

		clusterConfig := sarama.NewConfig()
		clusterConfig.Version = sarama.V2_8_1_0
		clusterConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
		if eventsFromBeginning {
			clusterConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
		}

		consumer, err := kafka.NewConsumer(&kafka.Config{
			ClusterConfig:   clusterConfig,
			BrokerAddresses: strings.Split(settings.KafkaBrokers, ","),
			Topic:           settings.ConversationTopic,
			GroupID:         eventsGroup,
		})
		if err != nil {
			return err
		}
		defer consumer.Close() //nolint:errcheck

		done := make(chan struct{})
		if err := consumer.Start(cmd.Context(), func(messages <-chan *message.Message) {
			defer close(done)
			for msg := range messages {
				printConversation(cmd.OutOrStdout(), msg, logger)
				msg.Ack()
			}
		}); err != nil {
			return err
		}

		logger.Info().Str("topic", settings.ConversationTopic).Msg("Tailing conversation events")
		<-done
		return nil
	},
}

func init() {
	eventsCmd.Flags().StringVar(&eventsGroup, "group", "kbctl-events", "consumer group")
	eventsCmd.Flags().BoolVar(&eventsFromBeginning, "from-beginning", false, "start from the oldest retained event")
	rootCmd.AddCommand(eventsCmd)
}

func printConversation(out io.Writer, msg *message.Message, logger zerolog.Logger) {
	event, err := kafka.DecodeConversation(msg)
	if err != nil {
		logger.Warn().Err(err).Msg("Skipping message")
		return
	}
	data := event.Data
	fmt.Fprintf(out, "%s  %s  %q -> %q  matched=%t outcome=%s\n",
		event.Time.Format("2006-01-02T15:04:05Z07:00"), data.From, data.Text, data.Reply, data.Matched, data.Outcome)
}
