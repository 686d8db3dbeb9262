package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/shared/pkg/db"
	"github.com/IBM/sarama"
	_ "github.com/aicruise/cruise-bot/docs" // Import Swagger docs
	"github.com/aicruise/cruise-bot/internal/auth"
	"github.com/aicruise/cruise-bot/internal/config"
	"github.com/aicruise/cruise-bot/internal/controllers/knowledge"
	"github.com/aicruise/cruise-bot/internal/controllers/webhook"
	"github.com/aicruise/cruise-bot/internal/kafka"
	"github.com/aicruise/cruise-bot/internal/services/knowledgecache"
	"github.com/aicruise/cruise-bot/internal/services/knowledgerepo"
	"github.com/aicruise/cruise-bot/internal/services/replysender"
	"github.com/aicruise/cruise-bot/internal/services/resolver"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	store := db.NewDbConnectionFromSettings(ctx, &settings.DB, true)
	store.WaitForDB(logger)

	repo := knowledgerepo.NewRepository(store.DBS().Writer.DB)
	knowledgeStore := knowledgecache.New(repo, settings.KnowledgeCacheTTL, &logger)

	events, err := startConversationPublisher(ctx, logger, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to start conversation publisher: %w", err)
	}

	sender := replysender.NewReplySender(replysender.Config{
		APIURL:        settings.WhatsAppAPIURL,
		PhoneNumberID: settings.WhatsAppPhoneNumberID,
		AccessToken:   settings.WhatsAppAccessToken,
	}, nil)

	app, err := CreateFiberApp(logger, knowledgeStore, sender, events, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create fiber app: %w", err)
	}
	return app, nil
}

// CreateFiberApp sets up the API routes. events may be nil.
func CreateFiberApp(logger zerolog.Logger, knowledgeStore knowledgecache.Store,
	sender webhook.ReplySender,
	events webhook.ConversationPublisher,
	settings *config.Settings) (*fiber.App, error) {
	logger.Info().Msg("Starting AI Cruise Bot...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	knowledgeController, err := knowledge.NewKnowledgeController(
		knowledgeStore,
		resolver.New(knowledgeStore, resolver.AskFallback),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create knowledge controller: %w", err)
	}
	webhookController := webhook.NewWebhookController(
		resolver.New(knowledgeStore, resolver.WebhookFallback),
		sender,
		events,
		settings.WebhookVerifyToken,
	)
	adminGate := auth.Middleware(auth.Credentials{
		Username: settings.AdminUsername,
		Password: settings.AdminPassword,
	}, auth.DefaultRealm)

	logger.Info().Msg("Registering routes...")

	app.Get("/", knowledgeController.Health)
	app.Get("/test-db", knowledgeController.TestDB)

	// Knowledge base
	app.Post("/add-qa", knowledgeController.AddQA)
	app.Get("/qa-list", knowledgeController.ListQA)
	app.Post("/ask", knowledgeController.Ask)

	// Messaging platform callbacks
	app.Get("/webhook", webhookController.VerifyWebhook)
	app.Post("/webhook", webhookController.ReceiveMessage)

	// Admin
	app.Put("/update-qa", adminGate, knowledgeController.UpdateQA)
	app.Delete("/delete-qa/:question", adminGate, knowledgeController.DeleteQA)
	app.Get("/admin", adminGate, knowledgeController.AdminPanel)

	return app, nil
}

// startConversationPublisher connects the conversation event publisher. It returns nil when no brokers are configured.
func startConversationPublisher(ctx context.Context, logger zerolog.Logger, settings *config.Settings) (webhook.ConversationPublisher, error) {
	brokers := splitBrokers(settings.KafkaBrokers)
	if len(brokers) == 0 {
		logger.Info().Msg("KAFKA_BROKERS not set, conversation events are disabled")
		return nil, nil
	}

	publisher, err := kafka.NewKafkaPublisher(brokers, sarama.V2_8_1_0)
	if err != nil {
		return nil, err
	}
	events := kafka.NewConversationPublisher(publisher, settings.ConversationTopic, settings.ServiceName)

	go func() {
		<-ctx.Done()
		if err := events.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close conversation publisher")
		}
	}()

	logger.Info().Msgf("Conversation events publishing to topic: %s", settings.ConversationTopic)
	return events, nil
}

func splitBrokers(raw string) []string {
	var brokers []string
	for _, broker := range strings.Split(raw, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}
