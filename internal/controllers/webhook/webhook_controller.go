//go:generate go tool mockgen -source=webhook_controller.go -destination=webhook_controller_mock_test.go -package=webhook
package webhook

import (
	"context"
	"crypto/subtle"
	"strconv"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/aicruise/cruise-bot/internal/services/replysender"
	"github.com/aicruise/cruise-bot/internal/services/resolver"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// publishTimeout bounds how long a delivery response waits on the event publisher.
const publishTimeout = 3 * time.Second

type AnswerResolver interface {
	Resolve(ctx context.Context, text string) (resolver.Answer, error)
}

type ReplySender interface {
	SendReply(ctx context.Context, to, body string) replysender.Result
}

type ConversationPublisher interface {
	PublishConversation(ctx context.Context, event ConversationEvent) error
}

// WebhookController handles the messaging platform's subscription and delivery callbacks.
type WebhookController struct {
	resolver    AnswerResolver
	sender      ReplySender
	events      ConversationPublisher
	verifyToken string
}

// NewWebhookController creates a new WebhookController. events may be nil.
func NewWebhookController(answers AnswerResolver, sender ReplySender, events ConversationPublisher, verifyToken string) *WebhookController {
	return &WebhookController{
		resolver:    answers,
		sender:      sender,
		events:      events,
		verifyToken: verifyToken,
	}
}

// VerifyWebhook godoc
// @Summary      Verify webhook subscription
// @Description  Answers the platform's subscription challenge. The challenge is echoed back as an integer when the mode is "subscribe" and the verify token matches.
// @Tags         Webhook
// @Produce      json
// @Param        hub.mode          query     string  false  "Subscription mode"
// @Param        hub.verify_token  query     string  false  "Verify token"
// @Param        hub.challenge     query     string  false  "Numeric challenge"
// @Success      200  {integer}  int  "Echoed challenge"
// @Success      200  {object}  VerificationFailedResponse  "Verification refused"
// @Failure      500  "Challenge is not numeric"
// @Router       /webhook [get]
func (w *WebhookController) VerifyWebhook(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode != subscribeMode || !w.tokenMatches(token) {
		zerolog.Ctx(c.UserContext()).Warn().Str("mode", mode).Msg("Webhook verification refused")
		return c.JSON(VerificationFailedResponse{Error: verificationFailed})
	}

	value, err := strconv.ParseInt(strings.TrimSpace(challenge), 10, 64)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid challenge",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	return c.JSON(value)
}

// tokenMatches compares in constant time. An unset verify token never matches.
func (w *WebhookController) tokenMatches(token string) bool {
	if w.verifyToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(w.verifyToken)) == 1
}

// ReceiveMessage godoc
// @Summary      Receive platform events
// @Description  Extracts the first text message of a delivery, resolves an answer and sends it back to the sender. Events without a text message are acknowledged with "no message". A failed send still reports "replied".
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      500  "Knowledge base unavailable"
// @Router       /webhook [post]
func (w *WebhookController) ReceiveMessage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	deliveryID := uuid.New().String()
	logger := zerolog.Ctx(ctx).With().Str("deliveryId", deliveryID).Logger()

	extraction := ExtractMessage(c.Body())
	if extraction.Kind != Extracted {
		logger.Debug().Msg("Delivery carried no text message")
		return c.JSON(StatusResponse{Status: StatusNoMessage})
	}
	msg := extraction.Message
	logger.Info().Str("from", msg.From).Str("messageId", msg.MessageID).Str("text", msg.Text).Msg("Inbound message")

	answer, err := w.resolver.Resolve(ctx, msg.Text)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Failed to resolve answer",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	result := w.sender.SendReply(ctx, msg.From, answer.Text)
	logSendResult(&logger, msg.From, result)

	w.publish(ctx, &logger, ConversationEvent{
		DeliveryID:     deliveryID,
		From:           msg.From,
		Text:           msg.Text,
		Reply:          answer.Text,
		Matched:        answer.Matched,
		Outcome:        result.Outcome.String(),
		StatusCode:     result.StatusCode,
		MessageID:      msg.MessageID,
		ReplyMessageID: result.MessageID,
	})

	return c.JSON(StatusResponse{Status: StatusReplied})
}

// logSendResult records the send outcome. Send failures are never surfaced to the platform.
func logSendResult(logger *zerolog.Logger, to string, result replysender.Result) {
	switch result.Outcome {
	case replysender.OutcomeSent:
		logger.Info().Str("to", to).Str("replyMessageId", result.MessageID).Msg("Reply sent")
	case replysender.OutcomeRejected:
		logger.Warn().Err(result.Err).Str("to", to).Int("statusCode", result.StatusCode).Msg("Reply rejected")
	default:
		logger.Error().Err(result.Err).Str("to", to).Msg("Reply transport failed")
	}
}

func (w *WebhookController) publish(ctx context.Context, logger *zerolog.Logger, event ConversationEvent) {
	if w.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := w.events.PublishConversation(ctx, event); err != nil {
		logger.Error().Err(err).Msg("Failed to publish conversation event")
	}
}
