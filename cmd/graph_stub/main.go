package main

import (
	"flag"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SendRequest is the text message body the bot posts to the send endpoint.
type SendRequest struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

type sendResponse struct {
	MessagingProduct string          `json:"messaging_product"`
	Contacts         []sendContact   `json:"contacts"`
	Messages         []sentMessageID `json:"messages"`
}

type sendContact struct {
	Input string `json:"input"`
	WaID  string `json:"wa_id"`
}

type sentMessageID struct {
	ID string `json:"id"`
}

type graphError struct {
	Error graphErrorBody `json:"error"`
}

type graphErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

// newStubApp serves the Graph API send endpoint. A non-zero failStatus rejects every send with that status.
func newStubApp(logger zerolog.Logger, failStatus int) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Post("/:version/:phoneNumberID/messages", func(c *fiber.Ctx) error {
		if !strings.HasPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(graphError{Error: graphErrorBody{
				Message: "An access token is required to request this resource.",
				Type:    "OAuthException",
				Code:    104,
			}})
		}

		var payload SendRequest
		if err := c.BodyParser(&payload); err != nil || payload.To == "" {
			return c.Status(fiber.StatusBadRequest).JSON(graphError{Error: graphErrorBody{
				Message: "Invalid parameter",
				Type:    "OAuthException",
				Code:    100,
			}})
		}

		logger.Info().
			Str("phoneNumberId", c.Params("phoneNumberID")).
			Str("to", payload.To).
			Str("body", payload.Text.Body).
			Msg("Send request received")

		if failStatus != 0 {
			return c.Status(failStatus).JSON(graphError{Error: graphErrorBody{
				Message: "Simulated failure",
				Type:    "OAuthException",
				Code:    failStatus,
			}})
		}

		return c.JSON(sendResponse{
			MessagingProduct: "whatsapp",
			Contacts:         []sendContact{{Input: payload.To, WaID: payload.To}},
			Messages:         []sentMessageID{{ID: "wamid." + uuid.New().String()}},
		})
	})

	return app
}

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	failStatus := flag.Int("fail-status", 0, "reject every send with this HTTP status")
	flag.Parse()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", "graph_stub").Logger()
	app := newStubApp(logger, *failStatus)

	logger.Info().Str("addr", *addr).Msg("Graph API stub listening")
	if err := app.Listen(*addr); err != nil {
		logger.Fatal().Err(err).Msg("Graph API stub stopped")
	}
}
