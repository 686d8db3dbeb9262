package e2e_test

import (
	"encoding/base64"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/aicruise/cruise-bot/internal/app"
	"github.com/aicruise/cruise-bot/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Status int
	Body   string
	Header http.Header
}

func newTestApp(t *testing.T, settings *config.Settings) *fiber.App {
	t.Helper()
	fiberApp, err := app.CreateServers(t.Context(), settings, zerolog.New(os.Stdout).Level(zerolog.WarnLevel))
	require.NoError(t, err)
	return fiberApp
}

func call(t *testing.T, fiberApp *fiber.App, method, path, body string, basicAuth ...string) apiResponse {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(t.Context(), method, path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if len(basicAuth) == 2 {
		req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(basicAuth[0]+":"+basicAuth[1])))
	}

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return apiResponse{Status: resp.StatusCode, Body: string(respBody), Header: resp.Header}
}

func uniquePhone() string {
	return fmt.Sprintf("1555%07d", rand.IntN(10_000_000))
}

func inboundEnvelope(from, text string) string {
	return fmt.Sprintf(`{
  "object": "whatsapp_business_account",
  "entry": [{
    "id": "102290129340398",
    "changes": [{
      "field": "messages",
      "value": {
        "messaging_product": "whatsapp",
        "metadata": {"display_phone_number": "15550783881", "phone_number_id": %q},
        "contacts": [{"profile": {"name": "Guest"}, "wa_id": %q}],
        "messages": [{"from": %q, "id": "wamid.inbound", "type": "text", "text": {"body": %q}}]
      }
    }]
  }]
}`, testPhoneNumberID, from, from, text)
}
