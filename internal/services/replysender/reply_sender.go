package replysender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// Default timeout for send requests
	defaultSendTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
)

// Outcome is how a send attempt ended.
type Outcome int

const (
	// OutcomeSent means the platform accepted the message.
	OutcomeSent Outcome = iota
	// OutcomeRejected means the platform answered with a non-2xx status.
	OutcomeRejected
	// OutcomeTransportFailed means no response was received.
	OutcomeTransportFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeRejected:
		return "rejected"
	case OutcomeTransportFailed:
		return "transport_failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result describes a single send attempt.
type Result struct {
	Outcome    Outcome
	StatusCode int
	// MessageID is the platform id of an accepted message, when it reported one.
	MessageID string
	// Err carries the rejection body or transport error.
	Err error
}

// Config holds the send API location and credentials.
type Config struct {
	APIURL        string
	PhoneNumberID string
	AccessToken   string
}

// TextMessage is the send API envelope for a plain text reply.
type TextMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Text             TextBody `json:"text"`
}

// TextBody is the text part of a TextMessage.
type TextBody struct {
	Body string `json:"body"`
}

// ReplySender posts text replies to the WhatsApp Cloud API.
type ReplySender struct {
	client   *http.Client
	endpoint string
	token    string
}

// NewReplySender creates a new ReplySender. A nil client gets a default one with a timeout.
func NewReplySender(cfg Config, client *http.Client) *ReplySender {
	if client == nil {
		client = &http.Client{
			Timeout: defaultSendTimeout,
		}
	}
	return &ReplySender{
		client:   client,
		endpoint: strings.TrimSuffix(cfg.APIURL, "/") + "/" + cfg.PhoneNumberID + "/messages",
		token:    cfg.AccessToken,
	}
}

// SendReply makes one attempt to deliver body to the recipient. It never retries
// and reports the outcome instead of failing, so callers decide what to do with it.
func (s *ReplySender) SendReply(ctx context.Context, to, body string) Result {
	payload, err := json.Marshal(TextMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Text:             TextBody{Body: body},
	})
	if err != nil {
		return Result{Outcome: OutcomeTransportFailed, Err: fmt.Errorf("failed to marshal reply: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{Outcome: OutcomeTransportFailed, Err: fmt.Errorf("failed to create send request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{Outcome: OutcomeTransportFailed, Err: fmt.Errorf("failed to POST reply: %w", err)}
	}
	defer resp.Body.Close() // nolint:errcheck

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{
			Outcome:    OutcomeRejected,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("send API returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	return Result{
		Outcome:    OutcomeSent,
		StatusCode: resp.StatusCode,
		MessageID:  gjson.GetBytes(respBody, "messages.0.id").String(),
	}
}
