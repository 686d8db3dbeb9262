package webhook

// StatusResponse is the body of every webhook delivery response.
type StatusResponse struct {
	// Status is "replied" when a reply was attempted and "no message" otherwise.
	Status string `json:"status"`
}

// VerificationFailedResponse is returned when a subscription challenge is refused.
type VerificationFailedResponse struct {
	Error string `json:"error"`
}

const (
	StatusReplied   = "replied"
	StatusNoMessage = "no message"

	verificationFailed = "Verification failed"
	subscribeMode      = "subscribe"
)

// InboundMessage is the part of a platform event the responder acts on.
type InboundMessage struct {
	// From is the sender's phone number as reported by the platform.
	From string
	// Text is the message body, untrimmed.
	Text string
	// MessageID is the platform id of the inbound message, if present.
	MessageID string
	// PhoneNumberID is the business number that received the message, if present.
	PhoneNumberID string
	// ProfileName is the sender's display name, if present.
	ProfileName string
}

// ConversationEvent records one handled inbound message and what was done with it.
type ConversationEvent struct {
	// DeliveryID correlates the event with the request logs.
	DeliveryID string `json:"deliveryId"`
	From       string `json:"from"`
	Text       string `json:"text"`
	Reply      string `json:"reply"`
	// Matched is false when the reply is the fallback text.
	Matched bool `json:"matched"`
	// Outcome is the send result: sent, rejected or transport_failed.
	Outcome    string `json:"outcome"`
	StatusCode int    `json:"statusCode,omitempty"`
	// MessageID is the inbound platform message id.
	MessageID string `json:"messageId,omitempty"`
	// ReplyMessageID is the platform id assigned to the reply, when sent.
	ReplyMessageID string `json:"replyMessageId,omitempty"`
}
