package webhook

import (
	"github.com/tidwall/gjson"
)

// ExtractionKind tells whether a delivery carried a usable message.
type ExtractionKind int

const (
	// NotAMessage covers malformed payloads and events without a text message,
	// such as delivery receipts.
	NotAMessage ExtractionKind = iota
	// Extracted means sender and text were found.
	Extracted
)

// Extraction is the result of looking for a message in a delivery payload.
type Extraction struct {
	Kind    ExtractionKind
	Message InboundMessage
}

// ExtractMessage looks for the first text message of the first change of the
// first entry. Any structural mismatch yields NotAMessage; it never fails.
// entry, changes and messages must be arrays; an object keyed "0" does not count.
func ExtractMessage(body []byte) Extraction {
	if !gjson.ValidBytes(body) {
		return Extraction{Kind: NotAMessage}
	}
	change, ok := firstElement(gjson.GetBytes(body, "entry"))
	if !ok {
		return Extraction{Kind: NotAMessage}
	}
	change, ok = firstElement(change.Get("changes"))
	if !ok {
		return Extraction{Kind: NotAMessage}
	}
	value := change.Get("value")
	if !value.IsObject() {
		return Extraction{Kind: NotAMessage}
	}
	msg, ok := firstElement(value.Get("messages"))
	if !ok || !msg.IsObject() {
		return Extraction{Kind: NotAMessage}
	}
	text := msg.Get("text.body")
	from := msg.Get("from")
	if text.Type != gjson.String || from.Type != gjson.String {
		return Extraction{Kind: NotAMessage}
	}

	return Extraction{
		Kind: Extracted,
		Message: InboundMessage{
			From:          from.Str,
			Text:          text.Str,
			MessageID:     msg.Get("id").String(),
			PhoneNumberID: value.Get("metadata.phone_number_id").String(),
			ProfileName:   value.Get("contacts.0.profile.name").String(),
		},
	}
}

// firstElement returns the first item of a JSON array.
func firstElement(r gjson.Result) (gjson.Result, bool) {
	if !r.IsArray() {
		return gjson.Result{}, false
	}
	items := r.Array()
	if len(items) == 0 {
		return gjson.Result{}, false
	}
	return items[0], true
}
