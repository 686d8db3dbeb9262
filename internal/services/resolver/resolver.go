//go:generate go tool mockgen -source=resolver.go -destination=resolver_mock_test.go -package=resolver
package resolver

import (
	"context"
	"fmt"

	"github.com/aicruise/cruise-bot/internal/services/knowledgerepo"
)

const (
	// AskFallback is returned by the public ask endpoint when nothing matches.
	AskFallback = "I will forward your question to a human agent."
	// WebhookFallback is sent back to a messaging user when nothing matches.
	WebhookFallback = "Thank you! Our cruise manager will contact you shortly."
)

// Matcher finds the first knowledge entry whose question contains a fragment.
type Matcher interface {
	FindMatch(ctx context.Context, fragment string) (*knowledgerepo.Entry, error)
}

// Answer is the outcome of resolving user text.
type Answer struct {
	Text    string
	Matched bool
}

// Resolver turns free-form text into a reply, falling back to a fixed text.
type Resolver struct {
	matcher  Matcher
	fallback string
}

// New creates a Resolver that answers with fallback when no entry matches.
func New(matcher Matcher, fallback string) *Resolver {
	return &Resolver{matcher: matcher, fallback: fallback}
}

// Resolve looks up text as-is; a stored question must contain the whole text to match.
// Storage failures are returned, never replaced by the fallback.
func (r *Resolver) Resolve(ctx context.Context, text string) (Answer, error) {
	entry, err := r.matcher.FindMatch(ctx, text)
	if err != nil {
		if knowledgerepo.IsNoMatchError(err) {
			return Answer{Text: r.fallback}, nil
		}
		return Answer{}, fmt.Errorf("failed to find answer: %w", err)
	}
	return Answer{Text: entry.Answer, Matched: true}, nil
}
