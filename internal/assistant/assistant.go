// Package assistant answers user input with canned rule responses and falls
// back to a generative responder when no rule matches.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"careassist/internal/metrics"
	"careassist/internal/rules"
)

// ApologyMessage replaces the fallback reply when the responder fails.
const ApologyMessage = "I'm sorry, I couldn't come up with a suggestion right now. Please try again in a moment."

// Reply sources.
const (
	SourceRules    = "rules"
	SourceFallback = "fallback"
	SourceApology  = "apology"
)

var (
	errNoResponder     = errors.New("no fallback responder configured")
	errEmptyGeneration = errors.New("responder returned empty text")
)

// Responder generates free text for input no rule matched.
type Responder interface {
	Generate(ctx context.Context, text string) (string, error)
}

// Reply is the outcome of answering one input.
type Reply struct {
	Responses []string `json:"responses"`
	Source    string   `json:"source"`
	Terms     []string `json:"terms,omitempty"`
}

// Assistant holds the immutable rule sets and the fallback responder.
// It has no mutable state and is safe for concurrent use.
type Assistant struct {
	healthcare *rules.RuleSet
	general    *rules.RuleSet
	responder  Responder
	provider   string
}

// New creates an assistant. Healthcare rules are always consulted before
// general rules.
func New(healthcare, general *rules.RuleSet, responder Responder) *Assistant {
	provider := "none"
	if n, ok := responder.(interface{ Name() string }); ok {
		provider = n.Name()
	}
	return &Assistant{
		healthcare: healthcare,
		general:    general,
		responder:  responder,
		provider:   provider,
	}
}

// Respond returns the canned responses matching input, or a single generated
// reply when nothing matches. The result is never empty.
func (a *Assistant) Respond(ctx context.Context, input string) []string {
	return a.Answer(ctx, input).Responses
}

// Answer is Respond with the reply source and matched terms attached.
func (a *Assistant) Answer(ctx context.Context, input string) Reply {
	var reply Reply
	for _, rs := range []*rules.RuleSet{a.healthcare, a.general} {
		for _, r := range rules.MatchRules(input, rs) {
			reply.Responses = append(reply.Responses, r.Response)
			reply.Terms = append(reply.Terms, r.Term)
			metrics.RecordRuleHit(rs.Name(), r.Term)
		}
	}

	if len(reply.Responses) > 0 {
		reply.Source = SourceRules
		return reply
	}

	start := time.Now()
	text, err := a.generate(ctx, input)
	if err != nil {
		slog.Error("fallback responder failed", "provider", a.provider, "error", err)
		metrics.ObserveFallback(a.provider, metrics.OutcomeError, time.Since(start))
		reply.Responses = []string{ApologyMessage}
		reply.Source = SourceApology
		return reply
	}

	metrics.ObserveFallback(a.provider, metrics.OutcomeGenerated, time.Since(start))
	reply.Responses = []string{text}
	reply.Source = SourceFallback
	return reply
}

// generate calls the responder and turns panics and blank output into errors.
func (a *Assistant) generate(ctx context.Context, input string) (text string, err error) {
	if a.responder == nil {
		return "", errNoResponder
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("responder panic: %v", r)
		}
	}()

	text, err = a.responder.Generate(ctx, input)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errEmptyGeneration
	}
	return text, nil
}

// Suggest returns autocomplete terms for prefix, healthcare terms first.
func (a *Assistant) Suggest(prefix string) []string {
	return append(
		rules.Suggest(prefix, a.healthcare.Terms()),
		rules.Suggest(prefix, a.general.Terms())...,
	)
}

// Terms returns both term lists in declared order.
func (a *Assistant) Terms() (healthcare, general []string) {
	return a.healthcare.Terms(), a.general.Terms()
}

// Provider returns the name of the fallback responder.
func (a *Assistant) Provider() string {
	return a.provider
}
