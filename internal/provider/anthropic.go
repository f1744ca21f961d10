// Package provider sends the session transcript to the language model and
// returns its reply text.
package provider

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/petasbytes/sous-chef/internal/telemetry"
	"github.com/petasbytes/sous-chef/internal/windowing"
	"github.com/petasbytes/sous-chef/memory"
	"github.com/pkg/errors"
)

const (
	DefaultModel     = anthropic.ModelClaude3_7SonnetLatest
	DefaultMaxTokens = int64(2048)
	APIVersion       = "2023-06-01"
)

// Model produces one reply for a transcript whose last message is the
// pending user prompt.
type Model interface {
	Complete(ctx context.Context, system string, history []memory.Message) (string, error)
}

// NewAnthropicClient returns a client authenticated with apiKey. Extra options
// are applied after the key.
func NewAnthropicClient(apiKey string, opts ...option.RequestOption) *anthropic.Client {
	all := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	c := anthropic.NewClient(all...)
	return &c
}

// Anthropic is the Messages API implementation of Model.
type Anthropic struct {
	Client    *anthropic.Client
	Model     anthropic.Model
	MaxTokens int64
	// Budget bounds the estimated size of the sent window; <= 0 sends the
	// whole transcript.
	Budget    int
	Counter   windowing.TokenCounter
	Telemetry *telemetry.Emitter
	Logger    *slog.Logger
}

func NewAnthropic(client *anthropic.Client, model string, maxTokens int64) *Anthropic {
	if model == "" {
		model = string(DefaultModel)
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Anthropic{
		Client:    client,
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Counter:   windowing.HeuristicCounter{},
		Logger:    slog.Default(),
	}
}

func (a *Anthropic) Complete(ctx context.Context, system string, history []memory.Message) (string, error) {
	if len(history) == 0 {
		return "", errors.New("provider: empty history")
	}
	counter := a.Counter
	if counter == nil {
		counter = windowing.HeuristicCounter{}
	}
	window, stats := windowing.PrepareSendWindow(history, a.Budget, counter)
	if stats.OverBudgetNewest && a.Logger != nil {
		a.Logger.Warn("newest message exceeds history budget; sending it alone",
			"budget", stats.Budget, "estimated", stats.Total)
	}

	params := anthropic.MessageNewParams{
		Model:     a.Model,
		MaxTokens: a.MaxTokens,
		Messages:  toParams(window),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := a.Client.Messages.New(ctx, params)
	var text string
	if err == nil {
		text = replyText(msg)
	}

	a.Telemetry.Emit(ctx, "model_call",
		slog.String("model", string(a.Model)),
		slog.Int("prompt_runes", utf8.RuneCountInString(window[len(window)-1].Text)),
		slog.Int("response_runes", utf8.RuneCountInString(text)),
		slog.Int("budget", stats.Budget),
		slog.Int("total_estimated", stats.Total),
		slog.Int("included_groups", stats.IncludedGroups),
		slog.Int("skipped_groups", stats.SkippedGroups),
		slog.Bool("over_budget_newest", stats.OverBudgetNewest),
		telemetry.ErrorAttr(err),
	)

	if err != nil {
		return "", errors.Wrap(err, "anthropic messages")
	}
	return text, nil
}

func toParams(msgs []memory.Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(msgs))
	for _, m := range msgs {
		block := anthropic.NewTextBlock(m.Text)
		if m.Role == memory.RoleAssistant {
			out = append(out, anthropic.NewAssistantMessage(block))
		} else {
			out = append(out, anthropic.NewUserMessage(block))
		}
	}
	return out
}

// replyText concatenates the text blocks of msg; other block types are ignored.
func replyText(msg *anthropic.Message) string {
	var b strings.Builder
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	return b.String()
}
