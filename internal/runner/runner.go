package runner

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/petasbytes/sous-chef/internal/provider"
	"github.com/petasbytes/sous-chef/internal/telemetry"
	"github.com/petasbytes/sous-chef/interpret"
	"github.com/petasbytes/sous-chef/memory"
	"github.com/petasbytes/sous-chef/tools"
	"github.com/pkg/errors"
)

var (
	ErrTransport      = errors.New("model call failed")
	ErrRecursionLimit = errors.New("tool recursion limit reached")
)

// DefaultMaxDepth bounds how many generate tools may re-enter the model
// within one turn.
const DefaultMaxDepth = 4

type Runner struct {
	Model       provider.Model
	Tools       []tools.ToolDefinition
	Store       *memory.Store
	UserID      string
	CalendarDir string
	MaxDepth    int
	Logger      *slog.Logger
	Telemetry   *telemetry.Emitter
	Now         func() time.Time

	record *memory.Record
	system string
}

// New loads userID's record from store and renders the system prompt for
// toolDefs. A record that can not be read starts empty; only a prompt
// rendering failure is returned.
func New(model provider.Model, toolDefs []tools.ToolDefinition, store *memory.Store, userID string) (*Runner, error) {
	system, err := tools.SystemPrompt(toolDefs)
	if err != nil {
		return nil, errors.Wrap(err, "runner: system prompt")
	}
	r := &Runner{
		Model:       model,
		Tools:       toolDefs,
		Store:       store,
		UserID:      userID,
		CalendarDir: filepath.Join(os.TempDir(), "sous_chef_calendars"),
		MaxDepth:    DefaultMaxDepth,
		Logger:      slog.Default(),
		Now:         time.Now,
		system:      system,
	}

	rec, err := store.Load(userID)
	if err != nil {
		r.Logger.Warn("failed to load memory; starting empty", "path", store.Path(), "user_id", userID, "error", err)
	}
	r.record = rec
	return r, nil
}

// Record is the live record of the active user.
func (r *Runner) Record() *memory.Record { return r.record }

// SystemPrompt is the instruction sent with every model call.
func (r *Runner) SystemPrompt() string { return r.system }

// Persist writes the active user's record with read-merge-write.
func (r *Runner) Persist(ctx context.Context) error {
	err := r.Store.Save(r.UserID, r.record)
	r.Telemetry.Emit(ctx, "memory_persist",
		slog.String("user_id", r.UserID),
		telemetry.ErrorAttr(err),
	)
	if err != nil {
		r.Logger.Error("failed to save memory", "path", r.Store.Path(), "user_id", r.UserID, "error", err)
		return err
	}
	return nil
}

// Ask runs one user turn in conv. It never fails: every failure is an
// error-kind Result.
func (r *Runner) Ask(ctx context.Context, conv *memory.Conversation, prompt string) tools.Result {
	ctx, _ = telemetry.EnsureTurnID(ctx)
	return r.ask(ctx, conv, prompt, 0)
}

func (r *Runner) ask(ctx context.Context, conv *memory.Conversation, prompt string, depth int) tools.Result {
	if depth > r.maxDepth() {
		err := errors.Wrapf(ErrRecursionLimit, "depth %d", depth)
		return tools.Failed("Too many nested generation requests; giving up.", err)
	}

	history := append(conv.Messages(), memory.Message{Role: memory.RoleUser, Text: prompt})
	reply, err := r.Model.Complete(ctx, r.system, history)
	if err != nil {
		r.Logger.Error("model call failed", "error", err)
		terr := &transportError{cause: err}
		return tools.Result{
			Kind:    tools.KindError,
			Message: "Failed to get response from model: " + err.Error(),
			Raw:     reply,
			Err:     terr,
		}
	}
	// An empty assistant turn would be rejected on every later request.
	if strings.TrimSpace(reply) != "" {
		conv.Append(memory.RoleUser, prompt)
		conv.Append(memory.RoleAssistant, reply)
	} else {
		r.Logger.Warn("model returned an empty reply; not recorded in the conversation")
	}

	out := interpret.Classify(reply)
	r.Logger.Debug("model reply classified", "kind", out.Kind.String(), "depth", depth)

	switch out.Kind {
	case interpret.KindToolCall:
		return r.dispatch(ctx, conv, out.Call, reply, depth)
	case interpret.KindPayload:
		return tools.Result{Kind: tools.KindPayload, Payload: out.Payload, Raw: out.Raw}
	default:
		return tools.Result{Kind: tools.KindText, Text: out.Text}
	}
}

func (r *Runner) dispatch(ctx context.Context, conv *memory.Conversation, call interpret.ToolCall, reply string, depth int) tools.Result {
	env := &turnEnv{runner: r, conv: conv, depth: depth}

	start := time.Now()
	res := tools.Dispatch(ctx, r.Tools, env, call.Name, call.Params)
	r.Telemetry.Emit(ctx, "tool_exec",
		slog.String("tool_name", call.Name),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		slog.Int("depth", depth),
		telemetry.ErrorAttr(res.Err),
	)

	if res.IsError() {
		r.Logger.Warn("tool call failed", "tool", call.Name, "error", res.Err)
		if res.Raw == "" && (errors.Is(res.Err, tools.ErrMissingParam) || errors.Is(res.Err, tools.ErrInvalidParams)) {
			res.Raw = reply
		}
	} else {
		r.Logger.Debug("tool call done", "tool", call.Name, "kind", res.Kind.String())
	}
	return res
}

func (r *Runner) maxDepth() int {
	if r.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return r.MaxDepth
}

// transportError matches ErrTransport and unwraps to the client error.
type transportError struct {
	cause error
}

func (e *transportError) Error() string        { return ErrTransport.Error() + ": " + e.cause.Error() }
func (e *transportError) Is(target error) bool { return target == ErrTransport }
func (e *transportError) Unwrap() error        { return e.cause }

// turnEnv is the tools.Env of one dispatch.
type turnEnv struct {
	runner *Runner
	conv   *memory.Conversation
	depth  int
}

func (e *turnEnv) UserID() string                    { return e.runner.UserID }
func (e *turnEnv) Record() *memory.Record            { return e.runner.record }
func (e *turnEnv) Persist(ctx context.Context) error { return e.runner.Persist(ctx) }
func (e *turnEnv) CalendarDir() string               { return e.runner.CalendarDir }

func (e *turnEnv) Now() time.Time {
	if e.runner.Now == nil {
		return time.Now()
	}
	return e.runner.Now()
}

func (e *turnEnv) Generate(ctx context.Context, prompt string) tools.Result {
	return e.runner.ask(ctx, e.conv, prompt, e.depth+1)
}
