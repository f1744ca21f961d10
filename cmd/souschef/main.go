package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/petasbytes/sous-chef/internal/config"
	"github.com/petasbytes/sous-chef/internal/logging"
	"github.com/petasbytes/sous-chef/internal/provider"
	"github.com/petasbytes/sous-chef/internal/runner"
	"github.com/petasbytes/sous-chef/internal/telemetry"
	"github.com/petasbytes/sous-chef/memory"
	"github.com/petasbytes/sous-chef/tools"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:           "souschef",
		Short:         "AI Sous-Chef: meal planning, recipes and pantry management in your terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorColor.Sprint("Error: ")+err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(config.Options{})
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel, cfg.LogHandler)

	events := telemetry.Discard()
	if cfg.ObserveJSON {
		if events, err = telemetry.Open(cfg.EventsFile); err != nil {
			return err
		}
		defer events.Close()
	}

	model := provider.NewAnthropic(provider.NewAnthropicClient(cfg.APIKey), cfg.Model, cfg.MaxTokens)
	model.Budget = cfg.HistoryBudget
	model.Logger = logger
	model.Telemetry = events

	store := memory.NewStore(cfg.MemoryFile)
	r, err := runner.New(model, tools.Registry(), store, cfg.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to start agent")
	}
	r.Logger = logger
	r.Telemetry = events
	r.CalendarDir = cfg.CalendarDir

	if ctx == nil {
		ctx = context.Background()
	}
	// Set up graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		select {
		case <-sigch:
			fmt.Fprintln(out)
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Debug("agent ready", "user_id", cfg.UserID, "memory_file", store.Path(), "model", cfg.Model)
	loop(ctx, r, in, out)

	// Final persist uses a fresh context so it still runs after Ctrl-C.
	_ = r.Persist(context.Background())
	fmt.Fprintln(out, "Session ended. Goodbye!")
	return nil
}

func loop(ctx context.Context, r *runner.Runner, in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "Welcome to AI Sous-Chef CLI Agent!")
	fmt.Fprintln(out, "Type 'exit' or 'quit' to end the session.")

	scanner := bufio.NewScanner(in)
	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		defer close(inputCh)
		for scanner.Scan() {
			select {
			case inputCh <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	conv := memory.NewConversation()
	for {
		fmt.Fprint(out, youColor.Sprint("You")+": ")
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return
		case line, ok = <-inputCh:
			if !ok {
				fmt.Fprintln(out)
				return
			}
		}

		if isExit(line) {
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		res := r.Ask(ctx, conv, line)
		render(out, res)
	}
}

func isExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	return false
}
