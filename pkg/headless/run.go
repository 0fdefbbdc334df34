package headless

import (
	"context"
	"fmt"

	"github.com/parley-sh/parley/pkg/chat"
	"github.com/parley-sh/parley/pkg/config"
	"github.com/parley-sh/parley/pkg/ws"
)

// RunHeadless submits a single prompt, prints the answer, and exits.
// This is the main entry point for headless/CLI execution
func RunHeadless(cfg *config.Config, prompt string) error {
	if prompt == "" {
		return fmt.Errorf("prompt cannot be empty in headless mode")
	}

	runner := newRunner()

	session := chat.NewSession(cfg.User, cfg.Session)
	session.OnChange(runner.onChange)

	client, err := ws.Dial(context.Background(), ws.Options{
		URL:              cfg.Server.URL,
		HandshakeTimeout: cfg.Server.HandshakeTimeout,
		PingInterval:     cfg.Server.PingInterval,
		OnFrame:          session.HandleFrame,
		OnClose: func(err error) {
			session.HandleDisconnect(err)
			runner.connClosed(err)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", cfg.Server.URL, err)
	}
	defer client.Close()

	session.Attach(client)

	if err := session.Submit(prompt, cfg.Search); err != nil {
		return fmt.Errorf("failed to submit prompt: %w", err)
	}

	if err := runner.wait(session); err != nil {
		return err
	}

	runner.output.PrintTranscript(session.Transcript())
	return nil
}
