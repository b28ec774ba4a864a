package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/apnode/apnode-go/pkg/cli"
)

// Console is the interactive command line of the node.
type Console struct {
	rl *readline.Instance
}

// NewConsole creates a console on the terminal.
func NewConsole() (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "apnode> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Console{rl: rl}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Run reads lines until EOF, "quit" or ctx is done. Lines are executed
// synchronously so their output appears before the next prompt.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc, interp *cli.Interpreter) {
	defer c.rl.Close()

	out := c.rl.Stdout()
	interp.Help(out)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(out, "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "exit", "q":
			fmt.Fprintln(out, "Exiting...")
			cancel()
			return
		}

		if err := interp.ExecSync(ctx, input, "console", out); err != nil {
			switch {
			case errors.Is(err, cli.ErrUnknownCommand):
				fmt.Fprintf(out, "Unknown command: %s (type 'help' for commands)\n", strings.Fields(input)[0])
			default:
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		}
	}
}
