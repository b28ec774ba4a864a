// Package cli implements the node's command interpreter.
//
// Command lines arrive from the console and from the /run route. Lines from
// the route are queued with Exec and executed one at a time by Run, so a
// request is acknowledged before its command runs. The console uses
// ExecSync and prints the output directly.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/shlex"

	"github.com/apnode/apnode-go/pkg/log"
)

// DefaultQueueSize bounds the number of pending lines.
const DefaultQueueSize = 16

var (
	// ErrQueueFull is returned by Exec when the queue has no room.
	ErrQueueFull = errors.New("cli: command queue full")

	// ErrUnknownCommand is returned for a line naming no command.
	ErrUnknownCommand = errors.New("cli: unknown command")

	// ErrUsage is wrapped by commands rejecting their arguments.
	ErrUsage = errors.New("cli: usage")
)

// Handler executes a command. args excludes the command name.
type Handler func(ctx context.Context, args []string, out io.Writer) error

// Command is a registered command.
type Command struct {
	Name    string
	Usage   string
	Summary string
	Run     Handler
}

// Config configures an Interpreter.
type Config struct {
	// QueueSize bounds Exec. Zero means DefaultQueueSize.
	QueueSize int

	// Output receives the output of queued commands. Nil discards it.
	Output io.Writer

	Logger      *slog.Logger
	Diagnostics log.Logger
}

type queued struct {
	line   string
	source string
}

// Interpreter parses and runs command lines.
type Interpreter struct {
	config Config

	mu       sync.RWMutex
	commands map[string]Command

	queue chan queued
}

// NewInterpreter creates an interpreter with the help command registered.
func NewInterpreter(config Config) *Interpreter {
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultQueueSize
	}
	if config.Output == nil {
		config.Output = io.Discard
	}
	i := &Interpreter{
		config:   config,
		commands: make(map[string]Command),
		queue:    make(chan queued, config.QueueSize),
	}
	_ = i.Register(Command{
		Name:    "help",
		Usage:   "help",
		Summary: "list commands",
		Run: func(_ context.Context, _ []string, out io.Writer) error {
			i.Help(out)
			return nil
		},
	})
	return i
}

// Register adds a command. Names are case-insensitive and unique.
func (i *Interpreter) Register(cmd Command) error {
	name := strings.ToLower(cmd.Name)
	if name == "" || cmd.Run == nil {
		return errors.New("cli: command needs a name and a handler")
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if _, dup := i.commands[name]; dup {
		return fmt.Errorf("cli: command %q already registered", name)
	}
	cmd.Name = name
	i.commands[name] = cmd
	return nil
}

// Help writes the command summary.
func (i *Interpreter) Help(out io.Writer) {
	i.mu.RLock()
	cmds := make([]Command, 0, len(i.commands))
	for _, c := range i.commands {
		cmds = append(cmds, c)
	}
	i.mu.RUnlock()

	slices.SortFunc(cmds, func(a, b Command) int { return strings.Compare(a.Name, b.Name) })

	fmt.Fprintln(out, "Commands:")
	for _, c := range cmds {
		fmt.Fprintf(out, "  %-44s - %s\n", c.Usage, c.Summary)
	}
}

// Exec queues line for Run. It never blocks.
func (i *Interpreter) Exec(line, source string) error {
	select {
	case i.queue <- queued{line: line, source: source}:
		return nil
	default:
		i.report(line, source, ErrQueueFull)
		return ErrQueueFull
	}
}

// Run executes queued lines until ctx is done.
func (i *Interpreter) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case q := <-i.queue:
			if err := i.ExecSync(ctx, q.line, q.source, i.config.Output); err != nil && i.config.Logger != nil {
				i.config.Logger.Warn("command failed", "line", q.line, "source", q.source, "error", err)
			}
		}
	}
}

// ExecSync parses and runs line, writing its output to out. Blank lines
// are ignored.
func (i *Interpreter) ExecSync(ctx context.Context, line, source string, out io.Writer) error {
	args, err := shlex.Split(line)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrUsage, err)
		i.report(line, source, err)
		return err
	}
	if len(args) == 0 {
		return nil
	}

	name := strings.ToLower(args[0])
	i.mu.RLock()
	cmd, ok := i.commands[name]
	i.mu.RUnlock()

	if !ok {
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	} else {
		err = cmd.Run(ctx, args[1:], out)
	}
	i.report(line, source, err)
	return err
}

func (i *Interpreter) report(line, source string, err error) {
	if i.config.Logger != nil {
		i.config.Logger.Debug("command", "line", line, "source", source, "error", err)
	}
	if i.config.Diagnostics == nil {
		return
	}
	ev := &log.CommandEvent{Line: line, Source: source}
	if err != nil {
		ev.Error = err.Error()
	}
	i.config.Diagnostics.Log(log.Event{
		Category:  log.CategoryCommand,
		Component: log.ComponentCLI,
		Command:   ev,
	})
}
