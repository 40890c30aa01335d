package notify

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Common errors for command operations.
var (
	ErrCommandNotFound = errors.New("command not found")
	ErrCommandExists   = errors.New("command already registered")
)

// Command produces the message a command run should display.
type Command func(ctx context.Context) (string, error)

// Commands maps command names to Command funcs.
type Commands struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewCommands creates an empty command registry.
func NewCommands() *Commands {
	return &Commands{
		commands: make(map[string]Command),
	}
}

// Register adds a command under the given name.
func (c *Commands) Register(name string, cmd Command) error {
	if name == "" {
		return fmt.Errorf("command name is required")
	}
	if cmd == nil {
		return fmt.Errorf("command is nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.commands[name]; exists {
		return fmt.Errorf("%w: %s", ErrCommandExists, name)
	}
	c.commands[name] = cmd
	return nil
}

// Run executes the named command and displays its message through n.
func (c *Commands) Run(ctx context.Context, name string, n Notifier) error {
	c.mu.RLock()
	cmd, ok := c.commands[name]
	c.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}
	if n == nil {
		n = Discard
	}

	msg, err := cmd(ctx)
	if err != nil {
		return fmt.Errorf("command %s: %w", name, err)
	}
	if msg != "" {
		n.Info(msg)
	}
	return nil
}

// Names returns registered command names sorted for deterministic output.
func (c *Commands) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.commands))
	for name := range c.commands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Hello returns the template's example command: it greets on behalf of the
// named extension.
func Hello(from string) Command {
	return func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return fmt.Sprintf("Hello from %s!", from), nil
	}
}
