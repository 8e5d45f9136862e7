// Package command parses the player's typed input and dispatches it to
// handlers that act on a world model.
package command

import (
	"fmt"
	"strings"

	"github.com/c360studio/semworld/world"
)

// Result is the outcome of one dispatched command.
type Result struct {
	// OK reports whether the command succeeded.
	OK bool

	// Message is the text shown to the player.
	Message string
}

// Success builds a successful result.
func Success(format string, args ...any) Result {
	return Result{OK: true, Message: fmt.Sprintf(format, args...)}
}

// Failure builds a failed result. Failures are ordinary play outcomes,
// a blocked exit or an unknown item, not errors.
func Failure(format string, args ...any) Result {
	return Result{OK: false, Message: fmt.Sprintf(format, args...)}
}

// Config describes a handler for registration and help listings.
type Config struct {
	// Name is the primary command word, lowercase.
	Name string

	// Aliases are alternative command words.
	Aliases []string

	// Description is the one-line help text.
	Description string
}

// Handler executes one command on behalf of an actor. Execute never
// panics on bad input; it reports problems as a failed Result.
type Handler interface {
	// Config returns the handler's registration data.
	Config() Config

	// Execute runs the command with the words after the command word.
	Execute(m *world.Model, actor world.ID, args []string) Result
}

// EmptyInputMessage is returned when the player enters a blank line.
const EmptyInputMessage = "please enter a command"

// Registry maps command words to handlers.
type Registry struct {
	handlers map[string]Handler
	order    []Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under its name and aliases, lowercased. A
// later registration takes over a word from an earlier one.
func (r *Registry) Register(h Handler) {
	cfg := h.Config()
	r.handlers[strings.ToLower(cfg.Name)] = h
	for _, alias := range cfg.Aliases {
		r.handlers[strings.ToLower(alias)] = h
	}
	r.order = append(r.order, h)
}

// Lookup resolves a command word or alias, case-insensitively.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[strings.ToLower(name)]
	return h, ok
}

// Handlers returns the registered handlers in registration order.
func (r *Registry) Handlers() []Handler {
	return r.order
}

// Dispatch splits one line of input and runs the matching handler.
// Blank lines and unknown command words come back as failures.
func (r *Registry) Dispatch(m *world.Model, actor world.ID, input string) Result {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Failure(EmptyInputMessage)
	}
	h, ok := r.handlers[strings.ToLower(fields[0])]
	if !ok {
		return Failure("unknown command: %s", fields[0])
	}
	return h.Execute(m, actor, fields[1:])
}
