// Package handler chains key handlers until one consumes the key.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the key on to the next handler.
var NotHandled = Result{}

// HandledNoCmd consumes the key without a command.
var HandledNoCmd = Result{Handled: true}

// Handled consumes the key and returns cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle a key.
type Handler func(tea.KeyMsg) Result

// Chain runs handlers in order until one handles key.
func Chain(key tea.KeyMsg, handlers ...Handler) Result {
	for _, h := range handlers {
		if r := h(key); r.Handled {
			return r
		}
	}
	return NotHandled
}
