// Package commands holds the help catalog of sequencer commands: usage,
// parameters and examples for each command the processor understands.
package commands

import (
	"fmt"
	"sync"

	"sequencer/internal/parser"
)

// Parameter describes one positional parameter of a command.
type Parameter struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// Example is a usage example with explanation.
type Example struct {
	Command     string
	Description string
}

// HelpInfo is the structured help of a single command.
type HelpInfo struct {
	Command     string
	Type        parser.CommandType
	Description string
	Usage       string
	Parameters  []Parameter
	Examples    []Example
	Notes       []string
}

// Registry manages help registration and lookup by command name.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]HelpInfo
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]HelpInfo),
	}
}

// Register adds a command. Names must be non-empty and unique.
func (r *Registry) Register(info HelpInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if info.Command == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := r.commands[info.Command]; exists {
		return fmt.Errorf("command %s already registered", info.Command)
	}

	r.commands[info.Command] = info
	r.order = append(r.order, info.Command)
	return nil
}

// Get retrieves the help of a command by its uppercased name.
func (r *Registry) Get(name string) (HelpInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, exists := r.commands[name]
	return info, exists
}

// GetAll returns every registered command in registration order.
func (r *Registry) GetAll() []HelpInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]HelpInfo, 0, len(r.order))
	for _, name := range r.order {
		all = append(all, r.commands[name])
	}
	return all
}

// GlobalRegistry is the catalog of sequencer commands.
var GlobalRegistry = NewRegistry()

// Lookup returns the help of a command from the global registry.
func Lookup(name string) (HelpInfo, bool) {
	return GlobalRegistry.Get(name)
}

// All returns the help of every command in the global registry.
func All() []HelpInfo {
	return GlobalRegistry.GetAll()
}
