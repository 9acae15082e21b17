// ============================================================================
// KisueerOS - Interactive Shell
// ============================================================================
//
// Package:     shell
// Description: Command registry mapping names to handlers
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package shell

import (
	"context"
	"errors"
	"iter"
	"sort"
	"strings"
	"sync"

	"github.com/kisueer/kisueeros/pkg/core/logging"
)

// Handler is the capability every command implements
type Handler interface {
	Invoke(ctx context.Context, s *Session, args []string) error
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, s *Session, args []string) error

// Invoke calls f
func (f HandlerFunc) Invoke(ctx context.Context, s *Session, args []string) error {
	return f(ctx, s, args)
}

// CommandEntry binds a name to a handler
type CommandEntry struct {
	Name        string
	Usage       string
	Description string
	Handler     Handler
}

// Registry maps lower-cased command names to entries
type Registry struct {
	entries map[string]CommandEntry
	logger  *logging.Logger
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry(logger *logging.Logger) *Registry {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Registry{
		entries: make(map[string]CommandEntry),
		logger:  logger.WithField("component", "registry"),
	}
}

// Register inserts or overwrites the entry for name
func (r *Registry) Register(name string, h Handler, description string) error {
	return r.RegisterEntry(CommandEntry{Name: name, Handler: h, Description: description})
}

// RegisterEntry inserts or overwrites entry
func (r *Registry) RegisterEntry(entry CommandEntry) error {
	name := normalizeName(entry.Name)
	if name == "" {
		return errors.New("command name cannot be empty")
	}
	if entry.Handler == nil {
		return errors.New("command " + name + " has no handler")
	}
	entry.Name = name

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		r.logger.Debug("command overwritten", "command", name)
	}
	r.entries[name] = entry

	return nil
}

// Lookup finds the entry for name, ignoring case
func (r *Registry) Lookup(name string) (CommandEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[normalizeName(name)]
	return entry, ok
}

// Names returns all command names sorted lexicographically
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List yields (name, description) pairs sorted by name. Each iteration
// takes a fresh snapshot, so the sequence can be ranged over repeatedly.
func (r *Registry) List() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range r.Names() {
			entry, ok := r.Lookup(name)
			if !ok {
				continue
			}
			if !yield(entry.Name, entry.Description) {
				return
			}
		}
	}
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
