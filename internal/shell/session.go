// ============================================================================
// KisueerOS - Interactive Shell
// ============================================================================
//
// Package:     shell
// Description: Session state shared by all handlers of one run
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package shell

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kisueer/kisueeros/pkg/core/config"
)

// Note is a timestamped free-text note
type Note struct {
	Text      string
	CreatedAt time.Time
}

// Todo is a task that can be marked done
type Todo struct {
	Task      string
	CreatedAt time.Time
	Done      bool
}

// Session holds everything mutable that survives between dispatches
type Session struct {
	ID       string
	Username string
	Home     string
	Cwd      string
	Notes    []Note
	Todos    []Todo
	Config   config.Store
	Commands *Registry
	Out      io.Writer

	running bool
	ask     func(prompt string) (string, error)
	now     func() time.Time
}

// NewSession creates a session for the current OS user and directory
func NewSession(cfg config.Store, commands *Registry, out io.Writer) (*Session, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	return &Session{
		ID:       uuid.NewString(),
		Username: currentUsername(),
		Home:     home,
		Cwd:      cwd,
		Config:   cfg,
		Commands: commands,
		Out:      out,
		running:  true,
		now:      time.Now,
	}, nil
}

func currentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "user"
}

// Running reports whether the dispatch loop should keep reading
func (s *Session) Running() bool {
	return s.running
}

// Stop ends the dispatch loop after the current handler returns
func (s *Session) Stop() {
	s.running = false
}

// Now returns the session clock
func (s *Session) Now() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// DisplayDir returns Cwd with the home directory shortened to ~
func (s *Session) DisplayDir() string {
	if s.Home == "" {
		return s.Cwd
	}
	if s.Cwd == s.Home {
		return "~"
	}
	prefix := strings.TrimSuffix(s.Home, string(filepath.Separator)) + string(filepath.Separator)
	if strings.HasPrefix(s.Cwd, prefix) {
		return "~" + string(filepath.Separator) + strings.TrimPrefix(s.Cwd, prefix)
	}
	return s.Cwd
}

// Resolve turns p into an absolute, cleaned path. Relative paths are
// resolved against Cwd; a leading ~ refers to Home.
func (s *Session) Resolve(p string) string {
	switch {
	case p == "":
		return s.Cwd
	case p == "~":
		return s.Home
	case strings.HasPrefix(p, "~/"):
		return filepath.Join(s.Home, p[2:])
	case filepath.IsAbs(p):
		return filepath.Clean(p)
	default:
		return filepath.Join(s.Cwd, p)
	}
}

// AddNote appends a note stamped with the session clock
func (s *Session) AddNote(text string) Note {
	note := Note{Text: text, CreatedAt: s.Now()}
	s.Notes = append(s.Notes, note)
	return note
}

// AddTodo appends an open todo stamped with the session clock
func (s *Session) AddTodo(task string) Todo {
	todo := Todo{Task: task, CreatedAt: s.Now()}
	s.Todos = append(s.Todos, todo)
	return todo
}

// CompleteTodo marks the n-th (1-based) todo as done
func (s *Session) CompleteTodo(n int) error {
	if n < 1 || n > len(s.Todos) {
		return UserInput("done", "Invalid todo number.")
	}
	s.Todos[n-1].Done = true
	return nil
}

// SetClock replaces the clock used for note and todo timestamps
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// SetAsker installs the function Ask delegates to
func (s *Session) SetAsker(ask func(prompt string) (string, error)) {
	s.ask = ask
}

// Ask reads a follow-up answer from the user through the shell's reader
func (s *Session) Ask(prompt string) (string, error) {
	if s.ask == nil {
		return "", io.EOF
	}
	return s.ask(prompt)
}

// Printf writes formatted output for the user
func (s *Session) Printf(format string, args ...interface{}) {
	fmt.Fprintf(s.Out, format, args...)
}

// Println writes a line of output for the user
func (s *Session) Println(args ...interface{}) {
	fmt.Fprintln(s.Out, args...)
}
