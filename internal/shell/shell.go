// ============================================================================
// KisueerOS - Interactive Shell
// ============================================================================
//
// Package:     shell
// Description: Read-tokenize-lookup-invoke loop driving a session
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/kisueer/kisueeros/internal/ui"
	"github.com/kisueer/kisueeros/pkg/core/config"
	"github.com/kisueer/kisueeros/pkg/core/logging"
)

// InterruptNotice is printed when Ctrl+C arrives while waiting for input
const InterruptNotice = "Use 'exit' to quit KisueerOS."

// Dispatched describes one evaluated line
type Dispatched struct {
	SessionID string
	Line      string
	Command   string
	Err       error
	StartedAt time.Time
	Duration  time.Duration
}

// Recorder receives every dispatched line, e.g. to persist history
type Recorder interface {
	Record(ctx context.Context, d Dispatched) error
}

// Options configures a Shell
type Options struct {
	Registry *Registry
	Session  *Session
	Reader   LineReader
	Logger   *logging.Logger
	Recorder Recorder

	// HandleSignals makes Run trap SIGINT for its whole lifetime
	HandleSignals bool
}

// Shell is the interactive dispatch loop
type Shell struct {
	registry      *Registry
	session       *Session
	reader        LineReader
	logger        *logging.Logger
	recorder      Recorder
	handleSignals bool

	mu            sync.Mutex
	cancelCurrent context.CancelFunc
}

// New creates a shell from opts
func New(opts Options) (*Shell, error) {
	if opts.Registry == nil {
		return nil, errors.New("shell: registry is required")
	}
	if opts.Session == nil {
		return nil, errors.New("shell: session is required")
	}
	if opts.Session.Out == nil {
		opts.Session.Out = os.Stdout
	}
	if opts.Session.Commands == nil {
		opts.Session.Commands = opts.Registry
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	s := &Shell{
		registry:      opts.Registry,
		session:       opts.Session,
		reader:        opts.Reader,
		logger:        opts.Logger.WithField("session", opts.Session.ID),
		recorder:      opts.Recorder,
		handleSignals: opts.HandleSignals,
	}
	if s.reader != nil {
		s.session.SetAsker(s.reader.Readline)
	}
	return s, nil
}

// Session returns the session driven by this shell
func (s *Shell) Session() *Session {
	return s.session
}

// Run prints the welcome message and loops until the session stops or
// input ends. EOF is a clean exit and returns nil.
func (s *Shell) Run(ctx context.Context) error {
	if s.reader == nil {
		return errors.New("shell: no line reader configured")
	}

	if s.handleSignals {
		sigs := make(chan os.Signal, 1)
		done := make(chan struct{})
		signal.Notify(sigs, os.Interrupt)
		defer func() {
			signal.Stop(sigs)
			close(done)
		}()
		go s.watchInterrupts(sigs, done)
	}

	if msg, ok := s.setting(config.KeyWelcomeMessage); ok && msg != "" {
		s.session.Println(msg)
	}

	for s.session.Running() {
		if err := ctx.Err(); err != nil {
			return err
		}

		theme := ui.ForName(s.settingOr(config.KeyTheme, config.ThemeDefault))
		s.session.Println(theme.PromptHeader(s.session.Username, s.session.DisplayDir()))

		line, err := s.reader.Readline(theme.PromptLine(s.settingOr(config.KeyPrompt, "$")))
		switch {
		case errors.Is(err, ErrInterrupt):
			s.session.Println(InterruptNotice)
			continue
		case errors.Is(err, io.EOF):
			s.session.Println()
			s.logger.Info("input closed")
			return nil
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}

		_ = s.Dispatch(ctx, line)
	}

	s.logger.Info("session ended")
	return nil
}

// Dispatch evaluates one line. Every failure is reported to the user here
// and also returned for callers that want to inspect it.
func (s *Shell) Dispatch(ctx context.Context, line string) error {
	name, args, ok := splitCommand(line)
	if !ok {
		return nil
	}

	started := time.Now()
	err := s.invoke(ctx, name, args)
	elapsed := time.Since(started)

	if err != nil {
		s.report(err)
		s.logger.Warn("command failed", "command", name, "kind", string(KindOf(err)), "error", err)
	} else {
		s.logger.Debug("command dispatched", "command", name, "args", len(args), "duration", elapsed.String())
	}

	if s.recorder != nil {
		rec := Dispatched{
			SessionID: s.session.ID,
			Line:      line,
			Command:   name,
			Err:       err,
			StartedAt: started,
			Duration:  elapsed,
		}
		if recErr := s.recorder.Record(ctx, rec); recErr != nil {
			s.logger.Warn("failed to record history", "error", recErr)
		}
	}

	return err
}

func (s *Shell) invoke(ctx context.Context, name string, args []string) (err error) {
	entry, ok := s.registry.Lookup(name)
	if !ok {
		return UnknownCommand(name)
	}

	cmdCtx, cancel := context.WithCancel(ctx)
	s.setCancel(cancel)
	defer func() {
		s.setCancel(nil)
		cancel()
	}()

	defer func() {
		if r := recover(); r != nil {
			err = &Error{Kind: KindInternal, Op: name, Err: fmt.Errorf("%s crashed: %v", name, r)}
		}
	}()

	return entry.Handler.Invoke(cmdCtx, s.session, args)
}

func (s *Shell) report(err error) {
	theme := ui.ForName(s.settingOr(config.KeyTheme, config.ThemeDefault))

	switch KindOf(err) {
	case KindUnknownCommand:
		s.session.Println(theme.Error.Render(err.Error()))
		s.session.Println("Type 'help' to see available commands.")
	case KindUserInput, KindInterrupt, KindResource:
		s.session.Println(err.Error())
	default:
		s.session.Println(theme.Error.Render("Error: " + err.Error()))
	}
}

func (s *Shell) setCancel(cancel context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelCurrent = cancel
}

// Interrupt cancels the running handler, if any, and reports whether one
// was running
func (s *Shell) Interrupt() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelCurrent == nil {
		return false
	}
	s.cancelCurrent()
	return true
}

func (s *Shell) watchInterrupts(sigs <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-sigs:
			if !s.Interrupt() {
				// Only reachable with the buffered reader: readline turns
				// Ctrl+C into ErrInterrupt itself.
				s.session.Println()
				s.session.Println(InterruptNotice)
			}
		}
	}
}

func (s *Shell) setting(key string) (string, bool) {
	if s.session.Config == nil {
		return "", false
	}
	return s.session.Config.Get(key)
}

func (s *Shell) settingOr(key, fallback string) string {
	if v, ok := s.setting(key); ok && v != "" {
		return v
	}
	return fallback
}
