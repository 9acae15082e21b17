// ============================================================================
// KisueerOS - Interactive Shell
// ============================================================================
//
// Package:     commands
// Description: Built-in leaf handlers and their registration
// Created:     2026-10-15
// License:     MIT
// ============================================================================

// Package commands provides the built-in KisueerOS commands. Each group of
// commands registers itself through a register*Commands function; RegisterAll
// installs every group into a shell.Registry.
package commands

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/viant/afs"

	"github.com/kisueer/kisueeros/internal/history"
	"github.com/kisueer/kisueeros/internal/shell"
	"github.com/kisueer/kisueeros/internal/ui"
	"github.com/kisueer/kisueeros/pkg/core/config"
	"github.com/kisueer/kisueeros/pkg/core/logging"
)

// HistorySource supplies recently dispatched lines for the history command
type HistorySource interface {
	Recent(ctx context.Context, n int) ([]history.Entry, error)
}

// Options carries the dependencies of the built-in commands. Zero values
// are replaced with production defaults.
type Options struct {
	FS      afs.Service
	Rand    *rand.Rand
	Tick    time.Duration // countdown step, one second by default
	History HistorySource // nil disables the history command output
	Logger  *logging.Logger
}

type deps struct {
	fs      afs.Service
	rand    *rand.Rand
	tick    time.Duration
	history HistorySource
	logger  *logging.Logger
}

func newDeps(opts Options) *deps {
	d := &deps{
		fs:      opts.FS,
		rand:    opts.Rand,
		tick:    opts.Tick,
		history: opts.History,
		logger:  opts.Logger,
	}
	if d.fs == nil {
		d.fs = afs.New()
	}
	if d.rand == nil {
		d.rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x6b6973756565726f))
	}
	if d.tick <= 0 {
		d.tick = time.Second
	}
	if d.logger == nil {
		d.logger = logging.Nop()
	}
	d.logger = d.logger.WithField("component", "commands")
	return d
}

// RegisterAll installs every built-in command into r
func RegisterAll(r *shell.Registry, opts Options) error {
	d := newDeps(opts)

	for _, register := range []func(r *shell.Registry, d *deps) error{
		registerCoreCommands,
		registerSystemCommands,
		registerFileCommands,
		registerUserCommands,
		registerFunCommands,
		registerNoteCommands,
		registerSettingsCommands,
		registerAdvancedCommands,
	} {
		if err := register(r, d); err != nil {
			return err
		}
	}

	d.logger.Debug("commands registered", "count", r.Len())
	return nil
}

func registerEntries(r *shell.Registry, entries []shell.CommandEntry) error {
	for _, entry := range entries {
		if err := r.RegisterEntry(entry); err != nil {
			return err
		}
	}
	return nil
}

// themeOf returns the theme selected in the session configuration
func themeOf(s *shell.Session) ui.Theme {
	if s.Config == nil {
		return ui.ForName(config.ThemeDefault)
	}
	name, _ := s.Config.Get(config.KeyTheme)
	return ui.ForName(name)
}
