package commands

import (
	"context"
	"strings"

	"github.com/kisueer/kisueeros/internal/shell"
	"github.com/kisueer/kisueeros/pkg/core/config"
)

func registerSettingsCommands(r *shell.Registry, d *deps) error {
	return registerEntries(r, []shell.CommandEntry{
		{Name: "theme", Usage: "theme [name]", Description: "Change the theme", Handler: shell.HandlerFunc(d.theme)},
		{Name: "setprompt", Usage: "setprompt [text]", Description: "Change the prompt string", Handler: shell.HandlerFunc(d.setprompt)},
		{Name: "config", Usage: "config", Description: "Display current configuration", Handler: shell.HandlerFunc(cmdConfig)},
	})
}

func configOf(op string, s *shell.Session) (config.Store, error) {
	if s.Config == nil {
		return nil, shell.Resource(op, "Configuration unavailable", nil)
	}
	return s.Config, nil
}

func (d *deps) theme(_ context.Context, s *shell.Session, args []string) error {
	cfg, err := configOf("theme", s)
	if err != nil {
		return err
	}
	available := strings.Join(config.Themes(), ", ")

	if len(args) == 0 {
		current, _ := cfg.Get(config.KeyTheme)
		s.Printf("Current theme: %s\n", current)
		s.Printf("Available themes: %s\n", available)
		return nil
	}

	name := strings.ToLower(args[0])
	if err := cfg.Set(config.KeyTheme, name); err != nil {
		return shell.UserInput("theme", "Unknown theme: %s\nAvailable themes: %s", name, available)
	}
	s.Printf("Theme changed to: %s\n", name)

	return d.persist("theme", cfg)
}

func (d *deps) setprompt(_ context.Context, s *shell.Session, args []string) error {
	cfg, err := configOf("setprompt", s)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		current, _ := cfg.Get(config.KeyPrompt)
		s.Printf("Current prompt: %s\n", current)
		return nil
	}

	prompt := strings.Join(args, " ")
	if err := cfg.Set(config.KeyPrompt, prompt); err != nil {
		return shell.UserInput("setprompt", "%v", err)
	}
	s.Printf("Prompt changed to: %s\n", prompt)

	return d.persist("setprompt", cfg)
}

// persist saves cfg; on failure the in-memory change is kept
func (d *deps) persist(op string, cfg config.Store) error {
	if err := cfg.Save(); err != nil {
		d.logger.Warn("failed to save configuration", "path", cfg.Path(), "error", err)
		return shell.Resource(op, "Error saving configuration", err)
	}
	d.logger.Debug("configuration saved", "path", cfg.Path())
	return nil
}

func cmdConfig(_ context.Context, s *shell.Session, _ []string) error {
	cfg, err := configOf("config", s)
	if err != nil {
		return err
	}

	theme := themeOf(s)
	s.Println(theme.Heading("KisueerOS Configuration"))
	for _, e := range cfg.Entries() {
		s.Printf("%s: %s\n", e.Key, e.Value)
	}
	if path := cfg.Path(); path != "" {
		s.Println(theme.Muted.Render("file: " + path))
	}
	return nil
}
