package commands

import (
	"context"

	"github.com/kisueer/kisueeros/internal/shell"
)

func registerUserCommands(r *shell.Registry, d *deps) error {
	return registerEntries(r, []shell.CommandEntry{
		{Name: "whoami", Usage: "whoami", Description: "Display current username", Handler: shell.HandlerFunc(cmdWhoami)},
		{Name: "setuser", Usage: "setuser <new_username>", Description: "Change username", Handler: shell.HandlerFunc(cmdSetuser)},
	})
}

func cmdWhoami(_ context.Context, s *shell.Session, _ []string) error {
	s.Println(s.Username)
	return nil
}

func cmdSetuser(_ context.Context, s *shell.Session, args []string) error {
	if len(args) == 0 {
		return shell.Usage("setuser <new_username>")
	}
	s.Username = args[0]
	s.Printf("Username changed to: %s\n", s.Username)
	return nil
}
