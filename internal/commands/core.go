package commands

import (
	"context"
	"strings"

	"github.com/kisueer/kisueeros/internal/shell"
)

// clearSequence moves the cursor home and erases the display
const clearSequence = "\033[H\033[2J"

func registerCoreCommands(r *shell.Registry, d *deps) error {
	return registerEntries(r, []shell.CommandEntry{
		{Name: "help", Usage: "help [command]", Description: "Show available commands", Handler: shell.HandlerFunc(cmdHelp)},
		{Name: "exit", Usage: "exit", Description: "Exit KisueerOS", Handler: shell.HandlerFunc(cmdExit)},
		{Name: "clear", Usage: "clear", Description: "Clear the screen", Handler: shell.HandlerFunc(cmdClear)},
		{Name: "echo", Usage: "echo [text...]", Description: "Echo text back to the terminal", Handler: shell.HandlerFunc(cmdEcho)},
	})
}

func cmdHelp(_ context.Context, s *shell.Session, args []string) error {
	if s.Commands == nil {
		return shell.UserInput("help", "No commands registered.")
	}

	if len(args) > 0 {
		entry, ok := s.Commands.Lookup(args[0])
		if !ok {
			return shell.UserInput("help", "Command not found: %s", args[0])
		}
		s.Printf("%s: %s\n", entry.Name, entry.Description)
		if entry.Usage != "" {
			s.Printf("Usage: %s\n", entry.Usage)
		}
		return nil
	}

	s.Println(themeOf(s).Title.Render("Available commands:"))
	for name, desc := range s.Commands.List() {
		s.Printf("  %-12s - %s\n", name, desc)
	}
	s.Println()
	s.Println("Type 'help <command>' for more information on a specific command.")
	return nil
}

func cmdExit(_ context.Context, s *shell.Session, _ []string) error {
	s.Println("Exiting KisueerOS. Goodbye!")
	s.Stop()
	return nil
}

func cmdClear(_ context.Context, s *shell.Session, _ []string) error {
	s.Printf("%s", clearSequence)
	return nil
}

func cmdEcho(_ context.Context, s *shell.Session, args []string) error {
	s.Println(strings.Join(args, " "))
	return nil
}
