package commands

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/kisueer/kisueeros/internal/calc"
	"github.com/kisueer/kisueeros/internal/shell"
)

const defaultHistoryLimit = 20

func registerAdvancedCommands(r *shell.Registry, d *deps) error {
	return registerEntries(r, []shell.CommandEntry{
		{Name: "calc", Usage: "calc <expression>", Description: "Simple calculator", Handler: shell.HandlerFunc(cmdCalc)},
		{Name: "countdown", Usage: "countdown <seconds>", Description: "Start a countdown timer", Handler: shell.HandlerFunc(d.countdown)},
		{Name: "history", Usage: "history [n]", Description: "Show recently entered commands", Handler: shell.HandlerFunc(d.showHistory)},
	})
}

func cmdCalc(_ context.Context, s *shell.Session, args []string) error {
	if len(args) == 0 {
		return shell.Usage("calc <expression>")
	}

	expr := strings.Join(args, " ")
	result, err := calc.Eval(expr)
	if err != nil {
		return shell.UserInput("calc", "Error evaluating expression: %v", err)
	}
	s.Printf("%s = %s\n", expr, calc.Format(result))
	return nil
}

func (d *deps) countdown(ctx context.Context, s *shell.Session, args []string) error {
	if len(args) == 0 || !isDigits(args[0]) {
		return shell.Usage("countdown <seconds>")
	}
	seconds, err := strconv.Atoi(args[0])
	if err != nil {
		return shell.Usage("countdown <seconds>")
	}

	s.Printf("Countdown started: %d seconds\n", seconds)

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	for remaining := seconds; remaining > 0; remaining-- {
		s.Printf("\rTime remaining: %d seconds", remaining)
		select {
		case <-ctx.Done():
			s.Println()
			return &shell.Error{Kind: shell.KindInterrupt, Op: "countdown", Msg: "Countdown interrupted!"}
		case <-ticker.C:
		}
	}

	s.Println()
	s.Println("Countdown finished!")
	return nil
}

func (d *deps) showHistory(ctx context.Context, s *shell.Session, args []string) error {
	if d.history == nil {
		return shell.UserInput("history", "History is disabled. Start KisueerOS with --history to enable it.")
	}

	limit := defaultHistoryLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return shell.Usage("history [n]")
		}
		limit = n
	}

	entries, err := d.history.Recent(ctx, limit)
	if err != nil {
		return shell.Resource("history", "Error reading history", err)
	}
	if len(entries) == 0 {
		s.Println("No history yet.")
		return nil
	}

	muted := themeOf(s).Muted
	for i, e := range entries {
		s.Printf("%4d  %s  %s\n", i+1, muted.Render(e.Timestamp.Local().Format(stampLayout)), e.Line)
	}
	return nil
}
