package commands

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/kisueer/kisueeros/internal/shell"
)

func registerSystemCommands(r *shell.Registry, d *deps) error {
	return registerEntries(r, []shell.CommandEntry{
		{Name: "sysinfo", Usage: "sysinfo", Description: "Display system information", Handler: shell.HandlerFunc(cmdSysinfo)},
		{Name: "time", Usage: "time", Description: "Display current time", Handler: shell.HandlerFunc(cmdTime)},
		{Name: "date", Usage: "date", Description: "Display current date", Handler: shell.HandlerFunc(cmdDate)},
	})
}

func cmdSysinfo(_ context.Context, s *shell.Session, _ []string) error {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	s.Println(themeOf(s).Heading("System Information"))
	s.Printf("Go version: %s\n", runtime.Version())
	s.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	s.Printf("CPUs: %d\n", runtime.NumCPU())
	s.Printf("Node: %s\n", host)

	if total, free, ok := diskUsage(s.Cwd); ok {
		s.Printf("Disk total: %s\n", formatSize(float64(total)))
		s.Printf("Disk free: %s\n", formatSize(float64(free)))
	}
	return nil
}

func cmdTime(_ context.Context, s *shell.Session, _ []string) error {
	s.Printf("Current time: %s\n", s.Now().Format("15:04:05"))
	return nil
}

func cmdDate(_ context.Context, s *shell.Session, _ []string) error {
	s.Printf("Current date: %s\n", s.Now().Format("2006-01-02"))
	return nil
}

// formatSize renders a byte count with two decimals, B through PB
func formatSize(size float64) string {
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f PB", size)
}
