package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kisueer/kisueeros/internal/commands"
	"github.com/kisueer/kisueeros/internal/history"
	"github.com/kisueer/kisueeros/internal/shell"
	"github.com/kisueer/kisueeros/pkg/core/config"
	"github.com/kisueer/kisueeros/pkg/core/logging"
)

var (
	cfgFile     string
	verbose     bool
	logFile     string
	historyPath string
)

var rootCmd = &cobra.Command{
	Use:   "kisueeros",
	Short: "KisueerOS - an interactive command shell",
	Long: `KisueerOS is a small interactive shell with file, note, todo and
utility commands. Run it without arguments to start a session and type
'help' for the list of commands.`,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $"+config.EnvConfig+" or ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write diagnostic logs to stderr")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON diagnostic logs to this file")
	rootCmd.PersistentFlags().StringVar(&historyPath, "history", "", "SQLite file for persistent command history")
}

func runShell(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		printError("failed to open log file", err)
		return err
	}
	defer closeLog()

	store, err := loadConfig(logger)
	if err != nil {
		printError("failed to load configuration", err)
	}

	registry := shell.NewRegistry(logger)
	cmdOpts := commands.Options{Logger: logger}
	shellOpts := shell.Options{Registry: registry, Logger: logger, HandleSignals: true}

	if historyPath != "" {
		hist, err := history.Open(history.Config{Path: historyPath, MaxEntries: history.DefaultConfig().MaxEntries})
		if err != nil {
			printError("failed to open history", err)
		} else {
			defer hist.Close()
			cmdOpts.History = hist
			shellOpts.Recorder = hist
		}
	}

	if err := commands.RegisterAll(registry, cmdOpts); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	session, err := shell.NewSession(store, registry, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	shellOpts.Session = session

	reader, err := shell.NewLineReader(shell.ReaderConfig{
		In:          os.Stdin,
		Out:         cmd.OutOrStdout(),
		Completions: registry.Names,
	})
	if err != nil {
		logger.Warn("line editing disabled", "error", err)
	}
	defer reader.Close()
	shellOpts.Reader = reader

	sh, err := shell.New(shellOpts)
	if err != nil {
		return err
	}

	logger.Info("session started", "session", session.ID, "config", store.Path(), "commands", registry.Len())
	return sh.Run(cmd.Context())
}

// loadConfig always returns a usable store; the error only reports a file
// that could not be read or parsed
func loadConfig(logger *logging.Logger) (*config.FileStore, error) {
	path := config.ResolvePath(cfgFile)
	store, err := config.Load(path)
	if err != nil {
		logger.Warn("using default configuration", "path", path, "error", err)
	}
	return store, err
}

// newLogger builds the diagnostic logger from --verbose and --log-file.
// Without either flag logs are discarded so they never mix with the REPL.
func newLogger() (*logging.Logger, func(), error) {
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		level := "info"
		if verbose {
			level = "debug"
		}
		logger := logging.NewLogger(logging.LoggerConfig{Name: "kisueeros", Level: level, Format: "json", Output: f})
		return logger, func() { f.Close() }, nil
	case verbose:
		logger := logging.NewLogger(logging.LoggerConfig{Name: "kisueeros", Level: "debug", Format: "text", Output: os.Stderr})
		return logger, func() {}, nil
	default:
		return logging.NewLogger(logging.LoggerConfig{Name: "kisueeros", Output: io.Discard}), func() {}, nil
	}
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
