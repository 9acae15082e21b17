package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// LineReader supplies one line of input per call. Implementations return
// io.EOF at end of input and ErrInterrupt when the user presses Ctrl+C.
type LineReader interface {
	Readline(prompt string) (string, error)
	Close() error
}

// ReaderConfig configures NewLineReader
type ReaderConfig struct {
	In          io.Reader
	Out         io.Writer
	Completions func() []string
	HistoryFile string
}

// NewLineReader returns a readline-backed reader when attached to a
// terminal and a buffered reader otherwise
func NewLineReader(cfg ReaderConfig) (LineReader, error) {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	f, ok := cfg.In.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return NewBufferedReader(cfg.In, cfg.Out), nil
	}

	rl, err := newReadlineReader(cfg)
	if err != nil {
		return NewBufferedReader(cfg.In, cfg.Out), fmt.Errorf("readline unavailable, using basic input: %w", err)
	}
	return rl, nil
}

type readlineReader struct {
	rl *readline.Instance
}

func newReadlineReader(cfg ReaderConfig) (*readlineReader, error) {
	rlCfg := &readline.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryFile:     cfg.HistoryFile,
	}
	if cfg.Completions != nil {
		rlCfg.AutoComplete = readline.NewPrefixCompleter(
			readline.PcItemDynamic(func(string) []string { return cfg.Completions() }),
		)
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) Readline(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupt
	}
	return line, err
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

// BufferedReader reads lines from any io.Reader, printing the prompt itself
type BufferedReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewBufferedReader creates a reader over in that writes prompts to out
func NewBufferedReader(in io.Reader, out io.Writer) *BufferedReader {
	return &BufferedReader{in: bufio.NewReader(in), out: out}
}

// Readline prints prompt and reads up to the next newline
func (b *BufferedReader) Readline(prompt string) (string, error) {
	fmt.Fprint(b.out, prompt)

	line, err := b.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close is a no-op
func (b *BufferedReader) Close() error {
	return nil
}
