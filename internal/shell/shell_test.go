package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

// scriptedReader replays a fixed sequence of lines and errors
type scriptedReader struct {
	steps []step
	reads int
}

type step struct {
	line string
	err  error
}

func (r *scriptedReader) Readline(prompt string) (string, error) {
	if r.reads >= len(r.steps) {
		r.reads++
		return "", io.EOF
	}
	st := r.steps[r.reads]
	r.reads++
	return st.line, st.err
}

func (r *scriptedReader) Close() error { return nil }

func lines(ls ...string) []step {
	steps := make([]step, len(ls))
	for i, l := range ls {
		steps[i] = step{line: l}
	}
	return steps
}

type recorderFunc func(ctx context.Context, d Dispatched) error

func (f recorderFunc) Record(ctx context.Context, d Dispatched) error { return f(ctx, d) }

func newTestShell(t *testing.T, reader LineReader) (*Shell, *bytes.Buffer, *int) {
	t.Helper()

	out := &bytes.Buffer{}
	reg := NewRegistry(nil)
	calls := 0

	mustRegister(t, reg, "count", func(ctx context.Context, s *Session, args []string) error {
		calls++
		return nil
	})
	mustRegister(t, reg, "exit", func(ctx context.Context, s *Session, args []string) error {
		s.Stop()
		return nil
	})
	mustRegister(t, reg, "note", func(ctx context.Context, s *Session, args []string) error {
		s.AddNote(strings.Join(args, " "))
		return nil
	})
	mustRegister(t, reg, "boom", func(ctx context.Context, s *Session, args []string) error {
		panic("kaboom")
	})
	mustRegister(t, reg, "fail", func(ctx context.Context, s *Session, args []string) error {
		return Usage("fail <arg>")
	})

	sess := &Session{ID: "test", Username: "tester", Home: "/home/tester", Cwd: "/home/tester", running: true}
	sess.Out = out

	sh, err := New(Options{Registry: reg, Session: sess, Reader: reader})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return sh, out, &calls
}

func mustRegister(t *testing.T, reg *Registry, name string, fn HandlerFunc) {
	t.Helper()
	if err := reg.Register(name, fn, name+" command"); err != nil {
		t.Fatalf("Register(%q) error = %v", name, err)
	}
}

func TestNew_RequiresRegistryAndSession(t *testing.T) {
	if _, err := New(Options{Session: &Session{}}); err == nil {
		t.Error("expected error without registry")
	}
	if _, err := New(Options{Registry: NewRegistry(nil)}); err == nil {
		t.Error("expected error without session")
	}
}

func TestDispatch_BlankLines(t *testing.T) {
	sh, out, calls := newTestShell(t, nil)

	for _, line := range []string{"", "   ", "\t", " \t  "} {
		if err := sh.Dispatch(context.Background(), line); err != nil {
			t.Errorf("Dispatch(%q) error = %v", line, err)
		}
	}

	if *calls != 0 {
		t.Errorf("handler called %d times for blank lines", *calls)
	}
	if out.Len() != 0 {
		t.Errorf("blank lines produced output %q", out.String())
	}
	if len(sh.Session().Notes) != 0 || !sh.Session().Running() {
		t.Error("blank lines changed the session")
	}
}

func TestDispatch_CaseInsensitiveName(t *testing.T) {
	sh, _, calls := newTestShell(t, nil)

	for _, line := range []string{"count", "COUNT", "  Count  extra args"} {
		if err := sh.Dispatch(context.Background(), line); err != nil {
			t.Fatalf("Dispatch(%q) error = %v", line, err)
		}
	}
	if *calls != 3 {
		t.Errorf("calls = %d, want 3", *calls)
	}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	sh, out, _ := newTestShell(t, nil)
	before := *sh.Session()

	err := sh.Dispatch(context.Background(), "frobnicate now")
	if !IsKind(err, KindUnknownCommand) {
		t.Fatalf("error kind = %v, want %v", KindOf(err), KindUnknownCommand)
	}

	got := out.String()
	if !strings.Contains(got, "Command not found: frobnicate") {
		t.Errorf("output %q lacks not-found message", got)
	}
	if !strings.Contains(got, "Type 'help' to see available commands.") {
		t.Errorf("output %q lacks help hint", got)
	}

	after := sh.Session()
	if after.Cwd != before.Cwd || after.Username != before.Username || len(after.Notes) != 0 || !after.Running() {
		t.Error("unknown command changed the session")
	}
}

func TestDispatch_RecoversPanic(t *testing.T) {
	sh, out, _ := newTestShell(t, nil)

	err := sh.Dispatch(context.Background(), "boom")
	if !IsKind(err, KindInternal) {
		t.Fatalf("error kind = %v, want %v", KindOf(err), KindInternal)
	}
	if !strings.Contains(out.String(), "kaboom") {
		t.Errorf("output %q does not describe the panic", out.String())
	}
	if !sh.Session().Running() {
		t.Error("panic stopped the session")
	}
}

func TestDispatch_UserInputError(t *testing.T) {
	sh, out, _ := newTestShell(t, nil)

	err := sh.Dispatch(context.Background(), "fail")
	if !IsKind(err, KindUserInput) {
		t.Fatalf("error kind = %v, want %v", KindOf(err), KindUserInput)
	}
	if got := strings.TrimSpace(out.String()); got != "Usage: fail <arg>" {
		t.Errorf("output = %q", got)
	}
}

func TestDispatch_Records(t *testing.T) {
	sh, _, _ := newTestShell(t, nil)

	var got []Dispatched
	sh.recorder = recorderFunc(func(ctx context.Context, d Dispatched) error {
		got = append(got, d)
		return errors.New("disk full")
	})

	_ = sh.Dispatch(context.Background(), "note hello world")
	_ = sh.Dispatch(context.Background(), "")
	_ = sh.Dispatch(context.Background(), "nope")

	if len(got) != 2 {
		t.Fatalf("recorded %d lines, want 2", len(got))
	}
	if got[0].Command != "note" || got[0].Line != "note hello world" || got[0].Err != nil {
		t.Errorf("first record = %+v", got[0])
	}
	if got[0].SessionID != "test" {
		t.Errorf("SessionID = %q", got[0].SessionID)
	}
	if !IsKind(got[1].Err, KindUnknownCommand) {
		t.Errorf("second record error = %v", got[1].Err)
	}
}

func TestDispatch_InterruptCancelsHandler(t *testing.T) {
	sh, out, _ := newTestShell(t, nil)

	started := make(chan struct{})
	mustRegister(t, sh.registry, "wait", func(ctx context.Context, s *Session, args []string) error {
		close(started)
		select {
		case <-ctx.Done():
			return &Error{Kind: KindInterrupt, Op: "wait", Msg: "Wait interrupted!"}
		case <-time.After(5 * time.Second):
			return nil
		}
	})

	go func() {
		<-started
		sh.Interrupt()
	}()

	err := sh.Dispatch(context.Background(), "wait")
	if !errors.Is(err, ErrInterrupt) {
		t.Fatalf("error = %v, want interrupt", err)
	}
	if !strings.Contains(out.String(), "Wait interrupted!") {
		t.Errorf("output = %q", out.String())
	}
	if sh.Interrupt() {
		t.Error("Interrupt() reported a running handler after dispatch returned")
	}
}

func TestRun_ExitStopsReading(t *testing.T) {
	reader := &scriptedReader{steps: lines("note first", "exit", "note second")}
	sh, _, _ := newTestShell(t, reader)

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if reader.reads != 2 {
		t.Errorf("reads = %d, want 2", reader.reads)
	}
	if sh.Session().Running() {
		t.Error("session still running after exit")
	}
	if n := len(sh.Session().Notes); n != 1 {
		t.Errorf("notes = %d, want 1", n)
	}
}

func TestRun_InterruptDuringRead(t *testing.T) {
	reader := &scriptedReader{steps: []step{
		{line: "note kept"},
		{err: ErrInterrupt},
		{line: "count"},
	}}
	sh, out, calls := newTestShell(t, reader)

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), InterruptNotice) {
		t.Errorf("output %q lacks interrupt notice", out.String())
	}
	if *calls != 1 {
		t.Errorf("loop did not continue after interrupt, calls = %d", *calls)
	}
	if n := len(sh.Session().Notes); n != 1 {
		t.Errorf("notes = %d, want 1", n)
	}
}

func TestRun_EOFIsClean(t *testing.T) {
	reader := &scriptedReader{}
	sh, _, _ := newTestShell(t, reader)

	if err := sh.Run(context.Background()); err != nil {
		t.Errorf("Run() error = %v, want nil on EOF", err)
	}
	if reader.reads != 1 {
		t.Errorf("reads = %d, want 1", reader.reads)
	}
}

func TestRun_ReadFailure(t *testing.T) {
	boom := errors.New("terminal gone")
	reader := &scriptedReader{steps: []step{{err: boom}}}
	sh, _, _ := newTestShell(t, reader)

	err := sh.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want wrapped %v", err, boom)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	reader := &scriptedReader{steps: lines("count")}
	sh, _, calls := newTestShell(t, reader)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sh.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if *calls != 0 || reader.reads != 0 {
		t.Error("cancelled run still read input")
	}
}

func TestRun_AskUsesReader(t *testing.T) {
	reader := &scriptedReader{steps: lines("ask", "42")}
	sh, _, _ := newTestShell(t, reader)

	var answer string
	mustRegister(t, sh.registry, "ask", func(ctx context.Context, s *Session, args []string) error {
		a, err := s.Ask("? ")
		answer = a
		return err
	})

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if answer != "42" {
		t.Errorf("answer = %q, want 42", answer)
	}
}
