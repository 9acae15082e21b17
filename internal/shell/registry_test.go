package shell

import (
	"context"
	"reflect"
	"testing"
)

func noop(ctx context.Context, s *Session, args []string) error { return nil }

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		cmd     string
		handler Handler
		wantErr bool
	}{
		{"simple", "help", HandlerFunc(noop), false},
		{"mixed case", "SetPrompt", HandlerFunc(noop), false},
		{"padded", "  echo ", HandlerFunc(noop), false},
		{"empty", "", HandlerFunc(noop), true},
		{"blank", "   ", HandlerFunc(noop), true},
		{"nil handler", "ls", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(nil)
			err := r.Register(tt.cmd, tt.handler, "desc")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register(%q) error = %v, wantErr %v", tt.cmd, err, tt.wantErr)
			}
			if tt.wantErr && r.Len() != 0 {
				t.Errorf("failed registration left %d entries", r.Len())
			}
		})
	}
}

func TestRegistry_LookupCaseInsensitive(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.Register("SetPrompt", HandlerFunc(noop), "change the prompt"); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"setprompt", "SETPROMPT", "SetPrompt", " setPrompt "} {
		entry, ok := r.Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) not found", name)
			continue
		}
		if entry.Name != "setprompt" {
			t.Errorf("Lookup(%q).Name = %q", name, entry.Name)
		}
	}

	if _, ok := r.Lookup("prompt"); ok {
		t.Error("Lookup(prompt) found a partial match")
	}
}

type markerHandler struct{ id int }

func (m *markerHandler) Invoke(ctx context.Context, s *Session, args []string) error { return nil }

func TestRegistry_RoundTripReturnsSameHandler(t *testing.T) {
	r := NewRegistry(nil)
	h := &markerHandler{id: 7}

	if err := r.RegisterEntry(CommandEntry{Name: "mark", Usage: "mark", Description: "d", Handler: h}); err != nil {
		t.Fatal(err)
	}

	entry, ok := r.Lookup("MARK")
	if !ok {
		t.Fatal("Lookup(MARK) not found")
	}
	if entry.Handler != Handler(h) {
		t.Error("Lookup returned a different handler")
	}
	if entry.Usage != "mark" {
		t.Errorf("Usage = %q", entry.Usage)
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	r := NewRegistry(nil)
	first, second := &markerHandler{id: 1}, &markerHandler{id: 2}

	_ = r.Register("x", first, "first")
	_ = r.Register("X", second, "second")

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	entry, _ := r.Lookup("x")
	if entry.Handler != Handler(second) || entry.Description != "second" {
		t.Errorf("entry = %+v, want the second registration", entry)
	}
}

func TestRegistry_ListSortedAndRestartable(t *testing.T) {
	r := NewRegistry(nil)
	for _, name := range []string{"todo", "cd", "Help", "ls"} {
		_ = r.Register(name, HandlerFunc(noop), name+"!")
	}

	want := []string{"cd", "help", "ls", "todo"}
	for pass := 0; pass < 2; pass++ {
		var got []string
		for name, desc := range r.List() {
			got = append(got, name)
			if desc == "" {
				t.Errorf("empty description for %s", name)
			}
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("pass %d: List() = %v, want %v", pass, got, want)
		}
	}

	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistry_ListStopsEarly(t *testing.T) {
	r := NewRegistry(nil)
	for _, name := range []string{"a", "b", "c"} {
		_ = r.Register(name, HandlerFunc(noop), "")
	}

	var got []string
	for name := range r.List() {
		got = append(got, name)
		if name == "b" {
			break
		}
	}
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("got %v", got)
	}
}
