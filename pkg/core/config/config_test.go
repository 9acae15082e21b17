package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Theme != ThemeDefault {
		t.Errorf("Theme = %v, want %v", s.Theme, ThemeDefault)
	}
	if s.Prompt != "KisueerOS > " {
		t.Errorf("Prompt = %q, want %q", s.Prompt, "KisueerOS > ")
	}
	if s.WelcomeMessage == "" {
		t.Error("WelcomeMessage should have a default")
	}
}

func TestSettings_applyDefaults(t *testing.T) {
	s := Settings{Theme: " DARK ", Prompt: "custom> "}
	s.applyDefaults()

	if s.Theme != ThemeDark {
		t.Errorf("Theme = %v, want %v", s.Theme, ThemeDark)
	}
	if s.Prompt != "custom> " {
		t.Errorf("Prompt should be preserved, got %q", s.Prompt)
	}

	invalid := Settings{Theme: "neon"}
	invalid.applyDefaults()
	if invalid.Theme != ThemeDefault {
		t.Errorf("unknown theme should fall back to default, got %v", invalid.Theme)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if store.Settings() != DefaultSettings() {
		t.Errorf("Settings() = %+v, want defaults", store.Settings())
	}
	if store.Path() != path {
		t.Errorf("Path() = %v, want %v", store.Path(), path)
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "config.toml", "theme = \n[[["},
		{"yaml", "config.yaml", "theme: [unclosed"},
		{"json", "config.json", "{\"theme\": "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			store, err := Load(path)
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("Load() error = %v, want ErrMalformed", err)
			}
			if store == nil {
				t.Fatal("Load() should return a usable store on malformed input")
			}
			if store.Settings() != DefaultSettings() {
				t.Errorf("Settings() = %+v, want defaults", store.Settings())
			}
		})
	}
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "config.toml", "theme = \"light\"\nprompt = \"toml> \"\n"},
		{"yaml", "config.yml", "theme: light\nprompt: \"toml> \"\n"},
		{"json", "config.json", "{\"theme\": \"light\", \"prompt\": \"toml> \"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			store, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			s := store.Settings()
			if s.Theme != ThemeLight {
				t.Errorf("Theme = %v, want light", s.Theme)
			}
			if s.Prompt != "toml> " {
				t.Errorf("Prompt = %q, want %q", s.Prompt, "toml> ")
			}
			if s.WelcomeMessage != DefaultSettings().WelcomeMessage {
				t.Errorf("missing welcomeMessage should default, got %q", s.WelcomeMessage)
			}
		})
	}
}

func TestFileStore_SaveRoundTrip(t *testing.T) {
	for _, file := range []string{"config.toml", "config.yaml", "config.json", "nested/dir/config.toml"} {
		t.Run(file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), file)

			store, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if err := store.Set(KeyPrompt, "MyShell>"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := store.Set(KeyTheme, "Colorful"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := store.Save(); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			reloaded, err := Load(path)
			if err != nil {
				t.Fatalf("reload error = %v", err)
			}
			if got, _ := reloaded.Get(KeyPrompt); got != "MyShell>" {
				t.Errorf("prompt = %q, want MyShell>", got)
			}
			if got, _ := reloaded.Get(KeyTheme); got != ThemeColorful {
				t.Errorf("theme = %q, want colorful", got)
			}
		})
	}
}

func TestFileStore_Set(t *testing.T) {
	store := New("unused.toml", Settings{})

	if err := store.Set(KeyTheme, "neon"); err == nil {
		t.Error("Set() should reject unknown themes")
	}
	if got, _ := store.Get(KeyTheme); got != ThemeDefault {
		t.Errorf("rejected Set() changed theme to %q", got)
	}
	if err := store.Set("color", "red"); err == nil {
		t.Error("Set() should reject unknown keys")
	}
	if _, ok := store.Get("color"); ok {
		t.Error("Get() should report unknown keys as missing")
	}
	if err := store.Set(KeyWelcomeMessage, "hi"); err != nil {
		t.Errorf("Set() error = %v", err)
	}
}

func TestFileStore_Entries(t *testing.T) {
	store := New("unused.toml", Settings{Theme: "dark"})
	entries := store.Entries()

	keys := []string{KeyTheme, KeyPrompt, KeyWelcomeMessage}
	if len(entries) != len(keys) {
		t.Fatalf("len(Entries()) = %d, want %d", len(entries), len(keys))
	}
	for i, key := range keys {
		if entries[i].Key != key {
			t.Errorf("Entries()[%d].Key = %v, want %v", i, entries[i].Key, key)
		}
	}
	if entries[0].Value != ThemeDark {
		t.Errorf("theme entry = %v, want dark", entries[0].Value)
	}
}

func TestFileStore_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, Settings{})

	if err := store.Save(); err == nil {
		t.Error("Save() onto a directory should fail")
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfig, "")
	if got := ResolvePath(""); got != DefaultPath {
		t.Errorf("ResolvePath() = %v, want %v", got, DefaultPath)
	}

	t.Setenv(EnvConfig, "/tmp/from-env.yaml")
	if got := ResolvePath(""); got != "/tmp/from-env.yaml" {
		t.Errorf("ResolvePath() = %v, want env value", got)
	}
	if got := ResolvePath("/etc/explicit.toml"); got != "/etc/explicit.toml" {
		t.Errorf("ResolvePath() = %v, want explicit value", got)
	}
}
