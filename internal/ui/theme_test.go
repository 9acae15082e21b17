package ui

import (
	"strings"
	"testing"
)

func TestForName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"default", "default"},
		{"dark", "dark"},
		{" Light ", "light"},
		{"COLORFUL", "colorful"},
		{"neon", "default"},
		{"", "default"},
	}

	for _, tt := range tests {
		if got := ForName(tt.in).Name; got != tt.want {
			t.Errorf("ForName(%q).Name = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPromptHeader(t *testing.T) {
	got := ForName("dark").PromptHeader("kai", "~/src")

	for _, part := range []string{"┌──(", "kai㉿KisueerOS", "~/src"} {
		if !strings.Contains(got, part) {
			t.Errorf("PromptHeader() = %q, missing %q", got, part)
		}
	}
}

func TestPromptLine(t *testing.T) {
	got := ForName("default").PromptLine("MyShell>   ")
	if !strings.Contains(got, "└─") || !strings.Contains(got, "MyShell>") {
		t.Errorf("PromptLine() = %q", got)
	}
	if !strings.HasSuffix(got, " ") {
		t.Errorf("PromptLine() = %q, want trailing space", got)
	}
}

func TestHeading(t *testing.T) {
	if got := ForName("light").Heading("Notes"); !strings.Contains(got, "=== Notes ===") {
		t.Errorf("Heading() = %q", got)
	}
}
