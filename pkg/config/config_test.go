package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseSelector != ".tooltipper" || cfg.VisibleClass != "tooltipper-block" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Viewport != (Viewport{Width: 800, Height: 600}) {
		t.Errorf("Viewport = %+v", cfg.Viewport)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tooltipper.toml")
	data := `
base_selector = "[data-tip]"
events = ["#help:mouseenter", "li:first-child:click"]

[viewport]
width = 320
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseSelector != "[data-tip]" {
		t.Errorf("BaseSelector = %q", cfg.BaseSelector)
	}
	if cfg.VisibleClass != "tooltipper-block" {
		t.Errorf("VisibleClass should keep its default, got %q", cfg.VisibleClass)
	}
	if cfg.Viewport != (Viewport{Width: 320, Height: 600}) {
		t.Errorf("Viewport = %+v", cfg.Viewport)
	}
	if len(cfg.Events) != 2 {
		t.Errorf("Events = %v", cfg.Events)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":      `base_selector = `,
		"unknown key": `colour = "red"`,
		"bad event":   `events = ["nocolon"]`,
		"viewport":    "[viewport]\nwidth = -1",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "reading config") {
		t.Errorf("err = %v", err)
	}
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		spec, selector, typ string
		ok                  bool
	}{
		{"#help:click", "#help", "click", true},
		{"li:first-child:mouseenter", "li:first-child", "mouseenter", true},
		{":click", "", "", false},
		{"#help:", "", "", false},
		{"#help", "", "", false},
	}
	for _, tt := range tests {
		sel, typ, err := ParseEvent(tt.spec)
		if (err == nil) != tt.ok || sel != tt.selector || typ != tt.typ {
			t.Errorf("ParseEvent(%q) = %q, %q, %v", tt.spec, sel, typ, err)
		}
	}
}
