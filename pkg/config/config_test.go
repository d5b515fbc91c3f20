package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestParseKeybinding(t *testing.T) {
	kb, err := ParseKeybinding("Ctrl+X")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)
	if !kb.Matches(ev) {
		t.Fatalf("expected match for Ctrl+X")
	}
	if !kb.Matches(tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl)) {
		t.Fatalf("expected match for control key code")
	}
	if kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Fatalf("plain x must not match Ctrl+X")
	}
}

func TestParseKeybinding_FunctionKey(t *testing.T) {
	kb, err := ParseKeybinding("F2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if kb.Key != tcell.KeyF2 {
		t.Fatalf("expected KeyF2, got %v", kb.Key)
	}
	if !kb.Matches(tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone)) {
		t.Fatalf("expected match for F2")
	}
	if _, err := ParseKeybinding("F13"); err == nil {
		t.Fatalf("expected error for F13")
	}
}

func TestParseKeybinding_Invalid(t *testing.T) {
	for _, s := range []string{"Ctrl+", "Alt+X", "Ctrl+XY", "Ctrl+1", "X"} {
		if _, err := ParseKeybinding(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestParseKeybinding_Reserved(t *testing.T) {
	for _, s := range []string{"Ctrl+H", "Ctrl+I", "Ctrl+M", "F10", "f10"} {
		if _, err := ParseKeybinding(s); err == nil {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestKeybindingShortcut(t *testing.T) {
	cases := map[string]rune{"Ctrl+S": 's', "F1": '1', "F9": '9'}
	for in, want := range cases {
		kb, err := ParseKeybinding(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		got, ok := kb.Shortcut()
		if !ok || got != want {
			t.Fatalf("%s shortcut = %q,%v want %q", in, got, ok, want)
		}
	}
	kb, _ := ParseKeybinding("F11")
	if _, ok := kb.Shortcut(); ok {
		t.Fatalf("F11 has no shortcut form")
	}
}

func TestShortcutEventRoundTrip(t *testing.T) {
	for cmd, kb := range DefaultKeymap() {
		r, ok := kb.Shortcut()
		if !ok {
			t.Fatalf("%s: no shortcut", cmd)
		}
		ev, ok := ShortcutEvent(r)
		if !ok {
			t.Fatalf("%s: no event for %q", cmd, r)
		}
		if !kb.Matches(ev) {
			t.Fatalf("%s: replayed event does not match binding", cmd)
		}
	}
	if _, ok := ShortcutEvent('#'); ok {
		t.Fatalf("expected no event for '#'")
	}
}

func TestLoadConfigRemap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("keymap:\n  quit: Ctrl+X\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)
	if !cfg.Keymap["quit"].Matches(ev) {
		t.Fatalf("expected remapped quit to Ctrl+X")
	}
	if !cfg.Keymap["save"].Matches(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)) {
		t.Fatalf("expected default save binding to survive")
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("tab_stop: 8\nstatus_timeout: 2s\ntheme: dark\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TabStop != 8 || cfg.StatusTimeout != 2*time.Second || cfg.Theme != "dark" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsBadTabStop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("tab_stop: 0\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for tab_stop 0")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TabStop != DefaultTabStop || cfg.StatusTimeout != DefaultStatusTimeout {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadRejectsMenuKeyBinding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("keymap:\n  help: F10\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected F10 binding to be rejected")
	}
}
