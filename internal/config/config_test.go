package config

import (
	"testing"

	"github.com/1broseidon/lepus/internal/input"
)

func TestDefaultIsWellFormed(t *testing.T) {
	cfg := Default()

	if len(cfg.Workspaces) == 0 {
		t.Fatal("no workspaces")
	}
	if len(cfg.Layouts) == 0 {
		t.Fatal("no layouts")
	}
	if _, err := input.ParseMods(cfg.MouseMod); err != nil {
		t.Errorf("mouse modifier: %v", err)
	}

	names := make(map[string]bool)
	for _, lay := range cfg.Layouts {
		if names[lay.Name()] {
			t.Errorf("duplicate layout name %q", lay.Name())
		}
		names[lay.Name()] = true
	}
}

func TestDefaultBindingsParse(t *testing.T) {
	cfg := Default()
	declared := map[string]bool{"": true}
	for _, mode := range cfg.Modes {
		declared[mode] = true
	}

	for _, b := range cfg.Bindings {
		if b.Key == "" {
			t.Error("binding with empty key")
		}
		if b.Action == nil {
			t.Errorf("binding %v+%s has no action", b.Mods, b.Key)
		}
		if !declared[b.Mode] {
			t.Errorf("binding %v+%s uses undeclared mode %q", b.Mods, b.Key, b.Mode)
		}
		if _, err := input.ParseMods(b.Mods); err != nil {
			t.Errorf("binding %v+%s: %v", b.Mods, b.Key, err)
		}
	}

	for _, mb := range cfg.MouseBindings {
		if mb.Button == 0 {
			t.Error("mouse binding with no button")
		}
		if mb.Action == nil {
			t.Errorf("mouse binding %v+%d has no action", mb.Mods, mb.Button)
		}
		if !declared[mb.Mode] {
			t.Errorf("mouse binding %v+%d uses undeclared mode %q", mb.Mods, mb.Button, mb.Mode)
		}
		if _, err := input.ParseMods(mb.Mods); err != nil {
			t.Errorf("mouse binding %v+%d: %v", mb.Mods, mb.Button, err)
		}
	}
}

func TestWorkspaceBindingsCoverEveryWorkspace(t *testing.T) {
	cfg := Default()
	bound := make(map[string]int)
	for _, b := range cfg.Bindings {
		for _, ws := range cfg.Workspaces {
			if b.Key == ws {
				bound[ws]++
			}
		}
	}
	for _, ws := range cfg.Workspaces {
		if bound[ws] != 2 {
			t.Errorf("workspace %q has %d bindings, want goto and send", ws, bound[ws])
		}
	}
}
