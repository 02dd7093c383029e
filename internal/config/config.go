// Package config holds the compiled-in window-manager configuration:
// workspaces, layouts, rules, and the key binding table.
package config

import (
	"fmt"

	"github.com/1broseidon/lepus/internal/layout"
	"github.com/1broseidon/lepus/internal/wm"
)

const (
	gaps    = 8
	borders = 2

	borderColor      = 0x3b4252
	borderColorFocus = 0x88c0d0
)

// Default returns the built-in configuration.
func Default() wm.Config {
	cfg := wm.Config{
		Workspaces: workspaceNames(9),
		Layouts: []layout.Layout{
			layout.MasterStack{Ratio: 0.55, Gaps: gaps, Borders: borders},
			layout.Stacked{Gaps: gaps, Borders: borders},
			layout.Grid{Gaps: gaps, Borders: borders},
			layout.Floating{Borders: borders},
		},
		Modes:    []string{"resize"},
		MouseMod: []string{"mod4"},
		Rules: []wm.Rule{
			{Class: "mpv", Float: true},
			{Class: "Pavucontrol", Float: true},
		},
		BorderWidth:      borders,
		BorderColor:      borderColor,
		BorderColorFocus: borderColorFocus,
	}
	cfg.Bindings = bindings(cfg.Workspaces)
	cfg.MouseBindings = []wm.MouseBinding{
		{Mods: []string{"mod4"}, Button: 2, Action: wm.ToggleFloating()},
	}
	return cfg
}

func workspaceNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%d", i+1)
	}
	return names
}

func bindings(workspaces []string) []wm.Binding {
	mod := []string{"mod4"}
	modShift := []string{"mod4", "shift"}
	modCtrl := []string{"mod4", "control"}

	b := []wm.Binding{
		{Mods: mod, Key: "j", Action: wm.FocusNext()},
		{Mods: mod, Key: "k", Action: wm.FocusPrev()},
		{Mods: mod, Key: "Return", Action: wm.SwapMaster()},
		{Mods: modShift, Key: "j", Action: wm.RotateDown()},
		{Mods: modShift, Key: "k", Action: wm.RotateUp()},
		{Mods: modCtrl, Key: "j", Action: wm.SwapNext()},
		{Mods: modCtrl, Key: "k", Action: wm.SwapPrev()},

		{Mods: mod, Key: "space", Action: wm.NextLayout()},
		{Mods: modShift, Key: "space", Action: wm.PrevLayout()},
		{Mods: mod, Key: "t", Action: wm.SetLayout("master-stack")},
		{Mods: mod, Key: "s", Action: wm.SetLayout("stacked")},
		{Mods: mod, Key: "g", Action: wm.SetLayout("grid")},

		{Mods: mod, Key: "f", Action: wm.ToggleFullscreen()},
		{Mods: modShift, Key: "f", Action: wm.ToggleFloating()},
		{Mods: modShift, Key: "q", Action: wm.KillFocused()},

		{Mods: mod, Key: "o", Action: wm.FocusNextOutput()},
		{Mods: modShift, Key: "o", Action: wm.SendToNextOutput()},
		{Mods: modCtrl, Key: "o", Action: wm.FocusPrevOutput()},
		{Mods: mod, Key: "b", Action: wm.ToggleReservedSpace()},

		{Mods: mod, Key: "d", Action: wm.Spawn("dmenu_run")},
		{Mods: modShift, Key: "Return", Action: wm.Spawn("xterm")},

		{Mods: mod, Key: "r", Action: wm.EnterMode("resize")},
		{Mode: "resize", Key: "Escape", Action: wm.ExitMode()},
		{Mode: "resize", Key: "Return", Action: wm.ExitMode()},

		{Mods: modShift, Key: "e", Action: wm.Quit()},
	}

	for _, name := range workspaces {
		ws := name
		b = append(b,
			wm.Binding{Mods: mod, Key: ws, Action: wm.GotoWorkspace(ws)},
			wm.Binding{Mods: modShift, Key: ws, Action: wm.SendToWorkspace(ws)},
		)
	}
	return b
}
