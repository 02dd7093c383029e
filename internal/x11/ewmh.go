package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

const wmName = "lepus"

var supportedAtoms = []string{
	"_NET_SUPPORTED",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_CLIENT_LIST",
	"_NET_NUMBER_OF_DESKTOPS",
	"_NET_DESKTOP_NAMES",
	"_NET_CURRENT_DESKTOP",
	"_NET_ACTIVE_WINDOW",
	"_NET_WM_NAME",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_STATE_DEMANDS_ATTENTION",
}

// AnnounceWM publishes the EWMH properties pagers and bars rely on:
// the supporting check window, supported atoms, and the desktop table.
func (s *Session) AnnounceWM(workspaces []string) error {
	check, err := xwindow.Generate(s.xu)
	if err != nil {
		return fmt.Errorf("generate check window: %w", err)
	}
	check.Create(s.root, -1, -1, 1, 1, 0)
	s.check = check.Id

	if err := ewmh.SupportingWmCheckSet(s.xu, s.root, s.check); err != nil {
		return fmt.Errorf("set supporting wm check: %w", err)
	}
	if err := ewmh.SupportingWmCheckSet(s.xu, s.check, s.check); err != nil {
		return fmt.Errorf("set supporting wm check on check window: %w", err)
	}
	if err := ewmh.WmNameSet(s.xu, s.check, wmName); err != nil {
		s.log.Debug().Err(err).Msg("set wm name")
	}
	if err := ewmh.SupportedSet(s.xu, supportedAtoms); err != nil {
		return fmt.Errorf("set supported atoms: %w", err)
	}

	if err := ewmh.NumberOfDesktopsSet(s.xu, uint(len(workspaces))); err != nil {
		s.log.Debug().Err(err).Msg("set desktop count")
	}
	if err := ewmh.DesktopNamesSet(s.xu, workspaces); err != nil {
		s.log.Debug().Err(err).Msg("set desktop names")
	}
	return s.SetCurrentDesktop(0)
}

// SetCurrentDesktop updates _NET_CURRENT_DESKTOP.
func (s *Session) SetCurrentDesktop(index int) error {
	if err := ewmh.CurrentDesktopSet(s.xu, uint(index)); err != nil {
		return fmt.Errorf("set current desktop: %w", err)
	}
	return nil
}

// SetClientList replaces _NET_CLIENT_LIST with the managed windows.
func (s *Session) SetClientList(wins []xproto.Window) error {
	if err := ewmh.ClientListSet(s.xu, wins); err != nil {
		return fmt.Errorf("set client list: %w", err)
	}
	return nil
}

// SetActiveWindow updates _NET_ACTIVE_WINDOW; zero clears it.
func (s *Session) SetActiveWindow(win xproto.Window) error {
	if err := ewmh.ActiveWindowSet(s.xu, win); err != nil {
		return fmt.Errorf("set active window: %w", err)
	}
	return nil
}

// SetFullscreenState sets or clears _NET_WM_STATE_FULLSCREEN on a
// client window, preserving its other states.
func (s *Session) SetFullscreenState(win xproto.Window, fullscreen bool) error {
	return s.setWMState(win, "_NET_WM_STATE_FULLSCREEN", fullscreen)
}

// SetDemandsAttention sets or clears _NET_WM_STATE_DEMANDS_ATTENTION
// on a client window, so pagers can flag urgent clients on hidden
// workspaces.
func (s *Session) SetDemandsAttention(win xproto.Window, on bool) error {
	return s.setWMState(win, "_NET_WM_STATE_DEMANDS_ATTENTION", on)
}

func (s *Session) setWMState(win xproto.Window, atom string, on bool) error {
	current, err := ewmh.WmStateGet(s.xu, win)
	if err != nil {
		current = nil
	}
	states := make([]string, 0, len(current)+1)
	for _, st := range current {
		if st != atom {
			states = append(states, st)
		}
	}
	if on {
		states = append(states, atom)
	}
	if err := ewmh.WmStateSet(s.xu, win, states); err != nil {
		return fmt.Errorf("set wm state: %w", err)
	}
	return nil
}
