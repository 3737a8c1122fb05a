// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

// Action is a reader operation triggered by input.
type Action int

const (
	ActionNone Action = iota
	ActionRetreat
	ActionAdvance
	ActionToggleControls
	ActionZoomIn
	ActionZoomOut
	ActionToggleFullscreen
)

func (a Action) String() string {
	switch a {
	case ActionRetreat:
		return "retreat"
	case ActionAdvance:
		return "advance"
	case ActionToggleControls:
		return "toggle_controls"
	case ActionZoomIn:
		return "zoom_in"
	case ActionZoomOut:
		return "zoom_out"
	case ActionToggleFullscreen:
		return "toggle_fullscreen"
	default:
		return "none"
	}
}

// Key is a navigation key press.
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyEscape
)

// ActionForKey maps a key press onto an [Action].
func ActionForKey(key Key) Action {
	switch key {
	case KeyLeft:
		return ActionRetreat
	case KeyRight:
		return ActionAdvance
	case KeyEscape:
		return ActionToggleControls
	default:
		return ActionNone
	}
}

/*
ActionForClick maps a click on the reading surface onto an [Action].

Description: while a page is displayed, the left third retreats and the right
third advances; these zones swallow the click so the controls do not toggle.
Anywhere else, or when the chapter has no pages, the click toggles controls.

Parameters:
  - x: Horizontal click offset from the surface's left edge
  - width: Surface width, in the same unit as x
  - hasPages: Whether a page image is displayed
*/
func ActionForClick(x, width float64, hasPages bool) Action {
	if !hasPages || width <= 0 {
		return ActionToggleControls
	}
	switch third := width / 3; {
	case x < third:
		return ActionRetreat
	case x >= width-third:
		return ActionAdvance
	default:
		return ActionToggleControls
	}
}
