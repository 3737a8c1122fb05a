// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package terminal drives a reading session from a raw-mode terminal.

[Decode] turns raw stdin bytes into [Event] values and [Screen] implements
[reader.Host] by redrawing a text view of the session.
*/
package terminal

import (
	"bytes"

	"github.com/taibuivan/noctoon/internal/reader"
)

// EventKind says how an [Event] reaches the controller.
type EventKind int

const (
	// EventKey carries a reader key binding.
	EventKey EventKind = iota
	// EventAction carries a direct reader action.
	EventAction
	// EventJump moves to a neighboring chapter by Offset.
	EventJump
	// EventQuit ends the session.
	EventQuit
)

// Event is one decoded keystroke.
type Event struct {
	Kind   EventKind
	Key    reader.Key
	Action reader.Action
	Offset int
}

const (
	escape = 0x1b
	ctrlC  = 0x03
)

// arrows covers both cursor-key modes: CSI (ESC [) and SS3 (ESC O), the
// latter sent by terminals in application mode.
var arrows = []struct {
	sequence []byte
	key      reader.Key
}{
	{[]byte{escape, '[', 'D'}, reader.KeyLeft},
	{[]byte{escape, '[', 'C'}, reader.KeyRight},
	{[]byte{escape, 'O', 'D'}, reader.KeyLeft},
	{[]byte{escape, 'O', 'C'}, reader.KeyRight},
}

// Decode parses one read from a raw-mode terminal. A lone ESC byte is the
// Escape key; other escape sequences are skipped.
func Decode(chunk []byte) []Event {
	var events []Event
decoding:
	for len(chunk) > 0 {
		for _, arrow := range arrows {
			if bytes.HasPrefix(chunk, arrow.sequence) {
				events = append(events, Event{Kind: EventKey, Key: arrow.key})
				chunk = chunk[len(arrow.sequence):]
				continue decoding
			}
		}
		switch {
		case chunk[0] == escape && len(chunk) > 1 && chunk[1] == '[':
			chunk = skipSequence(chunk)
			continue
		case chunk[0] == escape && len(chunk) > 2 && chunk[1] == 'O':
			// SS3 carries exactly one final byte.
			chunk = chunk[3:]
			continue
		}

		if event, ok := decodeByte(chunk[0]); ok {
			events = append(events, event)
		}
		chunk = chunk[1:]
	}
	return events
}

func decodeByte(b byte) (Event, bool) {
	switch b {
	case escape:
		return Event{Kind: EventKey, Key: reader.KeyEscape}, true
	case 'h':
		return Event{Kind: EventKey, Key: reader.KeyLeft}, true
	case 'l', ' ':
		return Event{Kind: EventKey, Key: reader.KeyRight}, true
	case '+', '=':
		return Event{Kind: EventAction, Action: reader.ActionZoomIn}, true
	case '-':
		return Event{Kind: EventAction, Action: reader.ActionZoomOut}, true
	case 'f':
		return Event{Kind: EventAction, Action: reader.ActionToggleFullscreen}, true
	case 'c':
		return Event{Kind: EventAction, Action: reader.ActionToggleControls}, true
	case '[':
		return Event{Kind: EventJump, Offset: -1}, true
	case ']':
		return Event{Kind: EventJump, Offset: 1}, true
	case 'q', ctrlC:
		return Event{Kind: EventQuit}, true
	}
	return Event{}, false
}

// skipSequence drops a CSI sequence: ESC '[' parameters, then one final
// byte in 0x40..0x7e.
func skipSequence(chunk []byte) []byte {
	for i := 2; i < len(chunk); i++ {
		if chunk[i] >= 0x40 && chunk[i] <= 0x7e {
			return chunk[i+1:]
		}
	}
	return nil
}

// Dispatch forwards event to controller. It reports false for [EventQuit].
func Dispatch(controller *reader.Controller, event Event) bool {
	switch event.Kind {
	case EventKey:
		controller.PressKey(event.Key)
	case EventAction:
		controller.Dispatch(event.Action)
	case EventJump:
		controller.JumpChapter(event.Offset)
	case EventQuit:
		return false
	}
	return true
}
