// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package terminal_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/noctoon/internal/reader"
	"github.com/taibuivan/noctoon/internal/reader/terminal"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []terminal.Event
	}{
		{"right arrow", "\x1b[C", []terminal.Event{{Kind: terminal.EventKey, Key: reader.KeyRight}}},
		{"left arrow", "\x1b[D", []terminal.Event{{Kind: terminal.EventKey, Key: reader.KeyLeft}}},
		{"application right arrow", "\x1bOC", []terminal.Event{{Kind: terminal.EventKey, Key: reader.KeyRight}}},
		{"application left arrow", "\x1bOD", []terminal.Event{{Kind: terminal.EventKey, Key: reader.KeyLeft}}},
		{"application up arrow is skipped", "\x1bOA\x1bOD", []terminal.Event{{Kind: terminal.EventKey, Key: reader.KeyLeft}}},
		{"lone escape", "\x1b", []terminal.Event{{Kind: terminal.EventKey, Key: reader.KeyEscape}}},
		{"vim keys", "hl", []terminal.Event{
			{Kind: terminal.EventKey, Key: reader.KeyLeft},
			{Kind: terminal.EventKey, Key: reader.KeyRight},
		}},
		{"zoom and fullscreen", "+-f", []terminal.Event{
			{Kind: terminal.EventAction, Action: reader.ActionZoomIn},
			{Kind: terminal.EventAction, Action: reader.ActionZoomOut},
			{Kind: terminal.EventAction, Action: reader.ActionToggleFullscreen},
		}},
		{"chapter jumps", "[]", []terminal.Event{
			{Kind: terminal.EventJump, Offset: -1},
			{Kind: terminal.EventJump, Offset: 1},
		}},
		{"quit", "q", []terminal.Event{{Kind: terminal.EventQuit}}},
		{"ctrl-c", "\x03", []terminal.Event{{Kind: terminal.EventQuit}}},
		{"up arrow is skipped", "\x1b[A\x1b[C", []terminal.Event{{Kind: terminal.EventKey, Key: reader.KeyRight}}},
		{"unbound", "xyz", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, terminal.Decode([]byte(tc.input)))
		})
	}
}

func TestLines(t *testing.T) {
	view := reader.View{
		Status:          reader.StatusReady,
		SeriesTitle:     "Solo Leveling",
		ChapterNumber:   2,
		ChapterTitle:    "The System",
		ChapterIndex:    1,
		ChapterCount:    3,
		Page:            0,
		TotalPages:      2,
		PageURL:         "https://img.noctoon.app/ch-2/1.jpg",
		Progress:        50,
		Zoom:            100,
		ControlsVisible: true,
		CanGoPrev:       true,
		CanGoNext:       true,
	}

	text := strings.Join(terminal.Lines(view), "\n")
	assert.Contains(t, text, "Solo Leveling")
	assert.Contains(t, text, "Chapter 2: The System (2 of 3)")
	assert.Contains(t, text, "Page 1 / 2  zoom 100%")
	assert.Contains(t, text, "[###############...............]  50%")
	assert.Contains(t, text, "< prev  next >")

	view.ControlsVisible = false
	view.Fullscreen = true
	text = strings.Join(terminal.Lines(view), "\n")
	assert.NotContains(t, text, "Solo Leveling")
	assert.NotContains(t, text, "next >")

	assert.Equal(t, []string{"Loading..."}, terminal.Lines(reader.View{Status: reader.StatusLoading}))
	assert.Contains(t, terminal.Lines(reader.View{Status: reader.StatusNotFound})[0], "not found")
}

func TestScreen(t *testing.T) {
	var out bytes.Buffer
	screen := terminal.NewScreen(&out)

	screen.ReadingStateChanged(true)
	screen.Render(reader.View{Status: reader.StatusReady, SeriesTitle: "Tower of God", TotalPages: 1, Zoom: 100})
	screen.ReadingStateChanged(false)

	require.NoError(t, screen.Err())
	assert.Equal(t, "Tower of God", screen.Last().SeriesTitle)
	assert.Contains(t, out.String(), "Tower of God\r\n")
	assert.True(t, strings.HasSuffix(out.String(), "\x1b[?25h\r\n"))
}
