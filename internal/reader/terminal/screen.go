// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/taibuivan/noctoon/internal/reader"
)

const (
	clearScreen = "\x1b[2J\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"

	// Raw mode disables output post-processing, so lines end in CRLF.
	newline = "\r\n"

	barWidth = 30
	helpLine = "←/h prev  →/l/space next  [ ] chapter  +/- zoom  f fullscreen  esc/c controls  q quit"
)

// Screen is a [reader.Host] that redraws the whole terminal on every render.
type Screen struct {
	mu     sync.Mutex
	out    io.Writer
	last   reader.View
	failed error
}

// NewScreen draws onto out.
func NewScreen(out io.Writer) *Screen {
	return &Screen{out: out}
}

// ProgressChanged implements [reader.Host]. The bar is drawn from the view.
func (screen *Screen) ProgressChanged(float64) {}

// ReadingStateChanged implements [reader.Host].
func (screen *Screen) ReadingStateChanged(reading bool) {
	if reading {
		screen.write(hideCursor)
		return
	}
	screen.write(showCursor + newline)
}

// RequestFullscreen implements [reader.Host]. A terminal has nothing to
// toggle, so the flag only changes the layout.
func (screen *Screen) RequestFullscreen(bool) {}

// Render implements [reader.Host].
func (screen *Screen) Render(view reader.View) {
	screen.mu.Lock()
	screen.last = view
	screen.mu.Unlock()

	screen.write(clearScreen + strings.Join(Lines(view), newline) + newline)
}

// Last returns the most recent view.
func (screen *Screen) Last() reader.View {
	screen.mu.Lock()
	defer screen.mu.Unlock()
	return screen.last
}

// Err returns the first write error, if any.
func (screen *Screen) Err() error {
	screen.mu.Lock()
	defer screen.mu.Unlock()
	return screen.failed
}

func (screen *Screen) write(text string) {
	screen.mu.Lock()
	defer screen.mu.Unlock()
	if _, err := io.WriteString(screen.out, text); err != nil && screen.failed == nil {
		screen.failed = err
	}
}

// Lines lays out view as plain text.
func Lines(view reader.View) []string {
	switch view.Status {
	case reader.StatusLoading:
		return []string{"Loading..."}
	case reader.StatusNotFound:
		return []string{"Chapter not found.", "", "q quit"}
	case reader.StatusFailed:
		return []string{"Could not load the chapter.", "", "q quit"}
	}

	page := fmt.Sprintf("Page %d / %d", view.Page+1, view.TotalPages)
	if view.TotalPages == 0 {
		page = "No pages"
	}
	lines := []string{}
	if !view.Fullscreen {
		lines = append(lines,
			view.SeriesTitle,
			chapterLine(view),
			"",
		)
	}
	lines = append(lines,
		page+fmt.Sprintf("  zoom %d%%", view.Zoom),
		bar(view.Progress),
		view.PageURL,
	)

	if view.ControlsVisible {
		lines = append(lines, "", navigation(view), helpLine)
	}
	return lines
}

func chapterLine(view reader.View) string {
	line := fmt.Sprintf("Chapter %d", view.ChapterNumber)
	if view.ChapterTitle != "" {
		line += ": " + view.ChapterTitle
	}
	if view.ChapterIndex >= 0 && view.ChapterCount > 0 {
		line += fmt.Sprintf(" (%d of %d)", view.ChapterIndex+1, view.ChapterCount)
	}
	return line
}

func navigation(view reader.View) string {
	prev, next := "", ""
	if view.CanGoPrev {
		prev = "< prev"
	}
	if view.CanGoNext {
		next = "next >"
	}
	return fmt.Sprintf("%-6s  %s", prev, next)
}

func bar(percent float64) string {
	filled := int(percent / 100 * barWidth)
	filled = min(max(filled, 0), barWidth)
	return fmt.Sprintf("[%s%s] %3.0f%%", strings.Repeat("#", filled), strings.Repeat(".", barWidth-filled), percent)
}
