// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/noctoon/internal/core/chapter"
	"github.com/taibuivan/noctoon/internal/core/series"
	"github.com/taibuivan/noctoon/internal/reader"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// # Fakes

type fakeSource struct {
	catalog []*chapter.Chapter
	gates   map[string]chan struct{}
}

func (source *fakeSource) answer(context context.Context, request reader.Request) reader.Result {
	if gate, ok := source.gates[request.ChapterID]; ok && request.Kind == reader.FetchChapter {
		select {
		case <-gate:
		case <-context.Done():
			return reader.Result{Request: request, Err: context.Err()}
		}
	}
	return resultFor(request, source.catalog)
}

func (source *fakeSource) Series(context context.Context, id string) (*series.Series, error) {
	result := source.answer(context, reader.Request{Kind: reader.FetchSeries, SeriesID: id})
	return result.Series, result.Err
}

func (source *fakeSource) Chapters(context context.Context, seriesID string) ([]*chapter.Chapter, error) {
	result := source.answer(context, reader.Request{Kind: reader.FetchChapters, SeriesID: seriesID})
	return result.Chapters, result.Err
}

func (source *fakeSource) Chapter(context context.Context, id string) (*chapter.Chapter, error) {
	result := source.answer(context, reader.Request{Kind: reader.FetchChapter, SeriesID: seriesID, ChapterID: id})
	return result.Chapter, result.Err
}

type recordingHost struct {
	mu         sync.Mutex
	progress   []float64
	reading    []bool
	fullscreen []bool
	views      []reader.View
}

func (host *recordingHost) ProgressChanged(percent float64) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.progress = append(host.progress, percent)
}

func (host *recordingHost) ReadingStateChanged(reading bool) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.reading = append(host.reading, reading)
}

func (host *recordingHost) RequestFullscreen(on bool) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.fullscreen = append(host.fullscreen, on)
}

func (host *recordingHost) Render(view reader.View) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.views = append(host.views, view)
}

func (host *recordingHost) last() reader.View {
	host.mu.Lock()
	defer host.mu.Unlock()
	if len(host.views) == 0 {
		return reader.View{}
	}
	return host.views[len(host.views)-1]
}

func (host *recordingHost) snapshot() (progress []float64, reading, fullscreen []bool) {
	host.mu.Lock()
	defer host.mu.Unlock()
	return append([]float64(nil), host.progress...),
		append([]bool(nil), host.reading...),
		append([]bool(nil), host.fullscreen...)
}

type recordingRecorder struct {
	mu    sync.Mutex
	users []string
	saves []reader.Position
}

func (recorder *recordingRecorder) SaveProgress(_ context.Context, userID string, position reader.Position) error {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.users = append(recorder.users, userID)
	recorder.saves = append(recorder.saves, position)
	return nil
}

func (recorder *recordingRecorder) saved() []reader.Position {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]reader.Position(nil), recorder.saves...)
}

// # Harness

type harness struct {
	controller *reader.Controller
	host       *recordingHost
	recorder   *recordingRecorder
	stop       func()
}

func startController(t *testing.T, source reader.Source, options reader.Options, start reader.Position) *harness {
	t.Helper()

	options.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	h := &harness{host: &recordingHost{}, recorder: &recordingRecorder{}}
	h.controller = reader.NewController(source, h.recorder, h.host, options)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.controller.Run(ctx, start) }()

	var once sync.Once
	h.stop = func() {
		once.Do(func() {
			cancel()
			select {
			case err := <-done:
				require.NoError(t, err)
			case <-time.After(waitFor):
				t.Fatal("controller did not stop")
			}
		})
	}
	t.Cleanup(h.stop)
	return h
}

func (h *harness) waitView(t *testing.T, match func(reader.View) bool) {
	t.Helper()
	require.Eventually(t, func() bool { return match(h.host.last()) }, waitFor, tick)
}

func at(chapterID string, page int) func(reader.View) bool {
	return func(view reader.View) bool {
		return view.Status == reader.StatusReady && view.ChapterIndex >= 0 &&
			view.ChapterID == chapterID && view.Page == page
	}
}

// # Tests

func TestController_NavigatesAndReportsProgress(t *testing.T) {
	source := &fakeSource{catalog: threeChapters()}
	h := startController(t, source, reader.Options{}, reader.Position{SeriesID: seriesID, ChapterID: "ch-1"})

	h.waitView(t, at("ch-1", 0))
	h.controller.PressKey(reader.KeyRight)
	h.waitView(t, at("ch-1", 1))
	h.controller.PressKey(reader.KeyRight)
	h.waitView(t, at("ch-2", 0))
	h.controller.PressKey(reader.KeyLeft)
	h.waitView(t, at("ch-1", 0))

	h.stop()

	progress, reading, _ := h.host.snapshot()
	require.Len(t, progress, 4)
	assert.Equal(t, 50.0, progress[0])
	assert.Equal(t, 100.0, progress[1])
	assert.InDelta(t, 100.0/3, progress[2], 1e-9)
	assert.Equal(t, 50.0, progress[3])
	assert.Equal(t, []bool{true, false}, reading)
}

func TestController_ClicksAndToggles(t *testing.T) {
	source := &fakeSource{catalog: threeChapters()}
	h := startController(t, source, reader.Options{}, reader.Position{SeriesID: seriesID, ChapterID: "ch-2"})
	h.waitView(t, at("ch-2", 0))

	h.controller.Click(290, 300)
	h.waitView(t, at("ch-2", 1))
	h.controller.Click(10, 300)
	h.waitView(t, at("ch-2", 0))

	h.controller.Click(150, 300)
	h.waitView(t, func(view reader.View) bool { return !view.ControlsVisible })
	h.controller.PressKey(reader.KeyEscape)
	h.waitView(t, func(view reader.View) bool { return view.ControlsVisible })

	h.controller.Dispatch(reader.ActionZoomIn)
	h.waitView(t, func(view reader.View) bool { return view.Zoom == reader.DefaultZoom+reader.ZoomStep })

	h.controller.Dispatch(reader.ActionToggleFullscreen)
	h.waitView(t, func(view reader.View) bool { return view.Fullscreen })

	_, _, fullscreen := h.host.snapshot()
	assert.Equal(t, []bool{true}, fullscreen)
	assert.Equal(t, "ch-2", h.host.last().ChapterID)
}

func TestController_JumpChapter(t *testing.T) {
	source := &fakeSource{catalog: threeChapters()}
	h := startController(t, source, reader.Options{}, reader.Position{SeriesID: seriesID, ChapterID: "ch-1"})
	h.waitView(t, at("ch-1", 0))

	h.controller.JumpChapter(1)
	h.waitView(t, at("ch-2", 0))
	h.controller.JumpChapter(-1)
	h.waitView(t, at("ch-1", 0))
}

func TestController_DiscardsStaleFetch(t *testing.T) {
	gate := make(chan struct{})
	source := &fakeSource{catalog: threeChapters(), gates: map[string]chan struct{}{"ch-2": gate}}
	h := startController(t, source, reader.Options{}, reader.Position{SeriesID: seriesID, ChapterID: "ch-1"})
	h.waitView(t, at("ch-1", 0))

	h.controller.PressKey(reader.KeyRight)
	h.controller.PressKey(reader.KeyRight)
	h.waitView(t, func(view reader.View) bool { return view.ChapterID == "ch-2" && view.Status == reader.StatusLoading })

	h.controller.SelectChapter("ch-3")
	h.waitView(t, at("ch-3", 0))

	close(gate)
	assert.Never(t, func() bool { return h.host.last().ChapterID != "ch-3" }, 100*time.Millisecond, tick)
}

func TestController_DebouncesProgressWrites(t *testing.T) {
	source := &fakeSource{catalog: threeChapters()}
	options := reader.Options{UserID: "user-1", Debounce: 50 * time.Millisecond}
	h := startController(t, source, options, reader.Position{SeriesID: seriesID, ChapterID: "ch-1"})

	h.waitView(t, at("ch-1", 0))
	require.Eventually(t, func() bool { return len(h.recorder.saved()) == 1 }, waitFor, tick)

	// Leaving and returning inside one debounce window writes nothing new.
	h.controller.PressKey(reader.KeyRight)
	h.controller.PressKey(reader.KeyLeft)
	h.waitView(t, at("ch-1", 0))

	h.controller.PressKey(reader.KeyRight)
	h.waitView(t, at("ch-1", 1))
	require.Eventually(t, func() bool { return len(h.recorder.saved()) == 2 }, waitFor, tick)

	h.stop()

	saves := h.recorder.saved()
	assert.Equal(t, []reader.Position{
		{SeriesID: seriesID, ChapterID: "ch-1", Page: 0},
		{SeriesID: seriesID, ChapterID: "ch-1", Page: 1},
	}, saves)
	for i := 1; i < len(saves); i++ {
		assert.NotEqual(t, saves[i-1], saves[i])
	}
	h.recorder.mu.Lock()
	assert.Equal(t, []string{"user-1", "user-1"}, h.recorder.users)
	h.recorder.mu.Unlock()
}

func TestController_FlushesPendingPositionOnStop(t *testing.T) {
	source := &fakeSource{catalog: threeChapters()}
	options := reader.Options{UserID: "user-1", Debounce: time.Hour}
	h := startController(t, source, options, reader.Position{SeriesID: seriesID, ChapterID: "ch-2", Page: 1})

	h.waitView(t, at("ch-2", 1))
	h.controller.PressKey(reader.KeyRight)
	h.waitView(t, at("ch-2", 2))
	assert.Empty(t, h.recorder.saved())

	h.stop()

	assert.Equal(t, []reader.Position{{SeriesID: seriesID, ChapterID: "ch-2", Page: 2}}, h.recorder.saved())
}

// stallingRecorder holds every write until release is closed.
type stallingRecorder struct {
	release chan struct{}
	recordingRecorder
}

func (recorder *stallingRecorder) SaveProgress(context context.Context, userID string, position reader.Position) error {
	select {
	case <-recorder.release:
	case <-context.Done():
		return context.Err()
	}
	return recorder.recordingRecorder.SaveProgress(context, userID, position)
}

func TestController_SlowRecorderDoesNotStallInput(t *testing.T) {
	source := &fakeSource{catalog: []*chapter.Chapter{newChapter("long", 1, 20)}}
	recorder := &stallingRecorder{release: make(chan struct{})}
	host := &recordingHost{}
	controller := reader.NewController(source, recorder, host, reader.Options{
		UserID:   "user-1",
		Debounce: time.Millisecond,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- controller.Run(ctx, reader.Position{SeriesID: seriesID, ChapterID: "long"}) }()

	h := &harness{controller: controller, host: host}
	h.waitView(t, at("long", 0))
	for page := 1; page <= 12; page++ {
		controller.PressKey(reader.KeyRight)
		h.waitView(t, at("long", page))
		time.Sleep(2 * time.Millisecond)
	}

	close(recorder.release)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("controller did not stop")
	}

	saves := recorder.saved()
	require.NotEmpty(t, saves)
	assert.Less(t, len(saves), 13)
	assert.Equal(t, reader.Position{SeriesID: seriesID, ChapterID: "long", Page: 12}, saves[len(saves)-1])
}

func TestController_SkipsSavingWithoutUser(t *testing.T) {
	source := &fakeSource{catalog: threeChapters()}
	h := startController(t, source, reader.Options{Debounce: time.Millisecond}, reader.Position{SeriesID: seriesID, ChapterID: "ch-1"})

	h.waitView(t, at("ch-1", 0))
	h.controller.PressKey(reader.KeyRight)
	h.waitView(t, at("ch-1", 1))
	h.stop()

	assert.Empty(t, h.recorder.saved())
}

func TestController_NotFoundState(t *testing.T) {
	source := &fakeSource{catalog: threeChapters()}
	h := startController(t, source, reader.Options{UserID: "user-1", Debounce: time.Millisecond},
		reader.Position{SeriesID: seriesID, ChapterID: "ch-404"})

	h.waitView(t, func(view reader.View) bool { return view.Status == reader.StatusNotFound })
	h.controller.PressKey(reader.KeyRight)
	h.stop()

	progress, _, _ := h.host.snapshot()
	assert.Empty(t, progress)
	assert.Empty(t, h.recorder.saved())
	assert.Equal(t, reader.StatusNotFound, h.host.last().Status)
}

func TestController_RunOnce(t *testing.T) {
	source := &fakeSource{catalog: threeChapters()}
	h := startController(t, source, reader.Options{}, reader.Position{SeriesID: seriesID, ChapterID: "ch-1"})
	h.waitView(t, at("ch-1", 0))

	err := h.controller.Run(context.Background(), reader.Position{SeriesID: seriesID, ChapterID: "ch-1"})
	assert.ErrorIs(t, err, reader.ErrAlreadyRunning)

	h.stop()
	// Input after stop is dropped without blocking.
	h.controller.PressKey(reader.KeyRight)
}
