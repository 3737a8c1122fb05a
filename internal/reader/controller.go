// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import (
	stdctx "context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/taibuivan/noctoon/internal/core/chapter"
	"github.com/taibuivan/noctoon/internal/core/series"
)

// # Collaborators

// Source fetches catalog data for a session.
type Source interface {
	Series(context stdctx.Context, id string) (*series.Series, error)
	Chapters(context stdctx.Context, seriesID string) ([]*chapter.Chapter, error)
	Chapter(context stdctx.Context, id string) (*chapter.Chapter, error)
}

// ProgressRecorder persists the reading position of a user.
type ProgressRecorder interface {
	SaveProgress(context stdctx.Context, userID string, position Position) error
}

// Host is the presentation side of a session. Its methods are called from
// the controller's event loop and must not block for long.
type Host interface {
	// ProgressChanged receives the chapter progress whenever it changes.
	ProgressChanged(percent float64)
	// ReadingStateChanged is true while the controller runs.
	ReadingStateChanged(reading bool)
	// RequestFullscreen asks the platform to enter or leave fullscreen.
	RequestFullscreen(on bool)
	// Render receives a snapshot after every state change.
	Render(view View)
}

// # Configuration

const (
	// DefaultDebounce is how long the position must stay put before it is saved.
	DefaultDebounce = 750 * time.Millisecond

	// saveTimeout bounds each progress write, including the final flush.
	saveTimeout = 5 * time.Second

	inputBacklog = 16
)

// ErrAlreadyRunning is returned by a second call to [Controller.Run].
var ErrAlreadyRunning = errors.New("reader: controller already running")

// Options tunes a [Controller].
type Options struct {
	// UserID owns the saved progress. Empty disables saving.
	UserID string

	// Debounce delays progress writes. Zero selects [DefaultDebounce].
	Debounce time.Duration

	Logger *slog.Logger
}

// # Controller

/*
Controller runs a [Session] on a single event loop.

Description: input events and fetch completions are serialized through
[Controller.Run], so the session has exactly one writer. Fetches run on
their own goroutines and their results are checked against the session
before being applied. Progress is written through a single writer
goroutine, only for positions that differ from the last one written. The
writer only ever holds the latest position, so a slow backend never holds
up the loop. The pending position is flushed when the loop stops.
*/
type Controller struct {
	source   Source
	recorder ProgressRecorder
	host     Host
	userID   string
	debounce time.Duration
	logger   *slog.Logger

	session *Session
	inputs  chan func(*Session) []Request
	results chan Result
	done    chan struct{}
	started atomic.Bool

	progress       float64
	progressPushed bool

	saved    Position
	hasSaved bool
	pending  *Position
}

// NewController wires a controller. recorder may be nil when progress is not kept.
func NewController(source Source, recorder ProgressRecorder, host Host, options Options) *Controller {
	debounce := options.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		source:   source,
		recorder: recorder,
		host:     host,
		userID:   options.UserID,
		debounce: debounce,
		logger:   logger,
		session:  NewSession(),
		inputs:   make(chan func(*Session) []Request, inputBacklog),
		results:  make(chan Result),
		done:     make(chan struct{}),
	}
}

/*
Run opens start and processes events until context is cancelled.

Description: the host sees ReadingStateChanged(true) before the first render
and ReadingStateChanged(false) after the final progress flush. In-flight
fetches are cancelled and awaited before Run returns.

Parameters:
  - context: Cancelling it ends the session
  - start: Series and chapter to open; Page resumes inside that chapter

Returns:
  - error: [ErrAlreadyRunning] on reuse, otherwise nil
*/
func (controller *Controller) Run(context stdctx.Context, start Position) error {
	if !controller.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(controller.done)

	fetchContext, cancelFetches := stdctx.WithCancel(context)
	var fetches sync.WaitGroup
	defer func() {
		cancelFetches()
		fetches.Wait()
	}()

	issue := func(requests []Request) {
		for _, request := range requests {
			fetches.Add(1)
			go func() {
				defer fetches.Done()
				result := controller.fetch(fetchContext, request)
				select {
				case controller.results <- result:
				case <-fetchContext.Done():
				}
			}()
		}
	}

	saves := newSaveSlot()
	stopSaver := make(chan struct{})
	saverDone := make(chan struct{})
	go controller.saveLoop(stdctx.WithoutCancel(context), saves, stopSaver, saverDone)

	controller.host.ReadingStateChanged(true)
	defer controller.host.ReadingStateChanged(false)

	controller.logger.DebugContext(context, "reader_session_opened",
		slog.String("series_id", start.SeriesID),
		slog.String("chapter_id", start.ChapterID),
	)
	issue(controller.session.Open(start.SeriesID, start.ChapterID, start.Page))
	controller.publish()

	timer := time.NewTimer(controller.debounce)
	timer.Stop()
	defer timer.Stop()
	var flush <-chan time.Time

	for {
		select {
		case <-context.Done():
			controller.enqueue(saves)
			close(stopSaver)
			<-saverDone
			return nil

		case apply := <-controller.inputs:
			issue(apply(controller.session))

		case result := <-controller.results:
			if !controller.session.Resolve(result) {
				controller.logger.DebugContext(context, "reader_fetch_stale",
					slog.String("kind", result.Request.Kind.String()),
					slog.String("chapter_id", result.Request.ChapterID),
				)
				continue
			}

		case <-flush:
			flush = nil
			controller.enqueue(saves)
		}

		controller.publish()
		if controller.schedule() {
			timer.Reset(controller.debounce)
			flush = timer.C
		}
	}
}

// # Input

// Dispatch queues action for the event loop. It returns without effect once
// the controller has stopped.
func (controller *Controller) Dispatch(action Action) {
	controller.send(func(s *Session) []Request {
		return controller.apply(s, action)
	})
}

// PressKey dispatches the action bound to key.
func (controller *Controller) PressKey(key Key) {
	controller.Dispatch(ActionForKey(key))
}

// Click dispatches the action bound to a click at x on a surface of the given width.
func (controller *Controller) Click(x, width float64) {
	controller.send(func(s *Session) []Request {
		return controller.apply(s, ActionForClick(x, width, s.TotalPages() > 0))
	})
}

// SelectChapter jumps to chapterID.
func (controller *Controller) SelectChapter(chapterID string) {
	controller.send(func(s *Session) []Request {
		return s.SelectChapter(chapterID)
	})
}

// JumpChapter moves to the previous (-1) or next (+1) chapter.
func (controller *Controller) JumpChapter(offset int) {
	controller.send(func(s *Session) []Request {
		return s.JumpChapter(offset)
	})
}

func (controller *Controller) send(event func(*Session) []Request) {
	select {
	case controller.inputs <- event:
	case <-controller.done:
	}
}

func (controller *Controller) apply(s *Session, action Action) []Request {
	if action == ActionToggleFullscreen {
		controller.host.RequestFullscreen(s.ToggleFullscreen())
		return nil
	}
	return s.Apply(action)
}

// # Fetching

func (controller *Controller) fetch(context stdctx.Context, request Request) Result {
	result := Result{Request: request}
	switch request.Kind {
	case FetchSeries:
		result.Series, result.Err = controller.source.Series(context, request.SeriesID)
	case FetchChapters:
		result.Chapters, result.Err = controller.source.Chapters(context, request.SeriesID)
	case FetchChapter:
		result.Chapter, result.Err = controller.source.Chapter(context, request.ChapterID)
	}
	if result.Err != nil && context.Err() == nil {
		controller.logger.DebugContext(context, "reader_fetch_failed",
			slog.String("kind", request.Kind.String()),
			slog.Any("error", result.Err),
		)
	}
	return result
}

// # Outputs

func (controller *Controller) publish() {
	view := controller.session.View()
	if view.Status == StatusReady && (!controller.progressPushed || view.Progress != controller.progress) {
		controller.progress = view.Progress
		controller.progressPushed = true
		controller.host.ProgressChanged(view.Progress)
	}
	controller.host.Render(view)
}

// # Progress Persistence

// schedule records the current position as pending. It reports whether the
// debounce timer must be (re)armed.
func (controller *Controller) schedule() bool {
	if controller.recorder == nil || controller.userID == "" {
		return false
	}
	position, ok := controller.session.Position()
	if !ok {
		return false
	}
	if controller.pending != nil && *controller.pending == position {
		return false
	}
	if controller.hasSaved && controller.saved == position {
		controller.pending = nil
		return false
	}
	controller.pending = &position
	return true
}

// saveSlot hands positions to the writer. A newer position replaces one
// the writer has not picked up yet.
type saveSlot struct {
	mu     sync.Mutex
	latest *Position
	ready  chan struct{}
}

func newSaveSlot() *saveSlot {
	return &saveSlot{ready: make(chan struct{}, 1)}
}

func (slot *saveSlot) put(position Position) {
	slot.mu.Lock()
	slot.latest = &position
	slot.mu.Unlock()

	select {
	case slot.ready <- struct{}{}:
	default:
	}
}

func (slot *saveSlot) take() (Position, bool) {
	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.latest == nil {
		return Position{}, false
	}
	position := *slot.latest
	slot.latest = nil
	return position, true
}

// enqueue hands the pending position to the writer without waiting.
func (controller *Controller) enqueue(saves *saveSlot) {
	if controller.pending == nil {
		return
	}
	saves.put(*controller.pending)
	controller.saved = *controller.pending
	controller.hasSaved = true
	controller.pending = nil
}

// saveLoop writes the latest handed-off position until stop is closed, then
// writes whatever is still waiting.
func (controller *Controller) saveLoop(context stdctx.Context, saves *saveSlot, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-saves.ready:
			if position, ok := saves.take(); ok {
				controller.save(context, position)
			}
		case <-stop:
			if position, ok := saves.take(); ok {
				controller.save(context, position)
			}
			return
		}
	}
}

func (controller *Controller) save(context stdctx.Context, position Position) {
	writeContext, cancel := stdctx.WithTimeout(context, saveTimeout)
	defer cancel()

	err := controller.recorder.SaveProgress(writeContext, controller.userID, position)
	if err != nil {
		controller.logger.WarnContext(context, "reader_progress_save_failed",
			slog.String("series_id", position.SeriesID),
			slog.String("chapter_id", position.ChapterID),
			slog.Int("page", position.Page),
			slog.Any("error", err),
		)
	}
}
