// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/taibuivan/noctoon/internal/client"
	"github.com/taibuivan/noctoon/internal/core/chapter"
	"github.com/taibuivan/noctoon/internal/reader"
	"github.com/taibuivan/noctoon/internal/reader/terminal"
)

var errNotTerminal = errors.New("read needs an interactive terminal")

func newReadCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "read <series-id> [chapter-id]",
		Short: "Read a series, resuming from saved progress",
		Long: "Opens an interactive reader. Without a chapter ID the saved position of\n" +
			"--user is resumed, falling back to the first chapter.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := g.logger()
			if err != nil {
				return err
			}
			defer closeLog()

			api := g.client()
			start, err := startPosition(cmd.Context(), api, g.user, args)
			if err != nil {
				return err
			}

			fd := int(os.Stdin.Fd())
			if !term.IsTerminal(fd) {
				return errNotTerminal
			}
			saved, err := term.MakeRaw(fd)
			if err != nil {
				return fmt.Errorf("enter raw mode: %w", err)
			}
			defer term.Restore(fd, saved)

			screen := terminal.NewScreen(cmd.OutOrStdout())
			var recorder reader.ProgressRecorder
			if g.user != "" {
				recorder = api
			}
			controller := reader.NewController(api, recorder, screen, reader.Options{UserID: g.user, Logger: logger})

			return session(cmd.Context(), controller, start, os.Stdin)
		},
	}
}

// session runs controller until input asks to quit, input ends or context
// is cancelled.
func session(ctx context.Context, controller *reader.Controller, start reader.Position, input io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- controller.Run(ctx, start) }()

	// The reader goroutine may stay blocked in Read after return; the process
	// exits right after.
	keys := make(chan []byte)
	go func() {
		defer close(keys)
		buffer := make([]byte, 64)
		for {
			n, err := input.Read(buffer)
			if n > 0 {
				select {
				case keys <- append([]byte(nil), buffer[:n]...):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case chunk, ok := <-keys:
			if !ok {
				break loop
			}
			for _, event := range terminal.Decode(chunk) {
				if !terminal.Dispatch(controller, event) {
					break loop
				}
			}
		}
	}

	cancel()
	return <-done
}

// startPosition resolves where reading begins: the explicit chapter, the
// user's saved position in the series, or the series' first chapter.
func startPosition(ctx context.Context, api *client.Client, userID string, args []string) (reader.Position, error) {
	position := reader.Position{SeriesID: args[0]}
	if len(args) == 2 {
		position.ChapterID = args[1]
		return position, nil
	}

	if userID != "" {
		saved, err := api.Progress(ctx, userID, position.SeriesID)
		if err != nil {
			return position, err
		}
		if len(saved) > 0 {
			position.ChapterID = saved[0].ChapterID
			position.Page = saved[0].CurrentPage
			return position, nil
		}
	}

	chapters, err := api.Chapters(ctx, position.SeriesID)
	if err != nil {
		return position, err
	}
	if len(chapters) == 0 {
		return position, fmt.Errorf("series %s has no chapters", position.SeriesID)
	}
	chapter.SortByNumber(chapters)
	position.ChapterID = chapters[0].ID
	return position, nil
}
