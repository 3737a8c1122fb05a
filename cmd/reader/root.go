// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/taibuivan/noctoon/internal/client"
)

// settings holds the environment defaults for the global flags.
type settings struct {
	API   string `env:"NOCTOON_API"   envDefault:"http://localhost:8080"`
	User  string `env:"NOCTOON_USER"`
	Token string `env:"NOCTOON_TOKEN"`
}

// globals are the persistent flags shared by every subcommand.
type globals struct {
	api     string
	user    string
	token   string
	logFile string
}

func (g *globals) client() *client.Client {
	var options []client.Option
	if g.token != "" {
		options = append(options, client.WithToken(g.token))
	}
	return client.New(g.api, options...)
}

// logger writes JSON logs to --log-file. Without one, logs are dropped so
// they never tear the reading screen.
func (g *globals) logger() (*slog.Logger, func() error, error) {
	if g.logFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	file, err := os.OpenFile(g.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler).With(slog.String("app", "noctoon-reader")), file.Close, nil
}

func newRootCommand() *cobra.Command {
	var defaults settings
	// Unparseable values only lose their defaults; flags still apply.
	_ = env.Parse(&defaults)

	g := &globals{}
	root := &cobra.Command{
		Use:          "reader",
		Short:        "Browse and read Noctoon series from the terminal",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.api, "api", defaults.API, "API base URL (NOCTOON_API)")
	flags.StringVar(&g.user, "user", defaults.User, "user ID that owns favorites and progress (NOCTOON_USER)")
	flags.StringVar(&g.token, "token", defaults.Token, "bearer token from `reader login` (NOCTOON_TOKEN)")
	flags.StringVar(&g.logFile, "log-file", "", "append debug logs to this file")

	root.AddCommand(
		newSeriesCommand(g),
		newReadCommand(g),
		newProgressCommand(g),
		newLoginCommand(g),
	)
	return root
}
