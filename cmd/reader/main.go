// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command reader is a terminal client for the Noctoon API.
//
// It browses the catalog and runs an interactive reading session whose
// position is saved back to the server as you turn pages.
//
//	reader series --genre Action --status ongoing
//	reader login admin
//	reader read series-1 --user admin-1
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
