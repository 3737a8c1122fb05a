// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoUser = errors.New("--user (or NOCTOON_USER) is required")

func newProgressCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "progress [series-id]",
		Short: "Show saved reading positions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if g.user == "" {
				return errNoUser
			}
			var seriesID string
			if len(args) == 1 {
				seriesID = args[0]
			}

			list, err := g.client().Progress(cmd.Context(), g.user, seriesID)
			if err != nil {
				return err
			}

			table := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(table, "SERIES\tCHAPTER\tPAGE\tLAST READ")
			for _, p := range list {
				fmt.Fprintf(table, "%s\t%s\t%d\t%s\n", p.SeriesID, p.ChapterID, p.CurrentPage+1, p.LastRead)
			}
			return table.Flush()
		},
	}
}

func newLoginCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in and print the user ID and access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
			password, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}

			result, err := g.client().Login(cmd.Context(), args[0], strings.TrimSpace(string(password)))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "NOCTOON_USER=%s\n", result.User.ID)
			if result.Token != "" {
				fmt.Fprintf(out, "NOCTOON_TOKEN=%s\n", result.Token)
			}
			return nil
		},
	}
}
