// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taibuivan/noctoon/internal/core/series"
)

func newSeriesCommand(g *globals) *cobra.Command {
	var (
		filter series.Filter
		status string
	)

	command := &cobra.Command{
		Use:   "series",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter.Status = series.Status(status)

			list, err := g.client().ListSeries(cmd.Context(), filter)
			if err != nil {
				return err
			}

			table := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(table, "ID\tTITLE\tSTATUS\tRATING\tGENRES")
			for _, s := range list {
				fmt.Fprintf(table, "%s\t%s\t%s\t%d\t%s\n", s.ID, s.Title, s.Status, s.Rating, strings.Join(s.Genres, ", "))
			}
			return table.Flush()
		},
	}

	flags := command.Flags()
	flags.StringVarP(&filter.Query, "query", "q", "", "title or author substring")
	flags.StringSliceVarP(&filter.Genres, "genre", "g", nil, "genre to match (repeatable, any match)")
	flags.StringVarP(&status, "status", "s", "", "ongoing, completed, hiatus or all")
	flags.BoolVar(&filter.Featured, "featured", false, "only featured series")
	flags.BoolVar(&filter.Trending, "trending", false, "only trending series")
	return command
}
