// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed

import (
	"github.com/taibuivan/noctoon/internal/core/chapter"
	"github.com/taibuivan/noctoon/internal/core/series"
	"github.com/taibuivan/noctoon/pkg/pointer"
)

// # Demo Accounts

const (
	AdminID       = "admin-1"
	AdminUsername = "admin"
	AdminPassword = "admin123"
	AdminEmail    = "admin@noctoon.com"
)

// # Demo Catalog

const imageHost = "https://images.unsplash.com/"

func cover(photo string) *string {
	return pointer.To(imageHost + photo + "?w=400&h=600&fit=crop")
}

func page(photo string) string {
	return imageHost + photo + "?w=800&h=1200&fit=crop"
}

// Series returns the demo catalog. Each call builds fresh values.
func Series() []*series.Series {
	return []*series.Series{
		{
			ID:          "series-1",
			Title:       "Solo Leveling",
			Description: pointer.To("Ten years ago gates to other dimensions opened and hunters began clearing the monsters behind them. Sung Jin-Woo, the weakest E-rank hunter, is chosen by a mysterious system."),
			CoverImage:  cover("photo-1578632767115-351597cf2477"),
			Author:      pointer.To("Chugong"),
			Artist:      pointer.To("DUBU"),
			Genres:      []string{"Action", "Fantasy", "Adventure"},
			Status:      series.StatusCompleted,
			Rating:      95,
			Views:       1250000,
			IsFeatured:  true,
			IsTrending:  true,
		},
		{
			ID:          "series-2",
			Title:       "Tower of God",
			Description: pointer.To("Bam enters the mysterious Tower to follow Rachel, the girl who saved him. Reaching the top means passing countless tests and facing powerful rivals."),
			CoverImage:  cover("photo-1518709268805-4e9042af9f23"),
			Author:      pointer.To("SIU"),
			Artist:      pointer.To("SIU"),
			Genres:      []string{"Action", "Fantasy", "Mystery"},
			Status:      series.StatusOngoing,
			Rating:      92,
			Views:       980000,
			IsFeatured:  true,
			IsTrending:  true,
		},
		{
			ID:          "series-3",
			Title:       "The Beginning After The End",
			Description: pointer.To("King Grey dies and is reborn as Arthur Leywin in a world of magic, keeping every memory of his past life as he grows up again."),
			CoverImage:  cover("photo-1534447677768-be436bb09401"),
			Author:      pointer.To("TurtleMe"),
			Artist:      pointer.To("Fuyuki23"),
			Genres:      []string{"Fantasy", "Action", "Adventure"},
			Status:      series.StatusOngoing,
			Rating:      94,
			Views:       850000,
			IsFeatured:  true,
		},
		{
			ID:          "series-4",
			Title:       "Omniscient Reader's Viewpoint",
			Description: pointer.To("When his favorite web novel becomes reality, Kim Dokja, its only reader, survives on everything he knows about the story."),
			CoverImage:  cover("photo-1507003211169-0a1dd7228f2d"),
			Author:      pointer.To("Sing Shong"),
			Artist:      pointer.To("Sleepy-C"),
			Genres:      []string{"Action", "Fantasy", "Drama"},
			Status:      series.StatusOngoing,
			Rating:      96,
			Views:       720000,
			IsTrending:  true,
		},
		{
			ID:          "series-5",
			Title:       "Eleceed",
			Description: pointer.To("Cat-loving Jiwoo meets Kayden, a powerful awakened stuck in the body of a cat, who decides to train him into a fighter."),
			CoverImage:  cover("photo-1518791841217-8f162f1e1131"),
			Author:      pointer.To("Son Jeho"),
			Artist:      pointer.To("ZHENA"),
			Genres:      []string{"Action", "Comedy", "Supernatural"},
			Status:      series.StatusOngoing,
			Rating:      91,
			Views:       650000,
			IsTrending:  true,
		},
		{
			ID:          "series-6",
			Title:       "True Beauty",
			Description: pointer.To("High schooler Jugyeong reinvents herself with makeup. Suho is the only classmate who knows her real face."),
			CoverImage:  cover("photo-1522075469751-3a6694fb2f61"),
			Author:      pointer.To("Yaongyi"),
			Artist:      pointer.To("Yaongyi"),
			Genres:      []string{"Romance", "Comedy", "Drama"},
			Status:      series.StatusCompleted,
			Rating:      88,
			Views:       920000,
		},
		{
			ID:          "series-7",
			Title:       "The God of High School",
			Description: pointer.To("A nationwide tournament crowns the strongest high school fighter in Korea, but far larger powers move behind it."),
			CoverImage:  cover("photo-1571019613454-1cb2f99b2d8b"),
			Author:      pointer.To("Park Yongje"),
			Artist:      pointer.To("Park Yongje"),
			Genres:      []string{"Action", "Comedy", "Supernatural"},
			Status:      series.StatusOngoing,
			Rating:      89,
			Views:       780000,
			IsFeatured:  true,
		},
		{
			ID:          "series-8",
			Title:       "Noblesse",
			Description: pointer.To("Waking from an 820-year sleep, the noble Rai adapts to the modern world at a school run by his loyal servant Frankenstein."),
			CoverImage:  cover("photo-1544005313-94ddf0286df2"),
			Author:      pointer.To("Son Jeho"),
			Artist:      pointer.To("Lee Kwangsu"),
			Genres:      []string{"Action", "Supernatural", "Comedy"},
			Status:      series.StatusCompleted,
			Rating:      90,
			Views:       1100000,
		},
	}
}

// Chapters returns the demo chapters. Each call builds fresh values.
func Chapters() []*chapter.Chapter {
	return []*chapter.Chapter{
		{
			ID:            "ch-1",
			SeriesID:      "series-1",
			ChapterNumber: 1,
			Title:         pointer.To("Awakening"),
			Pages: []string{
				page("photo-1578632767115-351597cf2477"),
				page("photo-1518709268805-4e9042af9f23"),
				page("photo-1534447677768-be436bb09401"),
			},
			ReleaseDate: pointer.To("2024-01-01"),
		},
		{
			ID:            "ch-2",
			SeriesID:      "series-1",
			ChapterNumber: 2,
			Title:         pointer.To("The System"),
			Pages: []string{
				page("photo-1507003211169-0a1dd7228f2d"),
				page("photo-1518791841217-8f162f1e1131"),
			},
			ReleaseDate: pointer.To("2024-01-08"),
		},
		{
			ID:            "ch-3",
			SeriesID:      "series-1",
			ChapterNumber: 3,
			Title:         pointer.To("First Quest"),
			Pages:         []string{page("photo-1522075469751-3a6694fb2f61")},
			ReleaseDate:   pointer.To("2024-01-15"),
		},
		{
			ID:            "ch-4",
			SeriesID:      "series-2",
			ChapterNumber: 1,
			Title:         pointer.To("The Tower"),
			Pages: []string{
				page("photo-1571019613454-1cb2f99b2d8b"),
				page("photo-1544005313-94ddf0286df2"),
			},
			ReleaseDate: pointer.To("2024-01-01"),
		},
		{
			ID:            "ch-5",
			SeriesID:      "series-2",
			ChapterNumber: 2,
			Title:         pointer.To("The Test"),
			Pages:         []string{page("photo-1578632767115-351597cf2477")},
			ReleaseDate:   pointer.To("2024-01-08"),
		},
	}
}
