package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"locallibrary/app/echoServer/validation"
	authorsvc "locallibrary/service/author"
	booksvc "locallibrary/service/book"
	instancesvc "locallibrary/service/bookinstance"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample authors, genres, books and copies",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		r, err := openRepos(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer r.close(context.Background())
		return seed(cmd.Context(), newServices(r, cfg), log)
	},
}

type sampleBook struct {
	title, summary, isbn string
	author               int
	genres               []int
	copies               []instancesvc.Input
}

var (
	sampleAuthors = []authorsvc.Input{
		{FirstName: "Patrick", FamilyName: "Rothfuss", DateOfBirth: "1973-06-06"},
		{FirstName: "Ben", FamilyName: "Bova", DateOfBirth: "1932-11-08"},
		{FirstName: "Isaac", FamilyName: "Asimov", DateOfBirth: "1920-01-02", DateOfDeath: "1992-04-06"},
		{FirstName: "Bob", FamilyName: "Billings"},
		{FirstName: "Jim", FamilyName: "Jones", DateOfBirth: "1971-12-16"},
	}
	sampleGenres = []string{"Fantasy", "Science Fiction", "French Poetry"}
	sampleBooks  = []sampleBook{
		{
			title:   "The Name of the Wind (The Kingkiller Chronicle, #1)",
			summary: "I have stolen princesses back from sleeping barrow kings. I burned down the town of Trebon.",
			isbn:    "9781473211896",
			author:  0,
			genres:  []int{0},
			copies: []instancesvc.Input{
				{Imprint: "London Gollancz, 2014.", Status: "Available"},
				{Imprint: "Gollancz, 2011.", Status: "Loaned", DueBack: "2026-12-01"},
			},
		},
		{
			title:   "The Wise Man's Fear (The Kingkiller Chronicle, #2)",
			summary: "Picking up the tale of Kvothe Kingkiller once again.",
			isbn:    "9788401352836",
			author:  0,
			genres:  []int{0},
			copies: []instancesvc.Input{
				{Imprint: "Gollancz, 2011.", Status: "Maintenance"},
			},
		},
		{
			title:   "Apes and Angels",
			summary: "Humankind headed out to the stars not for conquest, nor exploration, nor even for curiosity.",
			isbn:    "9780765379528",
			author:  1,
			genres:  []int{1},
			copies: []instancesvc.Input{
				{Imprint: "New York Tom Doherty Associates, 2016.", Status: "Available"},
				{Imprint: "New York Tom Doherty Associates, 2016.", Status: "Reserved"},
			},
		},
		{
			title:   "Death Wave",
			summary: "In Ben Bova's previous novel New Earth, Jordan Kell led the first human mission beyond the solar system.",
			isbn:    "9780765379504",
			author:  1,
			genres:  []int{1},
			copies: []instancesvc.Input{
				{Imprint: "New York, NY Tom Doherty Associates, LLC, 2015."},
			},
		},
		{
			title:   "Test Book 1",
			summary: "Summary of test book 1",
			isbn:    "ISBN111111",
			author:  4,
			genres:  []int{0, 1},
		},
	}
)

// seed skips an already populated catalog.
func seed(ctx context.Context, s services, log *slog.Logger) error {
	counts, err := s.catalog.Counts(ctx)
	if err != nil {
		return err
	}
	if counts.Books > 0 || counts.Authors > 0 {
		log.Info("catalog already populated; skipping seed", "books", counts.Books, "authors", counts.Authors)
		return nil
	}

	authorIDs := make([]string, 0, len(sampleAuthors))
	for _, in := range sampleAuthors {
		a, err := s.authors.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("seed author %s: %w", in.FamilyName, err)
		}
		authorIDs = append(authorIDs, a.ID.Hex())
	}

	genreIDs := make([]string, 0, len(sampleGenres))
	for _, name := range sampleGenres {
		g, _, err := s.genres.Create(ctx, name)
		if err != nil {
			return fmt.Errorf("seed genre %s: %w", name, err)
		}
		genreIDs = append(genreIDs, g.ID.Hex())
	}

	var copies int
	for _, sb := range sampleBooks {
		in := booksvc.Input{
			Title:   validation.Sanitize(sb.title),
			Author:  authorIDs[sb.author],
			Summary: validation.Sanitize(sb.summary),
			ISBN:    validation.Sanitize(sb.isbn),
			Genre:   []string{},
		}
		for _, gi := range sb.genres {
			in.Genre = append(in.Genre, genreIDs[gi])
		}
		b, err := s.books.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("seed book %q: %w", sb.title, err)
		}
		for _, ci := range sb.copies {
			ci.Book = b.ID.Hex()
			ci.Imprint = validation.Sanitize(ci.Imprint)
			if _, err := s.instances.Create(ctx, ci); err != nil {
				return fmt.Errorf("seed copy of %q: %w", sb.title, err)
			}
			copies++
		}
	}

	log.Info("seeded catalog",
		"authors", len(sampleAuthors),
		"genres", len(sampleGenres),
		"books", len(sampleBooks),
		"copies", copies,
	)
	return nil
}
