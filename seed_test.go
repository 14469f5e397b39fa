package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"locallibrary/config"
)

func memoryConfig() config.App {
	return config.App{StoreDriver: "memory", SessionSecret: "s", SessionTTL: time.Hour}
}

func TestSeed_PopulatesOnce(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := memoryConfig()

	r, err := openRepos(ctx, cfg, log)
	require.NoError(t, err)
	s := newServices(r, cfg)

	require.NoError(t, seed(ctx, s, log))
	counts, err := s.catalog.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(len(sampleBooks)), counts.Books)
	require.Equal(t, int64(len(sampleAuthors)), counts.Authors)
	require.Equal(t, int64(len(sampleGenres)), counts.Genres)
	require.Equal(t, int64(6), counts.Instances)
	require.Equal(t, int64(3), counts.InstancesAvailable)

	require.NoError(t, seed(ctx, s, log))
	again, err := s.catalog.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, counts, again)
}

func TestNewServer(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := memoryConfig()

	r, err := openRepos(ctx, cfg, log)
	require.NoError(t, err)
	e, err := newServer(cfg, log, newServices(r, cfg))
	require.NoError(t, err)
	require.NotEmpty(t, e.Routes())
}
