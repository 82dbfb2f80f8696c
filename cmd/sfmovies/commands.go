package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"
	"go.lepak.sg/sfmovies/movie"
	"go.lepak.sg/sfmovies/search"
	"go.lepak.sg/sfmovies/sfdata"
	"go.lepak.sg/sfmovies/stats"
)

// load reads the data set named by the first argument.
func load(cctx *cli.Context) (*movie.List, error) {
	path := cctx.Args().First()
	if path == "" {
		return nil, fmt.Errorf("the program expects a file name as an argument")
	}

	list, _, err := sfdata.LoadFile(cctx.Context, path, sfdata.Options{
		Workers: cctx.Int("workers"),
		Logger:  slog.Default().With("file", path),
	})
	return list, err
}

func runSearch(cctx *cli.Context) error {
	list, err := load(cctx)
	if err != nil {
		return err
	}

	s := search.NewSession(list, cctx.App.Writer, search.Options{
		CacheSize: cctx.Int("cache-size"),
		Logger:    slog.Default(),
	})
	if err := s.Run(cctx.Context, cctx.App.Reader); err != nil {
		return err
	}

	hits, misses := s.CacheStats()
	slog.Debug("search finished", "cache_hits", hits, "cache_misses", misses)
	return nil
}

func runDump(cctx *cli.Context) error {
	list, err := load(cctx)
	if err != nil {
		return err
	}

	var out string
	switch f := cctx.String("format"); f {
	case "shape":
		out = list.Tree().Dump() + "\n"
	case "pretty":
		out = list.Tree().Pretty()
	default:
		return fmt.Errorf("unknown dump format %q", f)
	}

	if _, err := io.WriteString(cctx.App.Writer, out); err != nil {
		return err
	}

	actual, ideal := list.Tree().Height()
	slog.Info("tree height", "actual", actual, "ideal", ideal, "movies", list.Len())
	return list.Tree().Check()
}

func runStats(cctx *cli.Context) error {
	list, err := load(cctx)
	if err != nil {
		return err
	}

	top := cctx.Int("top")
	if top < 0 {
		return fmt.Errorf("--top must not be negative, got %d", top)
	}

	return stats.Compute(list, top).Write(cctx.App.Writer)
}
