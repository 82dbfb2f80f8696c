// Command sfmovies browses the San Francisco film locations data set.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
	"go.lepak.sg/sfmovies/search"
	"go.lepak.sg/sfmovies/sfdata"
)

var (
	version = versioninfo.Short()
)

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app := cli.App{
		Name:      "sfmovies",
		Usage:     "search movies filmed in San Francisco by title or actor",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity: debug, info, warn or error",
				Value:   "info",
				EnvVars: []string{"SFMOVIES_LOG_LEVEL"},
			},
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "number of data set rows parsed at the same time",
				Value:   sfdata.DefaultWorkers,
				EnvVars: []string{"SFMOVIES_WORKERS"},
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, stderr)
			return nil
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "search",
			Usage:     "load a data set and search it interactively",
			ArgsUsage: "<file>",
			Action:    runSearch,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "cache-size",
					Usage:   "number of query results to remember",
					Value:   search.DefaultCacheSize,
					EnvVars: []string{"SFMOVIES_CACHE_SIZE"},
				},
			},
		},
		{
			Name:      "dump",
			Usage:     "print the shape of the tree the movies are kept in",
			ArgsUsage: "<file>",
			Action:    runDump,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Usage: "shape or pretty",
					Value: "shape",
				},
			},
		},
		{
			Name:      "stats",
			Usage:     "summarize a data set",
			ArgsUsage: "<file>",
			Action:    runStats,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "top",
					Usage: "length of each ranking",
					Value: 5,
				},
			},
		},
		{
			Name:  "version",
			Usage: "print version",
			Action: func(cctx *cli.Context) error {
				fmt.Fprintln(cctx.App.Writer, version)
				return nil
			},
		},
	}

	return app.Run(args)
}

func configLogger(cctx *cli.Context, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
