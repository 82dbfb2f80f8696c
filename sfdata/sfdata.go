// Package sfdata loads the San Francisco film locations data set
// into a movie.List.
//
// The input is a CSV export with a header row, one filming location
// per row. The columns used are:
//
//	0 title, 1 release year, 2 location, 3 fun fact,
//	6 director, 7 writer, 8 9 10 actors
//
// Rows for the same movie are merged, collecting all of their locations.
package sfdata

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"go.lepak.sg/sfmovies/csvline"
	"go.lepak.sg/sfmovies/movie"
	"go.lepak.sg/sfmovies/parallel"
)

const (
	colTitle = iota
	colYear
	colLocation
	colFunFact
	_ // production company
	_ // distributor
	colDirector
	colWriter
	colActor1
	colActor2
	colActor3

	minFields = colActor1 + 1
)

const DefaultWorkers = 4

var (
	ErrMalformedRow  = errors.New("sfdata: malformed row")
	ErrHeaderMissing = errors.New("sfdata: input has no header row")
)

type Options struct {
	// Workers is the number of rows parsed at the same time.
	// If zero, DefaultWorkers is used.
	Workers int
	Logger  *slog.Logger
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return DefaultWorkers
	}
	return o.Workers
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Report summarizes a load.
type Report struct {
	// Rows is the number of data rows read, not counting the header.
	Rows int
	// Skipped is the number of rows that could not be turned into a movie.
	Skipped int
	// Movies is the number of distinct movies in the result.
	Movies int
}

// row is one parsed data row. If err is set, m is nil.
type row struct {
	line int
	m    *movie.Movie
	err  error
}

// ParseRow turns the fields of one data row into a movie with
// a single location. Errors wrap ErrMalformedRow, and where the row
// was rejected by the movie package, the movie error as well.
func ParseRow(fields []string) (*movie.Movie, error) {
	if len(fields) < minFields {
		return nil, fmt.Errorf("%w: %d fields, want at least %d", ErrMalformedRow, len(fields), minFields)
	}
	for _, c := range []int{colTitle, colYear, colLocation, colActor1} {
		if fields[c] == "" {
			return nil, fmt.Errorf("%w: field %d is empty", ErrMalformedRow, c)
		}
	}

	year, err := strconv.Atoi(strings.TrimSpace(fields[colYear]))
	if err != nil {
		return nil, fmt.Errorf("%w: year: %w", ErrMalformedRow, err)
	}

	loc, err := movie.NewLocation(strings.TrimSpace(fields[colLocation]), strings.TrimSpace(fields[colFunFact]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}

	a1, err := movie.NewActor(strings.TrimSpace(fields[colActor1]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}
	a2, err := optionalActor(fields, colActor2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}
	a3, err := optionalActor(fields, colActor3)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}

	m, err := movie.New(
		strings.TrimSpace(fields[colTitle]),
		year,
		strings.TrimSpace(fields[colDirector]),
		strings.TrimSpace(fields[colWriter]),
		a1, a2, a3,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}

	if err := m.AddLocation(loc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}

	return m, nil
}

func optionalActor(fields []string, c int) (*movie.Actor, error) {
	if c >= len(fields) || fields[c] == "" {
		return nil, nil
	}
	a, err := movie.NewActor(strings.TrimSpace(fields[c]))
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Load reads the data set from r. The first line is a header and
// is skipped. Rows that cannot be parsed are logged and counted in
// the report, but do not fail the load.
func Load(ctx context.Context, r io.Reader, opts Options) (*movie.List, Report, error) {
	log := opts.logger()
	var rep Report

	lines, err := readLines(r)
	if err != nil {
		return nil, rep, err
	}
	if len(lines) == 0 {
		return nil, rep, ErrHeaderMissing
	}
	lines = lines[1:]
	rep.Rows = len(lines)

	rows, err := parallel.Map(ctx, lines, func(_ context.Context, i int, line string) (row, error) {
		// line numbers count the header
		m, err := ParseRow(csvline.Split(line))
		return row{line: i + 2, m: m, err: err}, nil
	}, opts.workers())
	if err != nil {
		return nil, rep, err
	}

	list := movie.NewList()
	for _, r := range rows {
		if r.err != nil {
			rep.Skipped++
			log.Warn("skipping row", "line", r.line, "err", r.err)
			continue
		}
		list.Add(r.m)
	}
	rep.Movies = list.Len()

	log.Info("loaded data set", "rows", rep.Rows, "skipped", rep.Skipped, "movies", rep.Movies)

	return list, rep, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading data set: %w", err)
	}

	return lines, nil
}

// LoadFile is like Load, but reads from the file at path.
func LoadFile(ctx context.Context, path string, opts Options) (*movie.List, Report, error) {
	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, Report{}, fmt.Errorf("the file %s does not exist: %w", path, err)
	case err != nil:
		return nil, Report{}, fmt.Errorf("the file %s cannot be opened for reading: %w", path, err)
	}
	defer f.Close()

	return Load(ctx, f, opts)
}
