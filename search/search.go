// Package search runs the interactive keyword search over a movie list.
package search

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.lepak.sg/sfmovies/lru"
	"go.lepak.sg/sfmovies/movie"
)

const (
	Prompt = "Search the database by matching keywords to titles or actor names.\n" +
		"   To search for matching titles, enter\n\t title KEYWORD\n" +
		"   To search for matching actor names, enter\n\t actor KEYWORD\n" +
		"   To finish the program, enter\n\t quit\n" +
		"\n\n\n" +
		"Please enter your search query:\n"

	MsgNotAQuery = "This is not a valid query. Try again."
	MsgInvalid   = "Invalid query."
	MsgNoMatches = "No matches found. Try again."

	DefaultCacheSize = 64
)

type Options struct {
	// CacheSize is the number of query results kept.
	// If zero, DefaultCacheSize is used.
	CacheSize int
	Logger    *slog.Logger
}

// Session answers queries against a list, writing to out.
type Session struct {
	list  *movie.List
	out   io.Writer
	cache *lru.Cache[string, *movie.List]
	log   *slog.Logger
}

func NewSession(list *movie.List, out io.Writer, opts Options) *Session {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Session{
		list:  list,
		out:   out,
		cache: lru.New[string, *movie.List](size),
		log:   log,
	}
}

// Run prompts for and answers queries read from in, one per line,
// until a line reading quit, the end of in, or ctx is canceled.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := io.WriteString(s.out, Prompt); err != nil {
			return err
		}

		if !sc.Scan() {
			return sc.Err()
		}
		line := sc.Text()
		if strings.EqualFold(line, "quit") {
			return nil
		}

		if _, err := fmt.Fprintln(s.out, s.Answer(line)); err != nil {
			return err
		}
	}
}

// Answer returns the response to a single query: either the matching
// movies or one of the Msg strings.
func (s *Session) Answer(query string) string {
	cmd, keyword, ok := strings.Cut(query, " ")
	if !ok {
		return MsgNotAQuery
	}

	var match func(string) *movie.List
	switch {
	case strings.EqualFold(cmd, "title"):
		cmd, match = "title", s.list.MatchingTitles
	case strings.EqualFold(cmd, "actor"):
		cmd, match = "actor", s.list.MatchingActor
	default:
		return MsgInvalid
	}

	key := cmd + " " + strings.ToLower(strings.TrimSpace(keyword))
	res, ok := s.cache.Get(key)
	if ok {
		s.log.Debug("query cache hit", "query", key)
	} else {
		res = match(keyword)
		s.cache.Add(key, res)
	}

	if res == nil {
		return MsgNoMatches
	}
	return res.String()
}

// CacheStats returns the query cache hit and miss counts.
func (s *Session) CacheStats() (hits, misses int) {
	return s.cache.Stats()
}
