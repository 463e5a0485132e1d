package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/xgzlucario/intern"
	"github.com/xgzlucario/intern/internal/pkg"
)

var errUnknownSplit = errors.New("unknown split mode")

// session interns the records of one or more inputs into a single pool.
type session struct {
	pool  *intern.Pool[[]byte]
	split bufio.SplitFunc
	q     *pkg.Quantile

	records    int
	inputBytes uint64
	poolBytes  uint64
}

func splitFunc(mode string) (bufio.SplitFunc, error) {
	switch strings.ToLower(mode) {
	case "line", "":
		return bufio.ScanLines, nil
	case "word":
		return bufio.ScanWords, nil
	case "rune":
		return bufio.ScanRunes, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownSplit, mode)
}

func newSession(config *Config) (*session, error) {
	strategy, err := intern.ParseStrategy(config.Strategy)
	if err != nil {
		return nil, err
	}
	split, err := splitFunc(config.Split)
	if err != nil {
		return nil, err
	}

	options := intern.DefaultOptions
	options.Strategy = strategy
	options.Capacity = config.Capacity
	options.MaxTokens = config.MaxTokens
	options.Logger = logger

	pool, err := intern.NewBuilderWithOptions[[]byte](options).Build()
	if err != nil {
		return nil, err
	}
	return &session{
		pool:  pool,
		split: split,
		q:     pkg.NewQuantile(config.Capacity),
	}, nil
}

// feed interns every record of r. The scanner reuses its buffer, the pool
// keeps its own copy of each new record.
func (s *session) feed(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	scanner.Split(s.split)

	for scanner.Scan() {
		record := scanner.Bytes()
		n := s.pool.Len()

		start := time.Now()
		_, err := s.pool.Intern(record)
		s.q.Add(time.Since(start))
		if err != nil {
			return fmt.Errorf("record %d: %w", s.records, err)
		}

		s.records++
		s.inputBytes += uint64(len(record))
		if s.pool.Len() > n {
			s.poolBytes += uint64(len(record))
		}
	}
	return scanner.Err()
}

func (s *session) report(w io.Writer) {
	distinct := s.pool.Len()
	ratio := 0.0
	if s.records > 0 {
		ratio = float64(distinct) / float64(s.records)
	}
	fmt.Fprintf(w, "strategy: %v\n", s.pool.Strategy())
	fmt.Fprintf(w, "records: %s\n", humanize.Comma(int64(s.records)))
	fmt.Fprintf(w, "distinct: %s (%.2f%%)\n", humanize.Comma(int64(distinct)), ratio*100)
	fmt.Fprintf(w, "input: %s\n", humanize.Bytes(s.inputBytes))
	fmt.Fprintf(w, "interned: %s\n", humanize.Bytes(s.poolBytes))
	if s.q.Len() > 0 {
		s.q.Print(w)
	}
}

// dump writes every interned record with its token, in token order or, for
// btree pools, in value order.
func (s *session) dump(w io.Writer, sorted bool) error {
	bw := bufio.NewWriter(w)
	write := func(tok intern.Token, v []byte) bool {
		fmt.Fprintf(bw, "%d\t%s\n", tok, v)
		return true
	}
	if sorted {
		if err := s.pool.Ascend(write); err != nil {
			return err
		}
	} else {
		s.pool.Scan(write)
	}
	return bw.Flush()
}
