// Package dictionary reads line-oriented word lists into records for the index.
//
// Each non-blank line holds three whitespace separated fields:
//
//	word category length
//
// Lines that do not match are skipped and counted, never registered.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bastiangx/wordindex/pkg/suggest"
	"github.com/charmbracelet/log"
)

// ErrMalformedLine is returned by ParseLine for lines that are not a triple.
var ErrMalformedLine = errors.New("malformed word list line")

// LoaderStats provides statistics about a finished read
type LoaderStats struct {
	Lines   int
	Records int
	Skipped int
}

// ParseLine turns one word list line into a triple.
func ParseLine(line string) (suggest.Triple, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return suggest.Triple{}, fmt.Errorf("%w: expected 3 fields, got %d", ErrMalformedLine, len(fields))
	}

	length, err := strconv.Atoi(fields[2])
	if err != nil {
		return suggest.Triple{}, fmt.Errorf("%w: length %q: %v", ErrMalformedLine, fields[2], err)
	}

	return suggest.Triple{
		Word:     fields[0],
		Category: fields[1],
		Length:   length,
	}, nil
}

// Read parses every line from r. Blank lines are ignored, malformed lines are
// logged and skipped. Only read errors are returned.
func Read(r io.Reader) ([]suggest.Triple, LoaderStats, error) {
	var (
		triples []suggest.Triple
		stats   LoaderStats
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		triple, err := ParseLine(line)
		if err != nil {
			stats.Skipped++
			log.Warnf("Skipping line %d: %v", stats.Lines, err)
			continue
		}
		triples = append(triples, triple)
		stats.Records++
	}
	if err := scanner.Err(); err != nil {
		return triples, stats, fmt.Errorf("failed to read word list: %w", err)
	}

	return triples, stats, nil
}

// LoadFile validates and reads the word list at path.
func LoadFile(path string) ([]suggest.Triple, LoaderStats, error) {
	if err := ValidateWordList(path); err != nil {
		return nil, LoaderStats{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, LoaderStats{}, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	triples, stats, err := Read(file)
	if err != nil {
		return nil, stats, err
	}

	log.Debugf("Read %d records from %s (%d lines, %d skipped)", stats.Records, path, stats.Lines, stats.Skipped)
	return triples, stats, nil
}

// LoadInto reads the word list at path and loads it into idx.
func LoadInto(idx suggest.Index, path string) (LoaderStats, error) {
	triples, stats, err := LoadFile(path)
	if err != nil {
		return stats, err
	}
	idx.Load(triples)
	return stats, nil
}
