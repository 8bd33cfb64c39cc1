// Package dictionary reads line-oriented word lists into a trie.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/predtext/internal/utils"
	"github.com/bastiangx/predtext/pkg/trie"
	"github.com/charmbracelet/log"
)

// ErrEmptyDictionary is returned when a source yields no words.
var ErrEmptyDictionary = errors.New("dictionary contains no words")

const maxLineLength = 1 << 20

// Options controls how a word list is read.
type Options struct {
	Encoding  string
	Format    Format
	Normalize bool
}

// Stats describes a finished load.
type Stats struct {
	Lines      int
	Words      int
	Duplicates int
	Skipped    int
	Elapsed    time.Duration
}

// Load validates and reads the word list at path.
func Load(path string, opts Options) (*trie.Trie, Stats, error) {
	if err := ValidateTextFile(path); err != nil {
		return nil, Stats{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer file.Close()

	log.Debugf("Loading dictionary from %s (format=%s, encoding=%s)", path, opts.Format, opts.Encoding)
	return LoadReader(file, opts)
}

// LoadReader reads a word list from r. Blank lines are skipped but still
// count towards line numbers, so ranked popularities match the file.
// A word listed twice keeps the popularity of its last occurrence.
func LoadReader(r io.Reader, opts Options) (*trie.Trie, Stats, error) {
	start := time.Now()
	var stats Stats

	enc, err := ParseEncoding(opts.Encoding)
	if err != nil {
		return nil, stats, err
	}
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
	}

	t := trie.New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		stats.Lines++
		word, pop, ok := parseLine(scanner.Text(), stats.Lines, opts)
		if !ok {
			stats.Skipped++
			continue
		}
		if t.Contains(word) {
			stats.Duplicates++
		}
		t.Insert(word, pop)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read dictionary at line %d: %w", stats.Lines+1, err)
	}

	stats.Words = t.Count()
	stats.Elapsed = time.Since(start)
	if stats.Words == 0 {
		return nil, stats, ErrEmptyDictionary
	}

	log.Debugf("Loaded %s words from %s lines in %v (duplicates=%d, skipped=%d)",
		utils.FormatWithCommas(stats.Words), utils.FormatWithCommas(stats.Lines),
		stats.Elapsed, stats.Duplicates, stats.Skipped)
	return t, stats, nil
}

func parseLine(line string, lineNo int, opts Options) (string, int, bool) {
	clean := func(s string) string {
		if opts.Normalize {
			return utils.NormalizeWord(s)
		}
		return strings.TrimSpace(s)
	}

	switch opts.Format {
	case FormatScored:
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return "", 0, false
		}
		if len(fields) != 2 {
			log.Debugf("line %d: expected \"word score\", got %q", lineNo, line)
			return "", 0, false
		}
		score, err := strconv.Atoi(fields[1])
		if err != nil {
			log.Debugf("line %d: bad score %q: %v", lineNo, fields[1], err)
			return "", 0, false
		}
		word := clean(fields[0])
		return word, score, word != ""
	default:
		word := clean(line)
		return word, -lineNo, word != ""
	}
}
