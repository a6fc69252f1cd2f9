package wordfreq

import (
	"bufio"
	"cmp"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// DefaultDelimiter and DefaultSentinel are used when no option overrides
// them.
const (
	DefaultDelimiter = " "
	DefaultSentinel  = "finish"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ErrEmptyDelimiter is returned when the delimiter is the empty string.
var ErrEmptyDelimiter = errors.New("wordfreq: delimiter must not be empty")

// Option configures [Count] and [NewCounter].
type Option func(*config)

type config struct {
	delimiter string
	sentinel  string
}

func defaultConfig() config {
	return config{delimiter: DefaultDelimiter, sentinel: DefaultSentinel}
}

// WithDelimiter sets the field separator.
func WithDelimiter(delim string) Option {
	return func(cfg *config) { cfg.delimiter = delim }
}

// WithSentinel sets the word that ends the input when it starts a line.
func WithSentinel(word string) Option {
	return func(cfg *config) { cfg.sentinel = word }
}

// Counts maps each accepted word to its number of occurrences.
type Counts map[string]int

// WordCount is one entry of [Counts.Sorted].
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Sorted returns the entries by descending count, ties broken by word.
func (c Counts) Sorted() []WordCount {
	out := make([]WordCount, 0, len(c))
	for w, n := range c {
		out = append(out, WordCount{Word: w, Count: n})
	}
	slices.SortFunc(out, func(a, b WordCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return strings.Compare(a.Word, b.Word)
	})
	return out
}

// Total returns the number of counted words.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Counter accumulates word counts line by line.
type Counter struct {
	cfg     config
	counts  Counts
	lines   int
	stopped bool
}

// NewCounter returns an empty counter.
func NewCounter(opts ...Option) (*Counter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.delimiter == "" {
		return nil, ErrEmptyDelimiter
	}
	return &Counter{cfg: cfg, counts: Counts{}}, nil
}

// AddLine counts the words of one line. It reports false once the sentinel
// has been seen; later lines are ignored.
func (c *Counter) AddLine(line string) bool {
	if c.stopped {
		return false
	}

	fields := strings.Split(strings.TrimSpace(line), c.cfg.delimiter)
	if fields[0] == c.cfg.sentinel {
		c.stopped = true
		return false
	}

	c.lines++
	for _, f := range fields {
		if IsLowerWord(f) {
			c.counts[f]++
		}
	}
	return true
}

// Lines returns the number of lines counted before the sentinel.
func (c *Counter) Lines() int { return c.lines }

// Stopped reports whether the sentinel has been seen.
func (c *Counter) Stopped() bool { return c.stopped }

// Counts returns a copy of the counts so far.
func (c *Counter) Counts() Counts {
	out := make(Counts, len(c.counts))
	for w, n := range c.counts {
		out[w] = n
	}
	return out
}

// Count reads r until EOF or the sentinel line.
func Count(r io.Reader, opts ...Option) (Counts, error) {
	c, err := NewCounter(opts...)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if !c.AddLine(scanner.Text()) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "wordfreq: could not read input")
	}

	return c.counts, nil
}

// CountFile counts the words of the named file.
func CountFile(path string, opts ...Option) (Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "wordfreq: could not open input")
	}
	defer f.Close()

	return Count(f, opts...)
}

// IsLowerWord reports whether s is non-empty, made of letters only, and
// has at least one lowercase letter and no upper- or title-case letter.
func IsLowerWord(s string) bool {
	if s == "" {
		return false
	}
	cased := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			return false
		case unicode.IsUpper(r), unicode.IsTitle(r):
			return false
		case unicode.IsLower(r):
			cased = true
		}
	}
	return cased
}
