// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load a dictionary once from a Source (embedded, file, or SQLite).
//   - Serve the words of a given length, memoized per length.
//   - Supply RandomWord and IsValid for the game State.
//
// Initialization:
//   A Provider reads its Source exactly once, in NewProvider. A missing,
//   unreadable, or empty list is a configuration error reported there and
//   nowhere else; per-call operations never fail. The process-wide Provider
//   is set up with Init and read with Default.
//
// Constraints:
//   • Words are trimmed and lowercased; non-letter entries are dropped.
//   • Length is counted in runes, not bytes.
//   • The loaded list is never mutated after NewProvider returns.

package words

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"unicode"
	"unicode/utf8"
)

// ErrEmptyList is returned when a Source yields no usable words.
var ErrEmptyList = errors.New("words: word list is empty")

// lengthSet is the memoized view of the dictionary for one word length.
type lengthSet struct {
	list []string
	set  map[string]struct{}
}

// Provider answers dictionary queries against an immutable word list.
type Provider struct {
	all  []string
	pick Picker

	mu    sync.Mutex // guards byLen
	byLen map[int]*lengthSet
}

// Option configures a Provider.
type Option func(*Provider)

// WithPicker sets the index picker used by RandomWord.
func WithPicker(p Picker) Option {
	return func(pr *Provider) {
		if p != nil {
			pr.pick = p
		}
	}
}

// NewProvider loads src once and returns a Provider over its words.
func NewProvider(ctx context.Context, src Source, opts ...Option) (*Provider, error) {
	if src == nil {
		return nil, errors.New("words: nil source")
	}
	raw, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}
	all := normalize(raw)
	if len(all) == 0 {
		return nil, ErrEmptyList
	}
	p := &Provider{
		all:   all,
		pick:  CryptoPicker(),
		byLen: make(map[int]*lengthSet),
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// WordsOfLength returns the dictionary words with exactly n letters.
// The returned slice is shared; callers must not modify it.
func (p *Provider) WordsOfLength(n int) []string {
	return p.lengthSet(n).list
}

// RandomWord draws a word of length n uniformly at random.
// Returns "" when the dictionary has no word of that length.
func (p *Provider) RandomWord(n int) string {
	list := p.lengthSet(n).list
	if len(list) == 0 {
		return ""
	}
	return list[p.pick(len(list))]
}

// IsValid reports whether word is in the dictionary.
func (p *Provider) IsValid(word string) bool {
	_, ok := p.lengthSet(utf8.RuneCountInString(word)).set[word]
	return ok
}

// Stats returns the total number of loaded words.
func (p *Provider) Stats() int { return len(p.all) }

// Require returns an error wrapping ErrEmptyList when the dictionary has no
// word of length n, so a misconfigured length fails at startup instead of
// on the first round.
func (p *Provider) Require(n int) error {
	if len(p.lengthSet(n).list) == 0 {
		return fmt.Errorf("%w: no words of length %d", ErrEmptyList, n)
	}
	return nil
}

func (p *Provider) lengthSet(n int) *lengthSet {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ls, ok := p.byLen[n]; ok {
		return ls
	}
	ls := &lengthSet{set: make(map[string]struct{})}
	for _, w := range p.all {
		if utf8.RuneCountInString(w) == n {
			ls.list = append(ls.list, w)
			ls.set[w] = struct{}{}
		}
	}
	p.byLen[n] = ls
	return ls
}

// --- process-wide provider ---

var (
	initOnce        sync.Once
	defaultProvider *Provider
	initErr         error
)

// Init builds the process-wide Provider exactly once.
// Later calls return the first call's error and ignore their arguments.
func Init(ctx context.Context, src Source, opts ...Option) error {
	initOnce.Do(func() {
		defaultProvider, initErr = NewProvider(ctx, src, opts...)
	})
	return initErr
}

// Default returns the process-wide Provider, or nil before a successful Init.
func Default() *Provider {
	return defaultProvider
}

// normalize lowercases and trims entries, dropping blanks, comments,
// non-letter words and duplicates while keeping first-seen order.
func normalize(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		w := normalizeWord(line)
		if w == "" || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// isAlpha reports whether s is made only of letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
