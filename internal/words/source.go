// internal/words/source.go
//
// Where the raw dictionary comes from.
//
// Responsibilities:
//   - Source implementations: embedded list, plain file, fixed slice
//     (SQLite lives in sqlite.go).
//   - One line reader shared by every text source, so comments and blank
//     lines are skipped the same way everywhere.
//   - Picking a Source from configuration.

package words

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solo/assets"
)

// Source supplies the raw dictionary. Implementations may return unnormalized
// lines; the Provider cleans them up.
type Source interface {
	Load(ctx context.Context) ([]string, error)
}

// EmbeddedSource reads the dictionary bundled in the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(ctx context.Context) ([]string, error) {
	f, err := assets.Open()
	if err != nil {
		return nil, fmt.Errorf("open embedded list: %w", err)
	}
	defer f.Close()
	return scanLines(ctx, f)
}

// FileSource reads a newline-delimited word list from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()
	out, err := scanLines(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return out, nil
}

// StaticSource serves a fixed in-memory list.
type StaticSource []string

func (s StaticSource) Load(context.Context) ([]string, error) {
	return []string(s), nil
}

// SelectSource picks the dictionary source from configuration:
// a SQLite database wins over a file, which wins over the embedded list.
func SelectSource(file, dsn string) Source {
	switch {
	case dsn != "":
		return SQLiteSource{DSN: dsn}
	case file != "":
		return FileSource{Path: file}
	default:
		return EmbeddedSource{}
	}
}

// scanLines returns the trimmed lines of r, skipping blanks and lines that
// start with '#'.
func scanLines(ctx context.Context, r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
