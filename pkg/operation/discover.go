package operation

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Discover expands a glob pattern against fsys and returns the matching
// files. `**` matches any number of directories. No match is not an error.
func Discover(ctx context.Context, fsys afero.Fs, pattern string) ([]string, error) {
	if filepath.IsAbs(pattern) || path.IsAbs(filepath.ToSlash(pattern)) {
		return nil, errors.Errorf("pattern %q must be relative to the root", pattern)
	}
	pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")

	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	matches, err := doublestar.Glob(afero.NewIOFS(fsys), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("globbing %q: %w", pattern, err)
	}
	if matches == nil {
		matches = []string{}
	}

	zerolog.Ctx(ctx).Debug().
		Str("pattern", pattern).
		Int("matches", len(matches)).
		Msg("discovered files")

	return matches, nil
}
