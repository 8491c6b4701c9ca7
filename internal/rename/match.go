package rename

import (
	"strings"

	"github.com/gobwas/glob"

	"smartrename/internal/errors"
)

// nameMatcher filters file names with a case-insensitive glob.
type nameMatcher struct {
	pattern string
	g       glob.Glob
}

// newNameMatcher compiles pattern. An empty pattern returns a nil matcher.
func newNameMatcher(pattern string) (*nameMatcher, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil, nil
	}
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid match pattern %q", pattern)
	}
	return &nameMatcher{pattern: pattern, g: g}, nil
}

func (m *nameMatcher) match(name string) bool {
	return m.g.Match(strings.ToLower(name))
}

func (m *nameMatcher) filter(files []string) []string {
	kept := []string{}
	for _, f := range files {
		if m.match(f) {
			kept = append(kept, f)
		}
	}
	return kept
}
