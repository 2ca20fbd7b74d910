package cmd

import (
	"path/filepath"

	"github.com/MasterOktagon/doctestgen/internal/doctest"
	"github.com/gobwas/glob"
)

// filterFunc reports whether an example from path with meta should be
// generated. Called with nil meta it decides whether path is read at all.
type filterFunc func(path string, meta doctest.Meta) bool

func filter(exclude []string) (filterFunc, error) {
	globs := make([]glob.Glob, 0, len(exclude))

	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}

		globs = append(globs, g)
	}

	return func(path string, meta doctest.Meta) bool {
		if meta.Bool(doctest.MetaSkip) {
			return false
		}

		path = filepath.ToSlash(path)

		for _, g := range globs {
			if g.Match(path) {
				return false
			}
		}

		return true
	}, nil
}
