package doctest

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Markers describes the comment convention a documentation example uses.
type Markers struct {
	// Comment starts every line of a documentation comment.
	Comment string
	// Fence opens and closes the example; the opening fence carries the language tag.
	Fence string
	// Hidden is stripped from the start of a content line.
	Hidden string
	// Include marks a line that is hoisted to the top of the generated file.
	Include string
}

// DefaultMarkers returns the /// ```cpp convention.
func DefaultMarkers() Markers {
	return Markers{
		Comment: "///",
		Fence:   "```",
		Hidden:  "# ",
		Include: "#include ",
	}
}

// DefaultLangs are the fence languages a Scanner accepts when none are given.
var DefaultLangs = []string{"cpp"}

// ErrEmptyMarker is returned by [NewScanner] when the comment or fence marker
// is empty; no line could ever open an example.
var ErrEmptyMarker = errors.New("empty comment or fence marker")

// Walker is a callback invoked for each example found by [Scanner.Walk].
type Walker func(example *Example) error

// Scanner finds examples in documentation comments.
type Scanner struct {
	markers Markers
	langs   []glob.Glob
}

// NewScanner returns a Scanner for markers that opens blocks whose language
// tag matches one of the langs glob patterns.
func NewScanner(markers Markers, langs []string) (*Scanner, error) {
	if len(strings.TrimSpace(markers.Comment)) == 0 || len(markers.Fence) == 0 {
		return nil, ErrEmptyMarker
	}

	if len(langs) == 0 {
		langs = DefaultLangs
	}

	scanner := &Scanner{markers: markers}

	for _, pattern := range langs {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}

		scanner.langs = append(scanner.langs, g)
	}

	return scanner, nil
}

func (s *Scanner) fence() string {
	return s.markers.Comment + " " + s.markers.Fence
}

func (s *Scanner) matchLang(lang string) bool {
	for _, g := range s.langs {
		if g.Match(lang) {
			return true
		}
	}

	return false
}

// open reports whether line opens an example and returns its language and meta.
func (s *Scanner) open(line string) (bool, string, Meta) {
	if !strings.HasPrefix(line, s.fence()) {
		return false, "", nil
	}

	lang, meta := parseInfo(line[len(s.fence()):])
	if len(lang) == 0 || !s.matchLang(lang) {
		return false, "", nil
	}

	return true, lang, meta
}

func (s *Scanner) closes(line string) bool {
	return len(line) == 0 ||
		strings.HasPrefix(line, s.fence()) ||
		!strings.HasPrefix(line, s.markers.Comment)
}

// content strips the comment prefix and the hidden marker from a line inside
// a block. A bare comment prefix yields an empty line.
func (s *Scanner) content(line string) (string, bool) {
	if line == s.markers.Comment {
		return "", true
	}

	line, ok := strings.CutPrefix(line, s.markers.Comment+" ")
	if !ok {
		return "", false
	}

	if len(s.markers.Hidden) != 0 {
		line = strings.TrimPrefix(line, s.markers.Hidden)
	}

	return line, true
}

// Walk scans source line by line and calls walker for every example in the
// order the fences appear. Unterminated or empty blocks never produce an
// error; an empty block is dropped and a block still open at the end of
// source is emitted as if it had been closed. Examples carry path cleaned
// by [filepath.Clean].
func (s *Scanner) Walk(path string, source []byte, walker Walker) error {
	path = filepath.Clean(path)

	lines := strings.Split(string(source), "\n")
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}

	var current *Example

	flush := func() error {
		example := current
		current = nil

		if example == nil || len(example.Code) == 0 {
			return nil
		}

		return walker(example)
	}

	for idx, raw := range lines {
		lineNo := idx + 1
		line := strings.TrimSpace(raw)

		if current == nil {
			if ok, lang, meta := s.open(line); ok {
				current = &Example{
					Path:      path,
					StartLine: lineNo,
					EndLine:   lineNo,
					Name:      exampleName(path, lineNo),
					Lang:      lang,
					Meta:      meta,
				}

				if name := meta.Get(MetaName); len(name) != 0 {
					current.Name = name
				}
			}

			continue
		}

		if s.closes(line) {
			if err := flush(); err != nil {
				return err
			}

			continue
		}

		code, ok := s.content(line)
		if !ok {
			continue
		}

		current.Code = append(current.Code, code)
		current.EndLine = lineNo

		if include := strings.TrimLeft(code, " \t"); len(s.markers.Include) != 0 &&
			strings.HasPrefix(include, s.markers.Include) {
			current.Includes = append(current.Includes, include)
		}
	}

	return flush()
}

// Extract returns every example in source.
func (s *Scanner) Extract(path string, source []byte) (*Document, error) {
	doc := new(Document)

	err := s.Walk(path, source, func(example *Example) error {
		doc.Add(example)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}
