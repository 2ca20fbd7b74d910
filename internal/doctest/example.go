// Package doctest extracts fenced code examples from documentation comments
// and generates a Catch2 test file that runs each of them as a test case.
package doctest

import "fmt"

const namePrefix = "Testing doc test: "

// Example is a code snippet found inside a documentation comment.
type Example struct {
	Path      string
	StartLine int
	EndLine   int
	Name      string
	Lang      string
	Meta      Meta
	Code      []string
	Includes  []string
}

type Examples []*Example

func exampleName(path string, line int) string {
	return fmt.Sprintf("%s%s:%d", namePrefix, path, line)
}

// Document is the input of [Generate]: the examples of one or more files in
// the order they were found, and the include lines hoisted out of them.
type Document struct {
	Examples Examples
	Includes []string
}

// Add appends example and its include lines to the document.
func (d *Document) Add(example *Example) {
	d.Examples = append(d.Examples, example)
	d.Includes = append(d.Includes, example.Includes...)
}

// Len returns the number of examples in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Examples)
}
