package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/MasterOktagon/doctestgen/internal/doctest"
)

// scan extracts the examples of inputs, in order, into one document.
func scan(opts *options, inputs []string) (*doctest.Document, error) {
	doc := new(doctest.Document)

	for _, input := range inputs {
		input = filepath.Clean(input)

		if !opts.filter(input, nil) {
			opts.status("%s: excluded\n", input)

			continue
		}

		src, err := fs.ReadFile(opts.fsys, input)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", input, err)
		}

		var found, skipped int

		err = opts.scanner.Walk(input, src, func(example *doctest.Example) error {
			if !opts.filter(example.Path, example.Meta) {
				skipped++

				return nil
			}

			doc.Add(example)
			found++

			return nil
		})
		if err != nil {
			return nil, err
		}

		if skipped > 0 {
			opts.status("%s: %d example(s), %d skipped\n", input, found, skipped)
		} else {
			opts.status("%s: %d example(s)\n", input, found)
		}
	}

	return doc, nil
}
