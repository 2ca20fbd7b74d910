package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/MasterOktagon/doctestgen/internal/doctest"
)

func generateRun(opts *options, output string, inputs []string, stdout, stderr io.Writer) error {
	doc, err := scan(opts, inputs)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\t%d doc tests found\n", doc.Len())

	var buff bytes.Buffer

	if _, err := doctest.Generate(&buff, doc, doctest.GenerateOptions{Tag: opts.tag}); err != nil {
		return err
	}

	if err := opts.fsys.WriteFile(output, buff.Bytes(), fileMode); err != nil {
		return err
	}

	if len(opts.exec) == 0 {
		return nil
	}

	return execHook(opts, output, stdout, stderr)
}
