package doctest

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// DefaultTag is the Catch2 tag given to every generated test case.
const DefaultTag = "[doctests]"

const header = `
// This file is generated. Do not edit by hand.

#if(CATCH2_VERSION < 3)
    #include <catch2/catch.hpp>
#else
    #include <catch2/catch_all.hpp>
#endif

// redefine assert to use catch2's REQUIRE
#pragma push_macro("assert")
#undef assert
#define assert REQUIRE

#pragma push_macro("CATCH_INTERNAL_LINEINFO")
#undef CATCH_INTERNAL_LINEINFO
#define CATCH_INTERNAL_LINEINFO ::Catch::SourceLineInfo(DOCTEST_FILE, (__LINE__ - LINE_ORIGIN) + DOCTEST_ORIGIN)
`

const trailer = `

#undef CATCH_INTERNAL_LINEINFO
#pragma pop_macro("CATCH_INTERNAL_LINEINFO")
#undef assert
#pragma pop_macro("assert")

`

const indent = "    "

// GenerateOptions controls [Generate].
type GenerateOptions struct {
	// Scope is the counter value of the first example's namespace.
	Scope int
	// Tag is used for examples without a tags meta value; DefaultTag if empty.
	Tag string
}

var cstring = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(s string) string {
	return `"` + cstring.Replace(s) + `"`
}

// ScopeName returns the namespace wrapping the example with counter value n.
func ScopeName(n int) string {
	return fmt.Sprintf("_generated_%d", n)
}

// Generate writes the Catch2 source for doc to w. Every example gets its own
// namespace numbered from opts.Scope; the returned value is the next unused
// counter so that repeated calls never reuse a namespace.
func Generate(w io.Writer, doc *Document, opts GenerateOptions) (int, error) {
	var buff bytes.Buffer

	tag := opts.Tag
	if len(tag) == 0 {
		tag = DefaultTag
	}

	if doc != nil {
		for _, include := range doc.Includes {
			buff.WriteString(include)
			buff.WriteByte('\n')
		}
	}

	buff.WriteString(header)

	scope := opts.Scope

	if doc != nil {
		for _, example := range doc.Examples {
			writeExample(&buff, example, scope, tag)
			scope++
		}
	}

	buff.WriteString(trailer)

	if _, err := w.Write(buff.Bytes()); err != nil {
		return opts.Scope, fmt.Errorf("writing generated tests: %w", err)
	}

	return scope, nil
}

func writeExample(buff *bytes.Buffer, example *Example, scope int, tag string) {
	if tags := example.Meta.Get(MetaTags); len(tags) != 0 {
		tag = tags
	}

	fmt.Fprintf(buff, "#define DOCTEST_FILE %s\n", quote(example.Path))
	fmt.Fprintf(buff, "#define DOCTEST_ORIGIN %d\n", example.StartLine)
	fmt.Fprintf(buff, "namespace %s{ constexpr size_t LINE_ORIGIN = __LINE__ + 1;\n", ScopeName(scope))
	fmt.Fprintf(buff, "TEST_CASE(%s, %s) {\n", quote(example.Name), quote(tag))

	for _, line := range example.Code {
		buff.WriteString(indent)
		buff.WriteString(line)
		buff.WriteByte('\n')
	}

	buff.WriteString("}}\n\n")
	buff.WriteString("#undef DOCTEST_FILE\n")
	buff.WriteString("#undef DOCTEST_ORIGIN\n")
}
