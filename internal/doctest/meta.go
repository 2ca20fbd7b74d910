package doctest

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// Meta holds key-value metadata parsed from the info string that follows the
// language tag of a fence, e.g. /// ```cpp name="vector push" tags="[vector]".
type Meta map[string]interface{}

const (
	MetaName = "name"
	MetaTags = "tags"
	MetaSkip = "skip"
)

// Get returns the metadata value for the given key as a string.
// It returns an empty string if the key is missing or the Meta is nil.
func (m Meta) Get(name string) string {
	if m == nil {
		return ""
	}

	value, has := m[name]
	if !has {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

// Bool reports whether the value stored under name parses as true.
func (m Meta) Bool(name string) bool {
	b, err := strconv.ParseBool(m.Get(name))

	return err == nil && b
}

var (
	reJSON     = regexp.MustCompile(`^\s*{\s*["}]`)
	reBrackets = regexp.MustCompile(`^\s*{(.*)}$`)
	reInfo     = regexp.MustCompile(`^([\w+#.-]+)\s*(.*?)\s*$`)
)

func parseMeta(input string) (Meta, error) {
	if len(input) == 0 {
		return Meta{}, nil
	}

	if reJSON.MatchString(input) {
		var meta Meta

		if err := json.Unmarshal([]byte(input), &meta); err != nil {
			return nil, err
		}

		return checkMeta(meta)
	}

	if subs := reBrackets.FindStringSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(input)
	if err != nil {
		return nil, err
	}

	dict := make(Meta)

	for _, word := range words {
		idx := strings.IndexRune(word, '=')
		if idx > 0 {
			dict[word[:idx]] = word[idx+1:]
		}
	}

	return checkMeta(dict)
}

var errEmptyName = errors.New("empty test name")

// checkMeta validates the keys doctest understands and brings tags into the
// Catch2 [tag] form. Other keys pass through untouched.
func checkMeta(meta Meta) (Meta, error) {
	if _, has := meta[MetaName]; has && len(strings.TrimSpace(meta.Get(MetaName))) == 0 {
		return nil, errEmptyName
	}

	if _, has := meta[MetaSkip]; has {
		if _, err := strconv.ParseBool(meta.Get(MetaSkip)); err != nil {
			return nil, fmt.Errorf("%s: %w", MetaSkip, err)
		}
	}

	if tags := strings.TrimSpace(meta.Get(MetaTags)); len(tags) != 0 && !strings.HasPrefix(tags, "[") {
		meta[MetaTags] = "[" + tags + "]"
	}

	return meta, nil
}

// parseInfo splits a fence info string into the language tag and its meta.
// Meta that fails to parse is dropped.
func parseInfo(info string) (string, Meta) {
	all := reInfo.FindStringSubmatch(info)
	if all == nil {
		return "", nil
	}

	meta, err := parseMeta(all[2])
	if err != nil {
		return all[1], Meta{}
	}

	return all[1], meta
}
