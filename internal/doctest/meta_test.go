package doctest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInfo(t *testing.T) {
	tests := []struct {
		info string
		lang string
		meta Meta
	}{
		{info: "cpp", lang: "cpp", meta: Meta{}},
		{info: "cpp  ", lang: "cpp", meta: Meta{}},
		{info: "c++ skip=true", lang: "c++", meta: Meta{"skip": "true"}},
		{info: `cpp {name="a b" tags=[x]}`, lang: "cpp", meta: Meta{"name": "a b", "tags": "[x]"}},
		{info: `cpp {"name":"json","skip":true}`, lang: "cpp", meta: Meta{"name": "json", "skip": true}},
		{info: `cpp name="open`, lang: "cpp", meta: Meta{}},
		{info: "cpp tags=slow", lang: "cpp", meta: Meta{"tags": "[slow]"}},
		{info: `cpp {"tags":"fast"}`, lang: "cpp", meta: Meta{"tags": "[fast]"}},
		{info: "cpp skip=maybe", lang: "cpp", meta: Meta{}},
		{info: `cpp name="" tags=[x]`, lang: "cpp", meta: Meta{}},
		{info: "cpp owner=core", lang: "cpp", meta: Meta{"owner": "core"}},
		{info: "", lang: "", meta: nil},
		{info: " cpp", lang: "", meta: nil},
	}

	for _, tt := range tests {
		t.Run(tt.info, func(t *testing.T) {
			lang, meta := parseInfo(tt.info)

			assert.Equal(t, tt.lang, lang)
			assert.Equal(t, tt.meta, meta)
		})
	}
}

func TestMeta_Get(t *testing.T) {
	var empty Meta

	assert.Equal(t, "", empty.Get(MetaName))
	assert.False(t, empty.Bool(MetaSkip))

	meta := Meta{MetaName: "n", MetaSkip: true, "count": 3.0}

	assert.Equal(t, "n", meta.Get(MetaName))
	assert.Equal(t, "3", meta.Get("count"))
	assert.True(t, meta.Bool(MetaSkip))
	assert.False(t, Meta{MetaSkip: "nope"}.Bool(MetaSkip))
}
