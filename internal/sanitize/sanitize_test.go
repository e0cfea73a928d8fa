// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean_PlainTextUntouched(t *testing.T) {
	s := New()
	assert.Equal(t, "John", s.Clean("John"))
}

func TestClean_StripsScriptContentEntirely(t *testing.T) {
	s := New()

	out := s.Clean("<script>alert(1)</script>hi")

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "alert(1)")
	assert.Contains(t, out, "hi")
}

func TestClean_StripsNonWhitelistedTags(t *testing.T) {
	s := New()

	// img is not on the whitelist, so the tag (and its onerror handler)
	// is removed entirely
	out := s.Clean(`<img src=x onerror=alert(1)>John`)

	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "onerror")
	assert.Contains(t, out, "John")
}

func TestClean_KeepsWhitelistedTagAndAttr(t *testing.T) {
	s := New()

	out := s.Clean(`<body onhashchange="go()">John</body>`)

	require.Contains(t, out, "<body")
	assert.Contains(t, out, "onhashchange")
	assert.Contains(t, out, "John")
}

func TestClean_DropsNonWhitelistedAttrsOnWhitelistedTag(t *testing.T) {
	s := New()

	out := s.Clean(`<body onload="evil()" onhashchange="go()">x</body>`)

	assert.NotContains(t, out, "onload")
	assert.Contains(t, out, "onhashchange")
}

func TestClean_EscapesAttributeValues(t *testing.T) {
	s := New()

	out := s.Clean(`<body onhashchange='a"b'>x</body>`)

	// the raw quote must not survive unescaped inside the attribute value
	assert.NotContains(t, out, `="a"b"`)
}

func TestClean_Idempotent(t *testing.T) {
	s := New()

	inputs := []string{
		"John",
		"<script>alert(1)</script>hi",
		`<img src=x onerror=alert(1)>John`,
		`<body onhashchange="go()">John</body>`,
		"a & b < c",
		strings.Repeat("<div>", 10) + "deep" + strings.Repeat("</div>", 10),
	}

	for _, in := range inputs {
		once := s.Clean(in)
		twice := s.Clean(once)
		assert.Equal(t, once, twice, "sanitizer not idempotent for %q", in)
	}
}
