package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	n, err := Markdown("**bold** and _italic_")
	require.NoError(t, err)

	got := String(n)
	assert.Contains(t, got, "<strong>bold</strong>")
	assert.Contains(t, got, "<em>italic</em>")
}

func TestMarkdownFiltersRawHTML(t *testing.T) {
	n, err := Markdown("before\n\n<script>alert(1)</script>\n\nafter")
	require.NoError(t, err)

	got := String(n)
	assert.NotContains(t, got, "<script>")
}

func TestSanitizedRaw(t *testing.T) {
	got := String(SanitizedRaw(`<a href="/ok">link</a><script>alert(1)</script><span onclick="x()">s</span>`))

	assert.Contains(t, got, `link</a>`)
	assert.NotContains(t, got, "script")
	assert.NotContains(t, got, "onclick")
}
