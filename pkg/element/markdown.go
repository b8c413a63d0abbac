package element

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown converts CommonMark (plus GFM tables and strikethrough) to
// HTML. Raw HTML inside the source is NOT passed through; goldmark
// filters it unless WithUnsafe is set, which we deliberately do not set.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// Markdown converts a markdown source into a node emitting the rendered
// HTML. The conversion happens eagerly so errors surface at the call
// site, not during serialization.
func Markdown(source string) (Node, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return nil, fmt.Errorf("error converting markdown: %w", err)
	}
	return rawNode(buf.String()), nil
}
