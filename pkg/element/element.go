package element

import "bytes"

// Node is a single node in an HTML tree: an element, a text payload, or
// a raw payload. Trees are built bottom-up during one render pass, owned
// by that pass, and discarded after serialization.
type Node interface {
	writeTo(b *bytes.Buffer)
}

// attribute is a single key/value pair on an element. Values follow the
// same escape/raw distinction as content: escaped unless explicitly raw.
type attribute struct {
	key   string
	value string
	raw   bool
}

// Element is a tag node with attributes and children.
type Element struct {
	tag      string
	attrs    []attribute
	children []Node
}

// El creates an element node with the given tag and children. Children
// render in the order supplied.
func El(tag string, children ...Node) *Element {
	return &Element{tag: tag, children: children}
}

// Attr adds an attribute whose value is entity-escaped on output.
// Attributes render in the order they are added.
func (e *Element) Attr(key, value string) *Element {
	e.attrs = append(e.attrs, attribute{key: key, value: value})
	return e
}

// RawAttr adds an attribute whose value is emitted byte-for-byte. The
// caller vouches for the content; prefer Attr.
func (e *Element) RawAttr(key, value string) *Element {
	e.attrs = append(e.attrs, attribute{key: key, value: value, raw: true})
	return e
}

// Flag adds a boolean attribute (e.g. "disabled") with no value.
func (e *Element) Flag(key string) *Element {
	e.attrs = append(e.attrs, attribute{key: key, raw: true})
	return e
}

// Add appends children after construction.
func (e *Element) Add(children ...Node) *Element {
	e.children = append(e.children, children...)
	return e
}

// textNode holds content that is entity-escaped on output.
type textNode string

// Text creates an escaped text node. This is the default path for all
// textual content; every `<`, `>`, `&` and quote is emitted in entity
// form.
func Text(s string) Node {
	return textNode(s)
}

// rawNode holds content emitted byte-for-byte, unescaped.
type rawNode string

// Raw creates an unescaped node. Raw is opt-in per call site and must
// only carry trusted markup; emitting untrusted content through it is a
// caller responsibility the tree cannot detect.
func Raw(s string) Node {
	return rawNode(s)
}

// groupNode renders its children with no surrounding markup.
type groupNode []Node

// Group bundles sibling nodes into a single Node with no wrapper tag.
func Group(children ...Node) Node {
	return groupNode(children)
}

// nilNode renders nothing. Useful for optional blocks.
type nilNode struct{}

// None returns a node that renders nothing.
func None() Node {
	return nilNode{}
}

// If returns then when cond is true, otherwise a node rendering nothing.
func If(cond bool, then Node) Node {
	if cond {
		return then
	}
	return nilNode{}
}

// documentNode prefixes the HTML5 doctype.
type documentNode struct {
	root Node
}

// Document wraps a root element with the HTML5 doctype declaration.
func Document(root Node) Node {
	return documentNode{root: root}
}
