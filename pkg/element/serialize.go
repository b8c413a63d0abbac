package element

import (
	"bytes"
	"io"
	"strings"
)

// voidElements have no content model and serialize without a closing
// tag, per the HTML standard.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// escaper covers the five characters with special meaning in HTML
// content and double-quoted attribute values.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

// Render serializes the tree rooted at n to w.
func Render(w io.Writer, n Node) error {
	var b bytes.Buffer
	n.writeTo(&b)
	_, err := w.Write(b.Bytes())
	return err
}

// String serializes the tree rooted at n.
func String(n Node) string {
	var b bytes.Buffer
	n.writeTo(&b)
	return b.String()
}

// Bytes serializes the tree rooted at n.
func Bytes(n Node) []byte {
	var b bytes.Buffer
	n.writeTo(&b)
	return b.Bytes()
}

func (e *Element) writeTo(b *bytes.Buffer) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.key)
		if a.raw && a.value == "" {
			continue // boolean attribute
		}
		b.WriteString(`="`)
		if a.raw {
			b.WriteString(a.value)
		} else {
			escaper.WriteString(b, a.value)
		}
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if voidElements[e.tag] {
		return
	}

	for _, c := range e.children {
		if c != nil {
			c.writeTo(b)
		}
	}

	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}

func (t textNode) writeTo(b *bytes.Buffer) {
	escaper.WriteString(b, string(t))
}

func (r rawNode) writeTo(b *bytes.Buffer) {
	b.WriteString(string(r))
}

func (g groupNode) writeTo(b *bytes.Buffer) {
	for _, c := range g {
		if c != nil {
			c.writeTo(b)
		}
	}
}

func (nilNode) writeTo(*bytes.Buffer) {}

func (d documentNode) writeTo(b *bytes.Buffer) {
	b.WriteString("<!DOCTYPE html>")
	if d.root != nil {
		d.root.writeTo(b)
	}
}
