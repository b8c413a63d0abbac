package element

import "fmt"

// Helpers for the tags that show up in virtually every page. Anything
// not covered here goes through El directly.

func HTML(children ...Node) *Element { return El("html", children...) }
func Head(children ...Node) *Element { return El("head", children...) }
func Body(children ...Node) *Element { return El("body", children...) }

func Title(text string) *Element { return El("title", Text(text)) }
func Meta() *Element             { return El("meta") }
func Link() *Element             { return El("link") }
func Script(src string) *Element { return El("script").Attr("src", src) }

func Div(children ...Node) *Element     { return El("div", children...) }
func Span(children ...Node) *Element    { return El("span", children...) }
func P(children ...Node) *Element       { return El("p", children...) }
func Main(children ...Node) *Element    { return El("main", children...) }
func Header(children ...Node) *Element  { return El("header", children...) }
func Footer(children ...Node) *Element  { return El("footer", children...) }
func Nav(children ...Node) *Element     { return El("nav", children...) }
func Aside(children ...Node) *Element   { return El("aside", children...) }
func Section(children ...Node) *Element { return El("section", children...) }
func Article(children ...Node) *Element { return El("article", children...) }

func H1(children ...Node) *Element { return El("h1", children...) }
func H2(children ...Node) *Element { return El("h2", children...) }
func H3(children ...Node) *Element { return El("h3", children...) }

func Ul(children ...Node) *Element { return El("ul", children...) }
func Ol(children ...Node) *Element { return El("ol", children...) }
func Li(children ...Node) *Element { return El("li", children...) }

func A(href string, children ...Node) *Element {
	return El("a", children...).Attr("href", href)
}

func Img(src, alt string) *Element {
	return El("img").Attr("src", src).Attr("alt", alt)
}

func Form(action, method string, children ...Node) *Element {
	return El("form", children...).Attr("action", action).Attr("method", method)
}

func Input(typ, name string) *Element {
	return El("input").Attr("type", typ).Attr("name", name)
}

func Button(children ...Node) *Element { return El("button", children...) }
func Table(children ...Node) *Element  { return El("table", children...) }
func Tr(children ...Node) *Element     { return El("tr", children...) }
func Td(children ...Node) *Element     { return El("td", children...) }
func Th(children ...Node) *Element     { return El("th", children...) }

// Textf creates an escaped text node from a format string.
func Textf(format string, args ...any) Node {
	return Text(fmt.Sprintf(format, args...))
}

// Map builds one node per item. Children render in slice order.
func Map[T any](items []T, fn func(T) Node) Node {
	nodes := make([]Node, len(items))
	for i, item := range items {
		nodes[i] = fn(item)
	}
	return Group(nodes...)
}
