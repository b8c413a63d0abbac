/*
Package element builds and serializes HTML trees.

Trees are plain data: element nodes carry a tag, ordered attributes and
ordered children; leaf nodes carry either escaped text or raw markup.
The escape/raw distinction is a security boundary. Text and Attr always
entity-escape; Raw and RawAttr emit byte-for-byte and are opt-in per
call site; SanitizedRaw sits in between for user-generated content.

	card := element.Div(
		element.H2(element.Text(title)),
		element.P(element.Text(summary)),
	).Attr("class", "card")

	html := element.String(card)

Serialization is deterministic: children render in call order and
attributes in the order they were added.
*/
package element
