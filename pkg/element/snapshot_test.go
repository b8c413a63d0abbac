package element

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// A full page through every node kind, pinned as a snapshot so any
// serializer change shows up as a reviewable diff.
func TestSerializeFullPageSnapshot(t *testing.T) {
	md, err := Markdown("# Releases\n\nSee the *changelog* for details.\n")
	if err != nil {
		t.Fatalf("markdown conversion failed: %v", err)
	}

	page := Document(HTML(
		Head(
			Title("Releases & Changes"),
			Meta().Attr("charset", "utf-8"),
			Link().Attr("rel", "stylesheet").Attr("href", "/assets/app.css"),
		),
		Body(
			Header(H1(Text("Releases & Changes"))),
			Main(
				Section(md),
				Section(SanitizedRaw(`<em>safe</em><script>alert(1)</script>`)),
				Ul(
					Li(A("/v1", Text("v1.0 <initial>"))),
					Li(A("/v2", Text("v2.0"))).Attr("class", "current"),
				),
			),
			Footer(P(Text("© example"))),
		),
	))

	snaps.MatchSnapshot(t, String(page))
}
