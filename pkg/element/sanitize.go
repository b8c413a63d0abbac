package element

import "github.com/microcosm-cc/bluemonday"

// ugcPolicy allows the formatting subset appropriate for user-generated
// content (links, lists, emphasis) and strips everything else.
var ugcPolicy = bluemonday.UGCPolicy()

// SanitizedRaw emits HTML after sanitizing it with a user-generated
// content policy. This is the middle ground between Text (full escaping)
// and Raw (full trust): markup survives, scripts and event handlers do
// not.
func SanitizedRaw(s string) Node {
	return rawNode(ugcPolicy.Sanitize(s))
}
