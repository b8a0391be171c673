package rename

import (
	"regexp"
	"strings"
)

var (
	spaceOrDash = regexp.MustCompile(`[\s-]+`)
	nonWord     = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
	underscores = regexp.MustCompile(`_{2,}`)
)

// Sanitize reduces a phrase to lowercase letters, digits and single
// underscores. The result may be empty.
func Sanitize(s string) string {
	s = strings.ToLower(s)
	s = spaceOrDash.ReplaceAllString(s, "_")
	s = nonWord.ReplaceAllString(s, "")
	s = underscores.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
