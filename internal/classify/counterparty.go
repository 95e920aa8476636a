package classify

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Counterparty extraction patterns, tried in order against the upper-cased
// narrative: a name segment embedded in a UPI reference token, then text
// following FROM, then text following TO.
var counterpartyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`UPI/[A-Z]+/\d+/([^/]+)/`),
	regexp.MustCompile(`FROM\s+([A-Z @0-9]+)`),
	regexp.MustCompile(`TO\s+([A-Z @0-9]+)`),
}

var titleCaser = cases.Title(language.English)

// Counterparty derives the other party of a transaction from its narrative.
// The first matching pattern wins; the capture is title-cased. Returns
// "Unknown" when nothing matches.
func Counterparty(narrative string) string {
	upper := strings.ToUpper(narrative)
	for _, p := range counterpartyPatterns {
		if m := p.FindStringSubmatch(upper); m != nil {
			return titleCaser.String(m[1])
		}
	}
	return "Unknown"
}
