package statement

import (
	"regexp"
	"strings"

	"autoledger/internal/bank"
	"autoledger/internal/domain"
)

// Final-stage direction fallback: whole-word DR/CR indicators. Only this
// stage is word-boundary matched; the keyword sets use plain containment.
var (
	debitWord  = regexp.MustCompile(`\bDR\b`)
	creditWord = regexp.MustCompile(`\bCR\b`)
)

// Extract parses the fields of one transaction block under the given
// profile. It returns (nil, false) when the block cannot yield a full
// transaction — no date match on the first line, or no amount pattern
// match — in which case the caller keeps the block as an ambiguous entry.
func Extract(block domain.TransactionBlock, profile *bank.Profile) (*domain.ParsedTransaction, bool) {
	if len(block.Lines) == 0 {
		return nil, false
	}

	firstLine := strings.TrimSpace(block.Lines[0])
	rawDate := profile.DatePattern.FindString(firstLine)
	if rawDate == "" {
		return nil, false
	}

	fullText := block.Text()

	amount := extractAmount(fullText, profile)
	if amount == "" {
		return nil, false
	}

	narrative := strings.TrimSpace(strings.Replace(fullText, rawDate, "", 1))

	return &domain.ParsedTransaction{
		Date:      profile.NormalizeDate(rawDate),
		Reference: profile.ReferencePattern.FindString(fullText),
		Amount:    amount,
		Direction: extractDirection(fullText, profile),
		Narrative: narrative,
		BankCode:  profile.Code,
	}, true
}

// extractAmount tries the profile's amount patterns in declared order and
// returns the first captured group of the first pattern that matches.
func extractAmount(text string, profile *bank.Profile) string {
	for _, p := range profile.AmountPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// extractDirection determines credit/debit from the profile keyword sets.
// Keywords are matched by substring containment against the upper-cased
// text, credit set first, in declared order; a keyword that happens to be a
// substring of an unrelated token still wins. The whole-word DR/CR check is
// the last resort only.
func extractDirection(text string, profile *bank.Profile) domain.Direction {
	upper := strings.ToUpper(text)

	for _, kw := range profile.CreditKeywords {
		if strings.Contains(upper, strings.ToUpper(kw)) {
			return domain.DirectionCredit
		}
	}
	for _, kw := range profile.DebitKeywords {
		if strings.Contains(upper, strings.ToUpper(kw)) {
			return domain.DirectionDebit
		}
	}

	if debitWord.MatchString(upper) {
		return domain.DirectionDebit
	}
	if creditWord.MatchString(upper) {
		return domain.DirectionCredit
	}
	return domain.DirectionUnknown
}
