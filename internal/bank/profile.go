package bank

import (
	"regexp"
	"time"
)

// Bank profile codes. Registry declaration order is part of the detection
// policy, see DefaultRegistry.
const (
	CodeSBI     = "sbi"
	CodeHDFC    = "hdfc"
	CodeICICI   = "icici"
	CodeAxis    = "axis"
	CodeKotak   = "kotak"
	CodeYesBank = "yes_bank"
	CodeGeneric = "generic"
)

// Profile describes one issuing bank's statement text conventions: how
// transaction lines start, where amounts sit, which keywords mark credits
// and debits, and which fragments identify the bank in a text sample.
// Profiles are immutable after construction; pattern order is policy.
type Profile struct {
	Code             string
	Name             string
	DatePattern      *regexp.Regexp
	DateLayouts      []string
	AmountPatterns   []*regexp.Regexp
	CreditKeywords   []string
	DebitKeywords    []string
	ReferencePattern *regexp.Regexp
	Fragments        []string
}

// NormalizeDate parses a raw date token with the profile's layouts, in
// declared order, and returns the ISO calendar date. If no layout parses,
// the raw token is returned unmodified.
func (p *Profile) NormalizeDate(raw string) string {
	for _, layout := range p.DateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}

func mustCompileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}
