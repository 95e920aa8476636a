package bank

import (
	"log"
	"regexp"
	"strings"
)

// Date-format heuristics applied when no identifying fragment matches,
// in this order.
var (
	sbiDateHint   = regexp.MustCompile(`(?m)^\d{1,2} [A-Za-z]{3} \d{4}`)
	hdfcDateHint  = regexp.MustCompile(`(?m)^\d{1,2}/\d{1,2}/\d{4}`)
	iciciDateHint = regexp.MustCompile(`(?m)^\d{1,2}-\d{1,2}-\d{4}`)
)

// Detect returns the code of the best-matching bank profile for a text
// sample (the first pages of a statement). It checks each profile's
// identifying fragments in declaration order and returns on the first hit;
// failing that, it falls back to date-format heuristics, and finally to the
// generic profile. Detection never fails.
func (r *Registry) Detect(sample string) string {
	upper := strings.ToUpper(sample)

	for _, p := range r.profiles {
		if p.Code == CodeGeneric {
			continue
		}
		for _, frag := range p.Fragments {
			if strings.Contains(upper, strings.ToUpper(frag)) {
				log.Printf("bank.Registry: detected bank %s", p.Name)
				return p.Code
			}
		}
	}

	switch {
	case sbiDateHint.MatchString(sample):
		log.Printf("bank.Registry: detected SBI-like date format")
		return CodeSBI
	case hdfcDateHint.MatchString(sample):
		log.Printf("bank.Registry: detected HDFC/Axis-like date format")
		return CodeHDFC
	case iciciDateHint.MatchString(sample):
		log.Printf("bank.Registry: detected ICICI/Kotak-like date format")
		return CodeICICI
	}

	log.Printf("bank.Registry: no bank detected, using generic profile")
	return CodeGeneric
}
