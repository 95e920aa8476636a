package bank

import "regexp"

// Registry is the read-only table of bank profiles. Profile declaration
// order and fragment order within a profile are preserved exactly; detection
// is first-match, not best-match.
type Registry struct {
	profiles []*Profile
	byCode   map[string]*Profile
}

// NewRegistry builds a registry from an ordered list of profiles. The last
// profile with code "generic" acts as the fallback.
func NewRegistry(profiles ...*Profile) *Registry {
	byCode := make(map[string]*Profile, len(profiles))
	for _, p := range profiles {
		byCode[p.Code] = p
	}
	return &Registry{profiles: profiles, byCode: byCode}
}

// ByCode returns the profile for a bank code, falling back to the generic
// profile for unknown codes.
func (r *Registry) ByCode(code string) *Profile {
	if p, ok := r.byCode[code]; ok {
		return p
	}
	return r.byCode[CodeGeneric]
}

// Profiles returns the profiles in declaration order.
func (r *Registry) Profiles() []*Profile {
	return r.profiles
}

// BankInfo describes one supported bank for API consumers.
type BankInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Supported lists the configured banks, excluding the generic fallback.
func (r *Registry) Supported() []BankInfo {
	var out []BankInfo
	for _, p := range r.profiles {
		if p.Code == CodeGeneric {
			continue
		}
		out = append(out, BankInfo{Code: p.Code, Name: p.Name})
	}
	return out
}

// DefaultRegistry returns the built-in profile table. Declaration order
// matters: it is the detection iteration order.
func DefaultRegistry() *Registry {
	return NewRegistry(
		&Profile{
			Code:        CodeSBI,
			Name:        "State Bank of India",
			DatePattern: regexp.MustCompile(`^\d{1,2} [A-Za-z]{3} \d{4}`),
			DateLayouts: []string{"2 Jan 2006"},
			AmountPatterns: mustCompileAll(
				`(?i)TRANSFER[^\d]*([\d,]+\.\d{2})`,
				`(?i)(\d{1,3}(?:,\d{3})*\.\d{2})$`,
				`(?i)([\d,]+\.\d{2})\s*$`,
			),
			CreditKeywords:   []string{"CREDITED", "UPI/CR", "BY TRANSFER", "FROM", "CREDIT"},
			DebitKeywords:    []string{"DEBITED", "UPI/DR", "TO TRANSFER", "TO", "DEBIT"},
			ReferencePattern: regexp.MustCompile(`UPI/[CD]R/\d{8,}`),
			Fragments:        []string{"SBI", "STATE BANK", "SBIN"},
		},
		&Profile{
			Code:        CodeHDFC,
			Name:        "HDFC Bank",
			DatePattern: regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}`),
			DateLayouts: []string{"2/1/2006"},
			AmountPatterns: mustCompileAll(
				`(?i)([\d,]+\.\d{2})\s*DR$`,
				`(?i)([\d,]+\.\d{2})\s*CR$`,
				`(?i)([\d,]+\.\d{2})\s*$`,
			),
			CreditKeywords:   []string{"CR", "CREDIT", "CREDITED", "RECEIVED", "FROM"},
			DebitKeywords:    []string{"DR", "DEBIT", "DEBITED", "PAID", "TO"},
			ReferencePattern: regexp.MustCompile(`UPI/[A-Z]+/\d+`),
			Fragments:        []string{"HDFC", "HDFC BANK"},
		},
		&Profile{
			Code:        CodeICICI,
			Name:        "ICICI Bank",
			DatePattern: regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}`),
			DateLayouts: []string{"2-1-2006"},
			AmountPatterns: mustCompileAll(
				`(?i)([\d,]+\.\d{2})\s*Dr$`,
				`(?i)([\d,]+\.\d{2})\s*Cr$`,
				`(?i)([\d,]+\.\d{2})\s*$`,
			),
			CreditKeywords:   []string{"Cr", "CREDIT", "CREDITED", "RECEIVED"},
			DebitKeywords:    []string{"Dr", "DEBIT", "DEBITED", "PAID"},
			ReferencePattern: regexp.MustCompile(`UPI/[A-Z]+/\d+`),
			Fragments:        []string{"ICICI", "ICICI BANK"},
		},
		&Profile{
			Code:        CodeAxis,
			Name:        "Axis Bank",
			DatePattern: regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}`),
			DateLayouts: []string{"2/1/2006"},
			AmountPatterns: mustCompileAll(
				`(?i)([\d,]+\.\d{2})\s*DR$`,
				`(?i)([\d,]+\.\d{2})\s*CR$`,
				`(?i)([\d,]+\.\d{2})\s*$`,
			),
			CreditKeywords:   []string{"CR", "CREDIT", "CREDITED", "RECEIVED"},
			DebitKeywords:    []string{"DR", "DEBIT", "DEBITED", "PAID"},
			ReferencePattern: regexp.MustCompile(`UPI/[A-Z]+/\d+`),
			Fragments:        []string{"AXIS", "AXIS BANK"},
		},
		&Profile{
			Code:        CodeKotak,
			Name:        "Kotak Mahindra Bank",
			DatePattern: regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}`),
			DateLayouts: []string{"2-1-2006"},
			AmountPatterns: mustCompileAll(
				`(?i)([\d,]+\.\d{2})\s*DR$`,
				`(?i)([\d,]+\.\d{2})\s*CR$`,
				`(?i)([\d,]+\.\d{2})\s*$`,
			),
			CreditKeywords:   []string{"CR", "CREDIT", "CREDITED", "RECEIVED"},
			DebitKeywords:    []string{"DR", "DEBIT", "DEBITED", "PAID"},
			ReferencePattern: regexp.MustCompile(`UPI/[A-Z]+/\d+`),
			Fragments:        []string{"KOTAK", "KOTAK MAHINDRA"},
		},
		&Profile{
			Code:        CodeYesBank,
			Name:        "YES Bank",
			DatePattern: regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}`),
			DateLayouts: []string{"2/1/2006"},
			AmountPatterns: mustCompileAll(
				`(?i)([\d,]+\.\d{2})\s*DR$`,
				`(?i)([\d,]+\.\d{2})\s*CR$`,
				`(?i)([\d,]+\.\d{2})\s*$`,
			),
			CreditKeywords:   []string{"CR", "CREDIT", "CREDITED", "RECEIVED"},
			DebitKeywords:    []string{"DR", "DEBIT", "DEBITED", "PAID"},
			ReferencePattern: regexp.MustCompile(`UPI/[A-Z]+/\d+`),
			Fragments:        []string{"YES", "YES BANK"},
		},
		&Profile{
			Code:        CodeGeneric,
			Name:        "Generic Bank",
			DatePattern: regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{4}|\d{1,2} [A-Za-z]{3} \d{4}`),
			DateLayouts: []string{"2 Jan 2006", "2/1/2006", "2-1-2006", "2006-01-02"},
			AmountPatterns: mustCompileAll(
				`(?i)([\d,]+\.\d{2})\s*DR$`,
				`(?i)([\d,]+\.\d{2})\s*CR$`,
				`(?i)([\d,]+\.\d{2})\s*$`,
				`(?i)(\d{1,3}(?:,\d{3})*\.\d{2})$`,
			),
			CreditKeywords:   []string{"CR", "CREDIT", "CREDITED", "RECEIVED", "FROM"},
			DebitKeywords:    []string{"DR", "DEBIT", "DEBITED", "PAID", "TO"},
			ReferencePattern: regexp.MustCompile(`UPI/[A-Z]+/\d+`),
			Fragments:        nil,
		},
	)
}
