package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_IdentifyingFragment(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		name   string
		sample string
		want   string
	}{
		{"sbi by SBIN fragment", "Account Statement SBIN0001234 Branch", CodeSBI},
		{"sbi fragment case-insensitive", "state bank of india savings account", CodeSBI},
		{"hdfc by name", "HDFC BANK LTD - Statement of account", CodeHDFC},
		{"icici", "ICICI Bank statement for savings", CodeICICI},
		{"axis", "AXIS BANK monthly summary", CodeAxis},
		{"kotak", "KOTAK MAHINDRA current account", CodeKotak},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Detect(tt.sample))
		})
	}
}

func TestDetect_DateFormatHeuristics(t *testing.T) {
	r := DefaultRegistry()

	// No identifying fragment anywhere; only line-leading date shapes.
	assert.Equal(t, CodeSBI, r.Detect("15 Jan 2024 OPENING BALANCE 1,000.00"))
	assert.Equal(t, CodeHDFC, r.Detect("15/01/2024 POS PURCHASE 499.00 DR"))
	assert.Equal(t, CodeICICI, r.Detect("15-01-2024 NEFT OUTWARD 250.00 Dr"))
}

func TestDetect_FragmentWinsOverHeuristic(t *testing.T) {
	r := DefaultRegistry()

	// ICICI-style dates but an HDFC fragment: fragments are checked first.
	sample := "HDFC BANK\n15-01-2024 NEFT OUTWARD 250.00"
	assert.Equal(t, CodeHDFC, r.Detect(sample))
}

func TestDetect_Generic(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, CodeGeneric, r.Detect("completely unrelated text"))
	assert.Equal(t, CodeGeneric, r.Detect(""))
}
