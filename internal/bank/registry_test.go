package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_Order(t *testing.T) {
	r := DefaultRegistry()

	var codes []string
	for _, p := range r.Profiles() {
		codes = append(codes, p.Code)
	}
	// Declaration order is the detection iteration order.
	assert.Equal(t, []string{CodeSBI, CodeHDFC, CodeICICI, CodeAxis, CodeKotak, CodeYesBank, CodeGeneric}, codes)
}

func TestByCode_FallsBackToGeneric(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, CodeHDFC, r.ByCode(CodeHDFC).Code)
	assert.Equal(t, CodeGeneric, r.ByCode("no-such-bank").Code)
}

func TestSupported_ExcludesGeneric(t *testing.T) {
	r := DefaultRegistry()

	banks := r.Supported()
	require.Len(t, banks, 6)
	for _, b := range banks {
		assert.NotEqual(t, CodeGeneric, b.Code)
		assert.NotEmpty(t, b.Name)
	}
}

func TestNormalizeDate_RoundTrip(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		code string
		raw  string
		want string
	}{
		{CodeSBI, "15 Jan 2024", "2024-01-15"},
		{CodeSBI, "1 Feb 2023", "2023-02-01"},
		{CodeHDFC, "15/01/2024", "2024-01-15"},
		{CodeAxis, "5/9/2024", "2024-09-05"},
		{CodeYesBank, "31/12/2023", "2023-12-31"},
		{CodeICICI, "15-01-2024", "2024-01-15"},
		{CodeKotak, "7-3-2024", "2024-03-07"},
		{CodeGeneric, "15 Jan 2024", "2024-01-15"},
		{CodeGeneric, "15/01/2024", "2024-01-15"},
		{CodeGeneric, "15-01-2024", "2024-01-15"},
		{CodeGeneric, "2024-01-15", "2024-01-15"},
	}
	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ByCode(tt.code).NormalizeDate(tt.raw))
		})
	}
}

func TestNormalizeDate_UnparsableKeepsRawToken(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, "99 Jan 2024", r.ByCode(CodeSBI).NormalizeDate("99 Jan 2024"))
	assert.Equal(t, "not a date", r.ByCode(CodeGeneric).NormalizeDate("not a date"))
}
