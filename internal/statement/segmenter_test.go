package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoledger/internal/bank"
)

func sbiProfile(t *testing.T) *bank.Profile {
	t.Helper()
	return bank.DefaultRegistry().ByCode(bank.CodeSBI)
}

func TestSegment_GroupsLinesIntoBlocks(t *testing.T) {
	lines := []string{
		"15 Jan 2024",
		"UPI/CR/12345678 TRANSFER FROM JOHN DOE 1,250.00",
		"16 Jan 2024",
		"UPI/DR/87654321 TO TRANSFER PAYTM 500.00",
		"continuation of narration",
	}

	blocks := Segment(lines, sbiProfile(t))
	require.Len(t, blocks, 2)
	assert.Equal(t, []string{"15 Jan 2024", "UPI/CR/12345678 TRANSFER FROM JOHN DOE 1,250.00"}, blocks[0].Lines)
	assert.Equal(t, []string{"16 Jan 2024", "UPI/DR/87654321 TO TRANSFER PAYTM 500.00", "continuation of narration"}, blocks[1].Lines)
}

func TestSegment_LeadingNonDateLinesDropped(t *testing.T) {
	lines := []string{
		"STATEMENT OF ACCOUNT",
		"Page 1 of 3",
		"15 Jan 2024 BY TRANSFER 100.00",
	}

	blocks := Segment(lines, sbiProfile(t))
	require.Len(t, blocks, 1)
	assert.Equal(t, []string{"15 Jan 2024 BY TRANSFER 100.00"}, blocks[0].Lines)
}

func TestSegment_NoDateLinesYieldsNothing(t *testing.T) {
	// A footer-only page produces zero blocks; the lines are absorbed, not
	// flagged as ambiguous.
	blocks := Segment([]string{"some unrelated footer text"}, sbiProfile(t))
	assert.Empty(t, blocks)
}

func TestSegment_TrailingBufferFlushedAtEndOfPage(t *testing.T) {
	lines := []string{
		"15 Jan 2024",
		"narration line",
	}

	blocks := Segment(lines, sbiProfile(t))
	require.Len(t, blocks, 1)
	assert.Equal(t, []string{"15 Jan 2024", "narration line"}, blocks[0].Lines)
}

func TestSegment_TrimsWhitespace(t *testing.T) {
	blocks := Segment([]string{"  15 Jan 2024  ", "  detail  "}, sbiProfile(t))
	require.Len(t, blocks, 1)
	assert.Equal(t, []string{"15 Jan 2024", "detail"}, blocks[0].Lines)
}

func TestSegment_EmptyPage(t *testing.T) {
	assert.Empty(t, Segment(nil, sbiProfile(t)))
}
