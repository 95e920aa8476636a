package statement

import (
	"strings"

	"autoledger/internal/bank"
	"autoledger/internal/domain"
)

// Segment groups one page's lines into transaction blocks. A new block
// starts at every line matching the profile's date pattern; subsequent
// non-date lines are appended to the open block. Lines before the first
// date line of a page are dropped. The buffer is reset per page, so a
// description straddling a page boundary is split into two blocks.
func Segment(lines []string, profile *bank.Profile) []domain.TransactionBlock {
	var blocks []domain.TransactionBlock
	var buf []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if profile.DatePattern.MatchString(line) {
			if len(buf) > 0 {
				blocks = append(blocks, domain.TransactionBlock{Lines: buf})
			}
			buf = []string{line}
			continue
		}
		if buf != nil {
			buf = append(buf, line)
		}
	}
	if len(buf) > 0 {
		blocks = append(blocks, domain.TransactionBlock{Lines: buf})
	}
	return blocks
}
