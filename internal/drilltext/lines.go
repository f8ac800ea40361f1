package drilltext

import (
	"regexp"
	"strings"
)

// lineBreakPattern marks where a reflex drill script starts a new
// logical line: immediately before "In combination with" or before
// "And <word>". The script text itself is kept intact — the trigger
// phrase opens the new line rather than being consumed.
var lineBreakPattern = regexp.MustCompile(`\bIn combination with\b|\bAnd\s+[A-Za-z]`)

// SplitReflexLines breaks a reflex drill script into its display
// lines. Empty fragments are dropped; a script with no trigger
// phrases is a single line.
func SplitReflexLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	locs := lineBreakPattern.FindAllStringIndex(text, -1)
	cuts := []int{0}
	for _, loc := range locs {
		if loc[0] > 0 {
			cuts = append(cuts, loc[0])
		}
	}
	cuts = append(cuts, len(text))

	var lines []string
	for i := 0; i+1 < len(cuts); i++ {
		line := strings.TrimSpace(text[cuts[i]:cuts[i+1]])
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
