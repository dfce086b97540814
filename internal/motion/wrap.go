package motion

import "strings"

// Wrap breaks text into lines of at most cols runes, splitting on spaces.
// Words longer than a line are cut.
func Wrap(text string, cols int) []string {
	if cols <= 0 {
		return nil
	}
	var lines []string
	var line []rune
	for _, w := range strings.Fields(text) {
		word := []rune(w)
		for len(word) > cols {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = line[:0]
			}
			lines = append(lines, string(word[:cols]))
			word = word[cols:]
		}
		switch {
		case len(line) == 0:
			line = append(line, word...)
		case len(line)+1+len(word) <= cols:
			line = append(line, ' ')
			line = append(line, word...)
		default:
			lines = append(lines, string(line))
			line = append(line[:0], word...)
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
