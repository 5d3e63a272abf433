package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	truncationMark = "..."
)

// formatErrorForDisplay word-wraps an error row to at most maxErrorLines
// lines of maxWidth runes, ending with "..." when the message is cut short.
func formatErrorForDisplay(message string, maxWidth int) string {
	if message == "" {
		return "Error: unknown error"
	}
	if maxWidth < 10 {
		maxWidth = 10 // Minimum width to prevent edge cases
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		return message
	}

	var lines []string
	var currentLine strings.Builder
	consumed := 0

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(currentLine.String())

		if currentLen > 0 && currentLen+1+wordLen > maxWidth {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			if len(lines) >= maxErrorLines {
				break
			}
		}

		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
		consumed++
	}

	if currentLine.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, currentLine.String())
	}

	// Cut long single words to the width, marking each cut
	lastMarked := false
	for i, line := range lines {
		if runes := []rune(line); len(runes) > maxWidth {
			lines[i] = withTruncationMark(runes, maxWidth)
			lastMarked = i == len(lines)-1
		}
	}

	if consumed != len(words) && !lastMarked {
		last := len(lines) - 1
		lines[last] = withTruncationMark([]rune(lines[last]), maxWidth)
	}

	return strings.Join(lines, "\n")
}

// withTruncationMark appends "..." to line, shortening it to stay within maxWidth
func withTruncationMark(line []rune, maxWidth int) string {
	markLen := utf8.RuneCountInString(truncationMark)
	if len(line)+markLen > maxWidth {
		line = line[:min(max(maxWidth-markLen, 0), len(line))]
	}
	return string(line) + truncationMark
}
