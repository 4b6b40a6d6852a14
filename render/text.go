package render

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines no wider than width display columns
// Words longer than a line are split; explicit newlines are kept
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, width)...)
	}
	return lines
}

func wrapParagraph(para string, width int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		line  strings.Builder
		used  int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		used = 0
	}

	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if used > 0 && used+1+ww > width {
			flush()
		}
		for ww > width {
			head := runewidth.Truncate(w, width, "")
			if head == "" {
				// A single rune wider than the line still has to go somewhere
				_, size := utf8.DecodeRuneInString(w)
				head = w[:size]
			}
			line.WriteString(head)
			flush()
			w = w[len(head):]
			ww = runewidth.StringWidth(w)
		}
		if w == "" {
			continue
		}
		if used > 0 {
			line.WriteByte(' ')
			used++
		}
		line.WriteString(w)
		used += ww
	}
	if used > 0 || line.Len() > 0 {
		flush()
	}
	return lines
}
