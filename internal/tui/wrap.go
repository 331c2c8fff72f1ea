package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/rbehjati/typr/internal/engine"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes renders the track's per-position states into styled
// cells for wrapping. A space answered with a wrong rune is drawn as a red
// dot so the miss stays visible.
func buildStyledRunes(track *engine.Track, cursor int) []styledRune {
	currentWord, hasWord := track.WordAt(cursor)

	out := make([]styledRune, 0, track.Len())
	for i := 0; i < track.Len(); i++ {
		target := track.Rune(i)
		displayed := target
		var style = pendingStyle
		switch track.State(i) {
		case engine.CharCorrect:
			style = correctStyle
		case engine.CharIncorrect:
			style = incorrectStyle
			if target == ' ' {
				displayed = '•'
			}
		case engine.CharSkipped:
			style = skippedStyle
		case engine.CharPending:
			if target != ' ' && hasWord && i >= currentWord.Start && i < currentWord.End {
				style = currentWordStyle
			}
		}
		if i == cursor {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: target == ' ',
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
