package sprite

import (
	"strings"

	"github.com/lixenwraith/runeframe/render"
)

// FromPattern builds a single frame from a multi-line text block.
// Leading and trailing blank lines are trimmed, the minimum common leading
// whitespace across non-blank lines is stripped, and rows are padded to
// equal width with the transparent placeholder. colors optionally maps
// characters to foreground overrides; characters absent from the map keep
// the sprite default.
func FromPattern(pattern string, colors map[rune]render.RGBA) *Frame {
	lines := strings.Split(pattern, "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return NewFrame(nil, nil, nil)
	}

	indent := commonIndent(lines)

	chars := make([][]rune, 0, len(lines))
	var fg [][]*render.RGBA
	if colors != nil {
		fg = make([][]*render.RGBA, 0, len(lines))
	}

	for _, line := range lines {
		row := []rune(line)
		if len(row) >= indent {
			row = row[indent:]
		} else {
			row = nil
		}
		chars = append(chars, row)

		if colors != nil {
			colorRow := make([]*render.RGBA, len(row))
			for i, ch := range row {
				if c, ok := colors[ch]; ok {
					override := c
					colorRow[i] = &override
				}
			}
			fg = append(fg, colorRow)
		}
	}

	return NewFrame(chars, fg, nil)
}

// commonIndent finds the minimum leading whitespace among non-blank lines
func commonIndent(lines []string) int {
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := 0
		for _, ch := range line {
			if ch != ' ' && ch != '\t' {
				break
			}
			n++
		}
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent < 0 {
		return 0
	}
	return indent
}

// FromString creates a single-frame sprite from a pattern block
func FromString(pattern string, fg render.RGBA, colors map[rune]render.RGBA) *Sprite {
	return New(fg, FromPattern(pattern, colors))
}

// EffectFromString creates an effect from a pattern block at the given cell
// position. Velocity, drag, and fade are set through the exported fields.
func EffectFromString(pattern string, x, y float64, fg render.RGBA, colors map[rune]render.RGBA) *Effect {
	e := NewEffect(fg, FromPattern(pattern, colors))
	e.X = x
	e.Y = y
	return e
}
