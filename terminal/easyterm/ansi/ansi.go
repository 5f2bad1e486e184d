// This file is part of EE.
//
// EE is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// EE is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with EE.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi defines ANSI control codes for colours and styles.
package ansi

import (
	"fmt"
	"strings"
)

var colors = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"normal":  9,
}

var attributes = map[string]int{
	"bold":      1,
	"dim":       2,
	"underline": 4,
	"inverse":   7,
	"strike":    9,
}

const (
	targetPen   = 30
	targetPaper = 40
)

// Pens is the table of colours to be used for text, keyed by colour name.
var Pens map[string]string

// DimPens is the table of faint colours to be used for text.
var DimPens map[string]string

// NormalPen resets all colours and styles.
const NormalPen = "\033[0m"

func init() {
	Pens = make(map[string]string, len(colors))
	DimPens = make(map[string]string, len(colors))
	for c := range colors {
		Pens[c], _ = ColorBuild(c, "", "")
		DimPens[c], _ = ColorBuild(c, "", "dim")
	}
}

// ColorBuild creates the ANSI sequence for the pen colour, paper colour and
// attribute. Any of the three may be the empty string.
func ColorBuild(pen string, paper string, attribute string) (string, error) {
	codes := make([]string, 0, 3)

	if pen != "" {
		c, ok := colors[strings.ToLower(pen)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
		}
		codes = append(codes, fmt.Sprint(targetPen+c))
	}

	if paper != "" {
		c, ok := colors[strings.ToLower(paper)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown paper (%s)", paper)
		}
		codes = append(codes, fmt.Sprint(targetPaper+c))
	}

	if attribute != "" && strings.ToLower(attribute) != "normal" {
		a, ok := attributes[strings.ToLower(attribute)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		codes = append(codes, fmt.Sprint(a))
	}

	if len(codes) == 0 {
		return NormalPen, nil
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}

// ClearLine is the CSI sequence to clear the entire current line.
const ClearLine = "\033[2K"

// CursorUp is the CSI sequence to move the cursor n lines up.
func CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\033[%dA", n)
}
