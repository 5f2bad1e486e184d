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

package logger

import (
	"io"
	"strings"

	"github.com/d100/ee/terminal/easyterm/ansi"
)

// Colorizer is an io.Writer that colours log entries for display on an ANSI
// terminal. The tag is highlighted and any continuation lines of the detail
// are dimmed.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. The number of bytes returned is
// the number of bytes of p that were written, not including the ANSI codes.
func (c Colorizer) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimRight(string(p), "\n"), "\n")

	s := strings.Builder{}

	tag, detail, ok := strings.Cut(lines[0], ": ")
	if ok {
		s.WriteString(ansi.Pens["cyan"])
		s.WriteString(tag)
		s.WriteString(ansi.NormalPen)
		s.WriteString(": ")
		s.WriteString(detail)
	} else {
		s.WriteString(lines[0])
	}
	s.WriteString("\n")

	if len(lines) > 1 {
		s.WriteString(ansi.DimPens["red"])
		for _, l := range lines[1:] {
			s.WriteString(l)
			s.WriteString("\n")
		}
		s.WriteString(ansi.NormalPen)
	}

	if _, err := io.WriteString(c.out, s.String()); err != nil {
		return 0, err
	}
	return len(p), nil
}
