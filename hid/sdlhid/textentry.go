// This file is part of ctrimgui.
//
// ctrimgui is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ctrimgui is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ctrimgui.  If not, see <https://www.gnu.org/licenses/>.

package sdlhid

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/pkg/term/termios"

	"github.com/mossvale/ctrimgui/hid"
)

// TextEntry implements hid.TextEntry with a blocking prompt on the
// controlling terminal. Like the real applet it suspends the frame loop
// until the entry is confirmed (return) or cancelled (EOF, ctrl-d).
type TextEntry struct {
	input  *os.File
	output *os.File
	reader *bufio.Reader
}

// NewTextEntry is the preferred method of initialisation for the
// TextEntry type.
func NewTextEntry() *TextEntry {
	return &TextEntry{
		input:  os.Stdin,
		output: os.Stdout,
		reader: bufio.NewReader(os.Stdin),
	}
}

// Input implements the hid.TextEntry interface.
func (te *TextEntry) Input(initial string, password bool) (string, bool) {
	te.output.WriteString(fmt.Sprintf("text entry [%s]: ", initial))

	if password {
		// masked entry: turn terminal echo off for the duration of the
		// read and restore it afterwards
		var attr syscall.Termios
		if err := termios.Tcgetattr(te.input.Fd(), &attr); err == nil {
			restore := attr
			attr.Lflag &^= syscall.ECHO
			_ = termios.Tcsetattr(te.input.Fd(), termios.TCSANOW, &attr)
			defer func() {
				_ = termios.Tcsetattr(te.input.Fd(), termios.TCSANOW, &restore)
				te.output.WriteString("\n")
			}()
		}
	}

	line, err := te.reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	line = strings.TrimRight(line, "\r\n")

	return Truncate(line), true
}

// Truncate cuts text at the applet buffer capacity. On the console the
// applet itself never returns more than hid.TextEntryCapacity bytes; the
// simulator has to enforce the contract by hand. The cut never leaves a
// partial UTF-8 sequence behind.
func Truncate(text string) string {
	if len(text) <= hid.TextEntryCapacity {
		return text
	}

	text = text[:hid.TextEntryCapacity]
	for len(text) > 0 && !utf8.ValidString(text) {
		text = text[:len(text)-1]
	}
	return text
}
