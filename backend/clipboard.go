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

package backend

// Clipboard is the clipboard buffer for a Backend. The console has no
// system clipboard so a single string is the whole implementation. Both
// methods are called from the frame goroutine only, so there is no
// locking.
//
// The method set satisfies imgui-go's Clipboard interface, allowing the
// buffer to be installed into imgui IO directly.
type Clipboard struct {
	text string
}

// Text returns the buffer contents. The returned string is valid until
// the next SetText().
func (clp *Clipboard) Text() (string, error) {
	return clp.text, nil
}

// SetText replaces the buffer wholesale. No size limit is enforced here;
// any limit is the GUI layer's concern.
func (clp *Clipboard) SetText(text string) {
	clp.text = text
}
