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

import (
	"github.com/mossvale/ctrimgui/hid"
)

// textState is the state of the modal text-input session.
type textState int

// List of textState values.
const (
	// no text input requested
	textInactive textState = iota

	// an applet session has completed and its events are draining
	textActive

	// one-frame cool-down before returning to textInactive
	textSettled
)

// textSession is the state machine for modal text input. It is owned by
// the Backend and advances once per frame.
type textSession struct {
	state textState
}

// update advances the session. The applet call inside the textInactive
// branch blocks the whole frame until the user confirms or cancels; this
// is the single suspension point in the backend.
func (s *textSession) update(io IO, applet hid.TextEntry) {
	switch s.state {
	case textInactive:
		if !io.WantTextInput() {
			return
		}

		text, confirmed := applet.Input(io.TextToRevertTo(), io.PasswordEntry())
		if confirmed {
			if text == "" {
				// the GUI layer has no direct "field cleared" event. a
				// backspace press carries the same meaning
				io.AddKeyEvent(KeyBackspace, true)
				io.AddKeyEvent(KeyBackspace, false)
			} else {
				io.AddInputCharactersUTF8(text)
			}
		}

		// a cancelled applet injects nothing but the session still runs
		// through the draining states
		s.state = textActive

	case textActive:
		// wait until the injected events have been fully processed
		if io.PendingEvents() > 0 {
			return
		}
		s.state = textSettled

	case textSettled:
		// focus loss is observed only after every injected event has been
		// processed. clearing any earlier would reopen the keyboard on
		// the same interaction
		io.ClearActiveID()
		s.state = textInactive
	}
}
