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

package backend_test

import (
	"testing"

	"github.com/mossvale/ctrimgui/backend"
	"github.com/mossvale/ctrimgui/hid"
	"github.com/mossvale/ctrimgui/test"
)

// textEvents filters the recorded events down to text insertions.
func textEvents(rio *recordingIO) []event {
	var evs []event
	for _, ev := range rio.events {
		if ev.kind == "text" {
			evs = append(evs, ev)
		}
	}
	return evs
}

func TestKeyboardNeverOpensUnrequested(t *testing.T) {
	rio := newRecordingIO()
	app := &scriptedApplet{text: "never seen", confirmed: true}
	bck := newTestBackend(rio, newScriptedInput(snapshot{}), app, nil)

	for fr := 0; fr < 10; fr++ {
		bck.NewFrame()
	}

	test.Equate(t, app.calls, 0)
	test.Equate(t, len(textEvents(rio)), 0)
	test.Equate(t, rio.clearActive, 0)
}

func TestKeyboardConfirmedText(t *testing.T) {
	rio := newRecordingIO()
	rio.wantText = true
	rio.revertText = "old value"
	app := &scriptedApplet{text: "Hi", confirmed: true}
	bck := newTestBackend(rio, newScriptedInput(snapshot{}), app, nil)

	bck.NewFrame()

	// applet seeded with the widget's revert text
	test.Equate(t, app.calls, 1)
	test.Equate(t, app.gotInitial, "old value")
	test.Equate(t, app.gotPassword, false)

	// exactly the text, no backspace events
	evs := textEvents(rio)
	test.Equate(t, len(evs), 1)
	test.Equate(t, evs[0].text, "Hi")
	for _, ev := range keyEvents(rio) {
		test.Equate(t, ev.key != backend.KeyBackspace, true)
	}
}

func TestKeyboardConfirmedEmpty(t *testing.T) {
	rio := newRecordingIO()
	rio.wantText = true
	app := &scriptedApplet{text: "", confirmed: true}
	bck := newTestBackend(rio, newScriptedInput(snapshot{}), app, nil)

	bck.NewFrame()

	// an emptied field arrives as backspace down then up and no text
	test.Equate(t, len(textEvents(rio)), 0)
	evs := keyEvents(rio)
	test.Equate(t, len(evs), 2)
	test.Equate(t, evs[0].key == backend.KeyBackspace, true)
	test.Equate(t, evs[0].down, true)
	test.Equate(t, evs[1].key == backend.KeyBackspace, true)
	test.Equate(t, evs[1].down, false)
}

func TestKeyboardCancelled(t *testing.T) {
	rio := newRecordingIO()
	rio.wantText = true
	app := &scriptedApplet{text: "discarded", confirmed: false}
	bck := newTestBackend(rio, newScriptedInput(snapshot{}), app, nil)

	bck.NewFrame()

	// cancellation injects nothing at all
	test.Equate(t, app.calls, 1)
	test.Equate(t, len(textEvents(rio)), 0)
	test.Equate(t, len(keyEvents(rio)), 0)
}

func TestKeyboardPasswordEntry(t *testing.T) {
	rio := newRecordingIO()
	rio.wantText = true
	rio.password = true
	app := &scriptedApplet{text: "secret", confirmed: true}
	bck := newTestBackend(rio, newScriptedInput(snapshot{}), app, nil)

	bck.NewFrame()
	test.Equate(t, app.gotPassword, true)
}

func TestKeyboardDrainAndSettle(t *testing.T) {
	rio := newRecordingIO()
	rio.wantText = true
	app := &scriptedApplet{text: "Hi", confirmed: true}
	bck := newTestBackend(rio, newScriptedInput(snapshot{}), app, nil)

	// frame 1: applet runs, events injected, session is now draining
	bck.NewFrame()
	test.Equate(t, app.calls, 1)

	// frames 2 and 3: the GUI layer has not finished processing the
	// injected events. the session must not settle and must not reopen
	// the applet even though WantTextInput is still true
	rio.pending = 2
	bck.NewFrame()
	bck.NewFrame()
	test.Equate(t, app.calls, 1)
	test.Equate(t, rio.clearActive, 0)

	// frame 4: drained. the session settles but focus is still held
	rio.pending = 0
	bck.NewFrame()
	test.Equate(t, rio.clearActive, 0)

	// frame 5: the settled frame ends with the focus cleared
	rio.wantText = false
	bck.NewFrame()
	test.Equate(t, rio.clearActive, 1)

	// and the session is inactive again: a new request reopens the applet
	rio.wantText = true
	bck.NewFrame()
	test.Equate(t, app.calls, 2)
}

// the touch and gamepad translators keep running while the keyboard
// session drains.
func TestKeyboardDoesNotBlockOtherTranslators(t *testing.T) {
	rio := newRecordingIO()
	rio.wantText = true
	app := &scriptedApplet{text: "Hi", confirmed: true}
	inp := newScriptedInput(
		snapshot{},
		snapshot{down: hid.ButtonA},
	)
	bck := newTestBackend(rio, inp, app, nil)

	bck.NewFrame()
	rio.pending = 1

	rio.reset()
	bck.NewFrame()

	evs := keyEvents(rio)
	test.Equate(t, len(evs), 1)
	test.Equate(t, evs[0].key == backend.KeyGamepadFaceDown, true)
}
