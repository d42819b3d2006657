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

// event is a single recorded emission from the backend.
type event struct {
	kind   string // "source", "move", "button", "key", "analog", "text"
	source backend.MouseSource
	x, y   float32
	button int
	key    backend.Key
	down   bool
	value  float32
	text   string
}

// recordingIO records every event the backend emits and plays the part of
// the GUI layer's observables.
type recordingIO struct {
	events []event
	delta  []float32

	wantText   bool
	revertText string
	password   bool
	pending    int
	fontBuilt  bool

	clearActive int
}

func newRecordingIO() *recordingIO {
	return &recordingIO{fontBuilt: true}
}

func (rio *recordingIO) reset() {
	rio.events = rio.events[:0]
}

func (rio *recordingIO) SetDeltaTime(dt float32) {
	rio.delta = append(rio.delta, dt)
}

func (rio *recordingIO) AddMouseSourceEvent(source backend.MouseSource) {
	rio.events = append(rio.events, event{kind: "source", source: source})
}

func (rio *recordingIO) AddMousePosEvent(x float32, y float32) {
	rio.events = append(rio.events, event{kind: "move", x: x, y: y})
}

func (rio *recordingIO) AddMouseButtonEvent(button int, down bool) {
	rio.events = append(rio.events, event{kind: "button", button: button, down: down})
}

func (rio *recordingIO) AddKeyEvent(key backend.Key, down bool) {
	rio.events = append(rio.events, event{kind: "key", key: key, down: down})
}

func (rio *recordingIO) AddKeyAnalogEvent(key backend.Key, down bool, value float32) {
	rio.events = append(rio.events, event{kind: "analog", key: key, down: down, value: value})
}

func (rio *recordingIO) AddInputCharactersUTF8(text string) {
	rio.events = append(rio.events, event{kind: "text", text: text})
}

func (rio *recordingIO) WantTextInput() bool {
	return rio.wantText
}

func (rio *recordingIO) TextToRevertTo() string {
	return rio.revertText
}

func (rio *recordingIO) PasswordEntry() bool {
	return rio.password
}

func (rio *recordingIO) PendingEvents() int {
	return rio.pending
}

func (rio *recordingIO) ClearActiveID() {
	rio.clearActive++
}

func (rio *recordingIO) FontAtlasBuilt() bool {
	return rio.fontBuilt
}

// snapshot is one frame of scripted hardware state.
type snapshot struct {
	down   hid.Button
	held   hid.Button
	up     hid.Button
	touch  hid.TouchPosition
	circle hid.CirclePosition
}

// scriptedInput plays back a sequence of snapshots, one per Scan(). the
// last snapshot repeats once the script runs out.
type scriptedInput struct {
	frames []snapshot
	idx    int
}

func newScriptedInput(frames ...snapshot) *scriptedInput {
	return &scriptedInput{frames: frames, idx: -1}
}

func (inp *scriptedInput) Scan() {
	if inp.idx < len(inp.frames)-1 {
		inp.idx++
	}
}

func (inp *scriptedInput) current() snapshot {
	if inp.idx < 0 {
		return snapshot{}
	}
	return inp.frames[inp.idx]
}

func (inp *scriptedInput) Down() hid.Button {
	return inp.current().down
}

func (inp *scriptedInput) Held() hid.Button {
	return inp.current().held
}

func (inp *scriptedInput) Up() hid.Button {
	return inp.current().up
}

func (inp *scriptedInput) Touch() hid.TouchPosition {
	return inp.current().touch
}

func (inp *scriptedInput) Circle() hid.CirclePosition {
	return inp.current().circle
}

// scriptedTicks plays back tick counter readings. the last reading repeats
// once the script runs out.
type scriptedTicks struct {
	rate  uint64
	ticks []uint64
	idx   int
}

func (st *scriptedTicks) Ticks() uint64 {
	if st.idx < len(st.ticks) {
		st.idx++
	}
	return st.ticks[st.idx-1]
}

func (st *scriptedTicks) TicksPerSecond() uint64 {
	return st.rate
}

// scriptedApplet returns a canned result and counts invocations.
type scriptedApplet struct {
	text      string
	confirmed bool

	calls       int
	gotInitial  string
	gotPassword bool
}

func (app *scriptedApplet) Input(initial string, password bool) (string, bool) {
	app.calls++
	app.gotInitial = initial
	app.gotPassword = password
	return app.text, app.confirmed
}

// newTestBackend assembles a Backend from the scripted parts with the
// default configuration.
func newTestBackend(rio *recordingIO, inp *scriptedInput, app *scriptedApplet, ticks *scriptedTicks) *backend.Backend {
	if ticks == nil {
		ticks = &scriptedTicks{rate: 1000, ticks: []uint64{0}}
	}
	return backend.NewBackend(rio, inp, app, ticks, backend.DefaultConfig())
}

func TestFrameOrdering(t *testing.T) {
	rio := newRecordingIO()
	inp := newScriptedInput(snapshot{
		down:  hid.ButtonTouch | hid.ButtonA,
		held:  hid.ButtonTouch,
		touch: hid.TouchPosition{X: 10, Y: 20},
	})
	app := &scriptedApplet{}
	bck := newTestBackend(rio, inp, app, nil)

	bck.NewFrame()

	// delta time must have been reported before any events were emitted
	test.Equate(t, len(rio.delta), 1)

	// touch events precede gamepad events
	test.Equate(t, len(rio.events), 8)
	test.Equate(t, rio.events[0].kind, "source")
	test.Equate(t, rio.events[1].kind, "move")
	test.Equate(t, rio.events[2].kind, "button")
	test.Equate(t, rio.events[3].kind, "key")

	// the four analog entries complete the frame
	test.Equate(t, rio.events[4].kind, "analog")
	test.Equate(t, rio.events[7].kind, "analog")
}

func TestFontAtlasPrecondition(t *testing.T) {
	rio := newRecordingIO()
	rio.fontBuilt = false
	bck := newTestBackend(rio, newScriptedInput(snapshot{}), &scriptedApplet{}, nil)

	defer func() {
		test.ExpectedSuccess(t, recover() != nil)
	}()
	bck.NewFrame()
	t.Errorf("expected panic with unbuilt font atlas")
}

func TestDeltaTime(t *testing.T) {
	rio := newRecordingIO()
	inp := newScriptedInput(snapshot{})
	ticks := &scriptedTicks{
		rate: 1000000,
		// the first frame reads the counter twice: once to establish the
		// epoch and once for the frame itself
		ticks: []uint64{1000, 1500, 2500, 2500},
	}
	bck := newTestBackend(rio, inp, &scriptedApplet{}, ticks)

	bck.NewFrame()
	test.Equate(t, len(rio.delta), 1)
	test.Equate(t, rio.delta[0], float32(float64(500)/float64(1000000)))

	bck.NewFrame()
	test.Equate(t, rio.delta[1], float32(float64(1000)/float64(1000000)))

	// no counter progress means a zero delta
	bck.NewFrame()
	test.Equate(t, rio.delta[2], float32(0))
}

func TestClipboard(t *testing.T) {
	rio := newRecordingIO()
	bck := newTestBackend(rio, newScriptedInput(snapshot{}), &scriptedApplet{}, nil)

	clp := bck.Clipboard()
	s, err := clp.Text()
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "")

	clp.SetText("copied text")
	s, _ = clp.Text()
	test.Equate(t, s, "copied text")

	// a second backend does not share the buffer
	other := newTestBackend(newRecordingIO(), newScriptedInput(snapshot{}), &scriptedApplet{}, nil)
	s, _ = other.Clipboard().Text()
	test.Equate(t, s, "")
}
