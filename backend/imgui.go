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
	"github.com/inkyblackness/imgui-go/v4"
)

// native key index for the return key. imgui reads key state from the
// KeysDown array; indices below KeySentinel are taken by the Key values
// themselves
const nativeKeyEnter = int(KeySentinel)

// ImguiIO adapts the IO interface onto imgui-go. Logical keys are
// registered with imgui through KeyMap() and forwarded as KeysDown state,
// the way a desktop platform backend maps scancodes.
//
// imgui-go wraps an imgui version that predates the event-queue input API,
// which shapes some of the methods: analog key events forward only their
// digital edge, mouse source tags are dropped, and PendingEvents() is
// always zero because Set*/Key* calls update imgui state immediately.
type ImguiIO struct {
	io imgui.IO

	fontAtlasBuilt bool

	// advertised by the application's text widget code. imgui-go does not
	// expose the internal input-text state the way newer imgui versions do
	revertText string
	password   bool
}

// NewImguiIO is the preferred method of initialisation for the ImguiIO
// type. The imgui context must have been created beforehand.
func NewImguiIO() *ImguiIO {
	iio := &ImguiIO{
		io: imgui.CurrentIO(),
	}
	iio.setKeyMapping()
	return iio
}

func (iio *ImguiIO) setKeyMapping() {
	keys := map[int]int{
		imgui.KeyBackspace: int(KeyBackspace),
		imgui.KeyEnter:     nativeKeyEnter,

		// the dpad doubles as the arrow keys so imgui keyboard navigation
		// works from the hardware buttons
		imgui.KeyUpArrow:    int(KeyGamepadDpadUp),
		imgui.KeyRightArrow: int(KeyGamepadDpadRight),
		imgui.KeyDownArrow:  int(KeyGamepadDpadDown),
		imgui.KeyLeftArrow:  int(KeyGamepadDpadLeft),

		// face buttons activate and cancel, matching gamepad navigation
		// conventions
		imgui.KeySpace:  int(KeyGamepadFaceDown),
		imgui.KeyEscape: int(KeyGamepadFaceRight),
	}

	// imgui will use these indices to peek into the KeysDown array
	for imguiKey, nativeKey := range keys {
		iio.io.KeyMap(imguiKey, nativeKey)
	}
}

// SetDeltaTime implements the IO interface.
func (iio *ImguiIO) SetDeltaTime(dt float32) {
	// imgui requires a positive delta time every frame
	if dt <= 0.0 {
		dt = 1.0 / 60.0
	}
	iio.io.SetDeltaTime(dt)
}

// AddMouseSourceEvent implements the IO interface. imgui-go has no notion
// of a pointer source so the tag is dropped.
func (iio *ImguiIO) AddMouseSourceEvent(source MouseSource) {
}

// AddMousePosEvent implements the IO interface.
func (iio *ImguiIO) AddMousePosEvent(x float32, y float32) {
	iio.io.SetMousePosition(imgui.Vec2{X: x, Y: y})
}

// AddMouseButtonEvent implements the IO interface.
func (iio *ImguiIO) AddMouseButtonEvent(button int, down bool) {
	iio.io.SetMouseButtonDown(button, down)
}

// AddKeyEvent implements the IO interface.
func (iio *ImguiIO) AddKeyEvent(key Key, down bool) {
	if down {
		iio.io.KeyPress(int(key))
	} else {
		iio.io.KeyRelease(int(key))
	}
}

// AddKeyAnalogEvent implements the IO interface. Only the digital edge
// reaches imgui; the wrapped imgui version has no analog key events.
func (iio *ImguiIO) AddKeyAnalogEvent(key Key, down bool, value float32) {
	if down {
		iio.io.KeyPress(int(key))
	} else {
		iio.io.KeyRelease(int(key))
	}
}

// AddInputCharactersUTF8 implements the IO interface.
func (iio *ImguiIO) AddInputCharactersUTF8(text string) {
	iio.io.AddInputCharacters(text)
}

// WantTextInput implements the IO interface.
func (iio *ImguiIO) WantTextInput() bool {
	return iio.io.WantTextInput()
}

// TextToRevertTo implements the IO interface.
func (iio *ImguiIO) TextToRevertTo() string {
	return iio.revertText
}

// PasswordEntry implements the IO interface.
func (iio *ImguiIO) PasswordEntry() bool {
	return iio.password
}

// SetActiveWidget advertises the active text widget's current value and
// whether it wants masked entry. Widget code should call this for any
// widget that can request text input; imgui-go does not expose the
// information itself.
func (iio *ImguiIO) SetActiveWidget(revertText string, password bool) {
	iio.revertText = revertText
	iio.password = password
}

// PendingEvents implements the IO interface. Always zero: the adapter
// updates imgui state immediately rather than through an event queue.
func (iio *ImguiIO) PendingEvents() int {
	return 0
}

// ClearActiveID implements the IO interface. imgui-go does not expose
// ClearActiveID so the adapter commits the active widget with a return
// key press, which deactivates it on the next GUI frame.
func (iio *ImguiIO) ClearActiveID() {
	iio.io.KeyPress(nativeKeyEnter)
	iio.io.KeyRelease(nativeKeyEnter)
}

// FontAtlasBuilt implements the IO interface.
func (iio *ImguiIO) FontAtlasBuilt() bool {
	return iio.fontAtlasBuilt
}

// NotifyFontAtlasBuilt records that the renderer has built and uploaded
// the font atlas. Must be called before the first Backend.NewFrame().
func (iio *ImguiIO) NotifyFontAtlasBuilt() {
	iio.fontAtlasBuilt = true
}

// InstallClipboard implements the ClipboardInstaller interface.
func (iio *ImguiIO) InstallClipboard(clip *Clipboard) {
	iio.io.SetClipboard(clip)
}
