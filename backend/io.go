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

// MouseSource identifies the origin of pointer events. The console has no
// mouse so the only source the translators ever report is the touch screen,
// but the distinction is part of the event vocabulary the GUI layer
// understands.
type MouseSource int

// List of MouseSource values.
const (
	MouseSourceMouse MouseSource = iota
	MouseSourceTouchScreen
)

// Key is the logical input identifier consumed by the GUI layer,
// independent of physical button identity. Several physical buttons map to
// the same Key (see the button table in gamepad.go).
type Key int

// List of Key values.
const (
	KeyNone Key = iota
	KeyBackspace
	KeyGamepadFaceDown
	KeyGamepadFaceRight
	KeyGamepadFaceUp
	KeyGamepadFaceLeft
	KeyGamepadL1
	KeyGamepadR1
	KeyGamepadDpadUp
	KeyGamepadDpadRight
	KeyGamepadDpadDown
	KeyGamepadDpadLeft
	KeyGamepadLStickUp
	KeyGamepadLStickRight
	KeyGamepadLStickDown
	KeyGamepadLStickLeft

	// number of Key values. used for sizing arrays indexed by Key
	KeySentinel
)

// IO is the event sink and the GUI-side observables the backend works
// against. The concrete implementation for imgui is the ImguiIO type.
//
// Events added during a frame must be observable by the GUI layer in the
// order they were added.
type IO interface {
	// SetDeltaTime reports the time elapsed since the previous frame, in
	// seconds
	SetDeltaTime(dt float32)

	AddMouseSourceEvent(source MouseSource)
	AddMousePosEvent(x float32, y float32)
	AddMouseButtonEvent(button int, down bool)
	AddKeyEvent(key Key, down bool)

	// AddKeyAnalogEvent carries both the digital interpretation of an
	// analog direction and its magnitude in the range [0.0, 1.0]
	AddKeyAnalogEvent(key Key, down bool, value float32)

	AddInputCharactersUTF8(text string)

	// WantTextInput is true while the GUI layer has an active text widget
	// waiting for input
	WantTextInput() bool

	// TextToRevertTo is the active text widget's current value, used to
	// seed the text-entry applet
	TextToRevertTo() string

	// PasswordEntry is true if the active text widget wants masked entry
	PasswordEntry() bool

	// PendingEvents is the number of events added to the sink that the GUI
	// layer has not yet processed. used only to detect drain completion
	PendingEvents() int

	// ClearActiveID removes focus from the active widget
	ClearActiveID()

	// FontAtlasBuilt reports whether the renderer has built the font
	// atlas. a precondition of every frame
	FontAtlasBuilt() bool
}

// ClipboardInstaller is implemented by IO implementations that can accept
// the backend's clipboard buffer. NewBackend() installs the clipboard
// during construction if the sink supports it.
type ClipboardInstaller interface {
	InstallClipboard(clip *Clipboard)
}
