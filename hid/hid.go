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

package hid

// Button is the bitmask of the console's physical controls. Bit values
// follow the console's HID service. The touch panel contributes a bit of
// its own, meaning press/release edges for the panel arrive through the
// same masks as the face buttons.
type Button uint32

// List of Button values.
const (
	ButtonA      Button = 1 << 0
	ButtonB      Button = 1 << 1
	ButtonSelect Button = 1 << 2
	ButtonStart  Button = 1 << 3
	ButtonDRight Button = 1 << 4
	ButtonDLeft  Button = 1 << 5
	ButtonDUp    Button = 1 << 6
	ButtonDDown  Button = 1 << 7
	ButtonR      Button = 1 << 8
	ButtonL      Button = 1 << 9
	ButtonX      Button = 1 << 10
	ButtonY      Button = 1 << 11
	ButtonZL     Button = 1 << 14
	ButtonZR     Button = 1 << 15
	ButtonTouch  Button = 1 << 20
)

// IsSet returns true if all bits of b are set in the mask.
func (m Button) IsSet(b Button) bool {
	return m&b == b
}

// TouchPosition is the touch panel coordinate reported by the digitizer.
// Only meaningful while ButtonTouch is held.
type TouchPosition struct {
	X uint16
	Y uint16
}

// CircleFullScale is the nominal maximum displacement of the circle pad on
// either axis. Raw readings can exceed it slightly at the extremes of
// travel.
const CircleFullScale = 156

// CirclePosition is the raw displacement of the circle pad. Zero at rest,
// positive DX to the right, positive DY upwards.
type CirclePosition struct {
	DX int16
	DY int16
}

// Input provides the per-frame snapshot of the console's input state.
//
// Scan() latches the state for the current frame. The Down(), Held() and
// Up() masks and the touch/circle readings all refer to the most recent
// Scan(). Down and Up are edge masks maintained by the HID service itself,
// so a press and release inside a single frame shows up in both.
type Input interface {
	Scan()

	// Down is the mask of controls pressed since the previous Scan
	Down() Button

	// Held is the mask of controls currently held
	Held() Button

	// Up is the mask of controls released since the previous Scan
	Up() Button

	Touch() TouchPosition
	Circle() CirclePosition
}

// TickCounter is the console's monotonic hardware tick counter.
type TickCounter interface {
	// Ticks reads the current tick count. Strictly non-decreasing
	Ticks() uint64

	// TicksPerSecond is the fixed rate of the counter
	TicksPerSecond() uint64
}

// TextEntryCapacity is the maximum number of bytes of text returned by a
// TextEntry implementation. Text beyond the capacity is truncated by the
// applet before the backend ever sees it. Implementations that have no
// real applet to lean on must enforce the truncation themselves.
const TextEntryCapacity = 31

// TextEntry is the modal text-entry applet. Input() blocks the calling
// goroutine entirely until the user confirms or cancels; the applet owns
// its own UI and event loop for the duration. There is no cancellation or
// timeout from this side.
type TextEntry interface {
	// Input opens the applet seeded with the initial text. password
	// enables masked entry. The returned flag is true only if the user
	// confirmed; the returned text is valid only in that case
	Input(initial string, password bool) (string, bool)
}
