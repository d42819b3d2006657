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

// buttonTable maps physical buttons onto logical gamepad keys. Defined
// once, read-only. Both shoulder pairs alias onto the single logical
// shoulder key of each side.
var buttonTable = []struct {
	button hid.Button
	key    Key
}{
	{hid.ButtonA, KeyGamepadFaceDown},  // A and B are swapped,
	{hid.ButtonB, KeyGamepadFaceRight}, // this is more intuitive
	{hid.ButtonX, KeyGamepadFaceUp},
	{hid.ButtonY, KeyGamepadFaceLeft},
	{hid.ButtonL, KeyGamepadL1},
	{hid.ButtonZL, KeyGamepadL1},
	{hid.ButtonZR, KeyGamepadR1},
	{hid.ButtonR, KeyGamepadR1},
	{hid.ButtonDUp, KeyGamepadDpadUp},
	{hid.ButtonDRight, KeyGamepadDpadRight},
	{hid.ButtonDDown, KeyGamepadDpadDown},
	{hid.ButtonDLeft, KeyGamepadDpadLeft},
}

// analogTable defines the four stick directions. low is the displacement
// (as a fraction of full scale) where the digital press begins and high is
// where the magnitude saturates to 1.0. Sign selects the direction along
// the axis.
var analogTable = []struct {
	axis func(hid.CirclePosition) int16
	key  Key
	low  float32
	high float32
}{
	{func(c hid.CirclePosition) int16 { return c.DX }, KeyGamepadLStickLeft, -0.3, -0.9},
	{func(c hid.CirclePosition) int16 { return c.DX }, KeyGamepadLStickRight, +0.3, +0.9},
	{func(c hid.CirclePosition) int16 { return c.DY }, KeyGamepadLStickUp, +0.3, +0.9},
	{func(c hid.CirclePosition) int16 { return c.DY }, KeyGamepadLStickDown, -0.3, -0.9},
}

// magnitude above which an analog direction also counts as digitally
// pressed
const analogPressThreshold = 0.1

// updateGamepad translates the button masks and the circle pad into key
// and analog-key events.
//
// Every table entry emits independently. If two physical buttons aliasing
// the same logical key fire in the same frame the GUI layer sees both
// events; de-duplication of key state is its concern, not ours.
func (bck *Backend) updateGamepad() {
	up := bck.input.Up()
	down := bck.input.Down()
	for _, m := range buttonTable {
		if up&m.button != 0 {
			bck.io.AddKeyEvent(m.key, false)
		}
		if down&m.button != 0 {
			bck.io.AddKeyEvent(m.key, true)
		}
	}

	// one circle pad read for all four directions
	circle := bck.input.Circle()
	for _, m := range analogTable {
		value := (float32(m.axis(circle))/hid.CircleFullScale - m.low) / (m.high - m.low)
		if value < 0.0 {
			value = 0.0
		} else if value > 1.0 {
			value = 1.0
		}
		bck.io.AddKeyAnalogEvent(m.key, value > analogPressThreshold, value)
	}
}
