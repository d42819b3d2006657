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

// position reported while the panel is untouched. far enough off-surface
// that hover-dependent widgets never trigger
const (
	offSurfaceX = -10.0
	offSurfaceY = -10.0
)

// updateTouch translates the digitizer state into pointer events. Emission
// order while the panel is touched: source tag, move, button-down.
//
// The held and released conditions are read from the hardware edge masks
// every frame, never from this translator's own memory of the previous
// frame. A press and release falling inside a single frame appears in both
// the down and up masks and so is not lost.
func (bck *Backend) updateTouch() {
	if ((bck.input.Held() | bck.input.Down()) & hid.ButtonTouch) != 0 { // touch pressed
		pos := bck.input.Touch()

		// transform to the lower screen's place in the combined display
		// surface
		bck.io.AddMouseSourceEvent(MouseSourceTouchScreen)
		bck.io.AddMousePosEvent(float32(pos.X)+bck.conf.TouchOffsetX, float32(pos.Y)+bck.conf.TouchOffsetY)
		bck.io.AddMouseButtonEvent(0, true)
	} else if (bck.input.Up() & hid.ButtonTouch) != 0 { // touch released
		bck.io.AddMouseButtonEvent(0, false)
	} else { // no touch, park the pointer off-surface
		bck.io.AddMousePosEvent(offSurfaceX, offSurfaceY)
	}
}
