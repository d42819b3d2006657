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

// Package sdlhid is a desktop stand-in for the console's input services,
// implemented with SDL. It exists so the backend package can run and be
// exercised away from real hardware.
//
// The keyboard supplies the button matrix, the mouse inside the lower
// half of the window acts as the touch panel, the first attached game
// controller's left stick acts as the circle pad and SDL's performance
// counter acts as the hardware tick counter. The modal text-entry applet
// is simulated with a blocking prompt on the controlling terminal.
package sdlhid
