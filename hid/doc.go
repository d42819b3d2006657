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

// Package hid defines the input services of the console as seen by the
// backend package: the per-frame button/touch/circle-pad snapshot, the
// monotonic tick counter and the modal text-entry applet.
//
// The package only defines types and interfaces. Concrete implementations
// bind to the console's HID service on real hardware, or to the sdlhid
// package on the desktop.
package hid
