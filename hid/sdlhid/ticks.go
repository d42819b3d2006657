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

package sdlhid

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Ticks implements hid.TickCounter with SDL's high resolution counter.
// Requires sdl.Init() to have been called, which NewInput() takes care
// of.
type Ticks struct{}

// Ticks implements the hid.TickCounter interface.
func (tck Ticks) Ticks() uint64 {
	return sdl.GetPerformanceCounter()
}

// TicksPerSecond implements the hid.TickCounter interface.
func (tck Ticks) TicksPerSecond() uint64 {
	return sdl.GetPerformanceFrequency()
}
