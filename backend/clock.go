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

// TimePoint is a timestamp expressed in hardware ticks. TimePoints from
// different Clock instances are not comparable.
type TimePoint uint64

// Clock converts the console's tick counter into TimePoints and durations.
// The zero value is not usable; create with NewClock().
type Clock struct {
	counter hid.TickCounter
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock(counter hid.TickCounter) Clock {
	return Clock{counter: counter}
}

// Now reads the tick counter. Non-decreasing across reads for the lifetime
// of the process.
func (clk Clock) Now() TimePoint {
	return TimePoint(clk.counter.Ticks())
}

// Seconds returns the duration between two TimePoints in seconds. The
// subtraction happens in integer ticks and the division by the tick rate
// happens exactly once, so the counter's sub-second resolution survives
// the conversion.
func (clk Clock) Seconds(from TimePoint, to TimePoint) float64 {
	return float64(to-from) / float64(clk.counter.TicksPerSecond())
}
