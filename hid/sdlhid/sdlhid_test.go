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
	"strings"
	"testing"

	"github.com/mossvale/ctrimgui/hid"
	"github.com/mossvale/ctrimgui/test"
)

func TestTruncate(t *testing.T) {
	// short text passes through untouched
	test.Equate(t, Truncate(""), "")
	test.Equate(t, Truncate("Hi"), "Hi")

	// text at the capacity limit passes through
	limit := strings.Repeat("a", hid.TextEntryCapacity)
	test.Equate(t, Truncate(limit), limit)

	// over-long text is cut at the capacity
	test.Equate(t, Truncate(limit+"bcd"), limit)

	// a multi-byte rune straddling the capacity boundary is dropped
	// entirely rather than left as a partial sequence
	padded := strings.Repeat("a", hid.TextEntryCapacity-1) + "é"
	got := Truncate(padded)
	test.Equate(t, got, strings.Repeat("a", hid.TextEntryCapacity-1))
}

func TestScaleAxis(t *testing.T) {
	test.Equate(t, int(scaleAxis(0)), 0)
	test.Equate(t, int(scaleAxis(32767)), hid.CircleFullScale)

	// negative full deflection may overshoot by one unit because of the
	// asymmetric int16 range
	test.Equate(t, int(scaleAxis(-32768)) <= -hid.CircleFullScale, true)
	test.Equate(t, int(scaleAxis(-32768)) >= -hid.CircleFullScale-1, true)

	// half deflection lands at half scale
	half := int(scaleAxis(16384))
	test.Equate(t, half == hid.CircleFullScale/2, true)
}
