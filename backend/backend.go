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

// Config collects the construction-time options for the Backend type.
type Config struct {
	// TouchOffsetX/Y translate raw panel coordinates into the combined
	// virtual display surface. The defaults correct for the stock
	// placement of the lower screen; targets with a different display
	// geometry must re-derive them.
	TouchOffsetX float32
	TouchOffsetY float32
}

// DefaultConfig returns a Config suitable for the stock display geometry.
func DefaultConfig() Config {
	return Config{
		TouchOffsetX: 40.0,
		TouchOffsetY: 240.0,
	}
}

// Backend drives the input side of the GUI layer's frame. All state,
// including the clipboard buffer and the text-input session, lives on the
// Backend value; independent instances do not share anything.
type Backend struct {
	io     IO
	input  hid.Input
	applet hid.TextEntry
	clock  Clock
	conf   Config

	// epoch is established on the first NewFrame() call. prev is updated
	// every call
	started bool
	epoch   TimePoint
	prev    TimePoint

	text      textSession
	clipboard Clipboard
}

// NewBackend is the preferred method of initialisation for the Backend
// type. If the sink implements ClipboardInstaller the backend's clipboard
// buffer is installed during construction.
func NewBackend(io IO, input hid.Input, applet hid.TextEntry, counter hid.TickCounter, conf Config) *Backend {
	bck := &Backend{
		io:     io,
		input:  input,
		applet: applet,
		clock:  NewClock(counter),
		conf:   conf,
	}

	if ci, ok := io.(ClipboardInstaller); ok {
		ci.InstallClipboard(&bck.clipboard)
	}

	return bck
}

// Clipboard returns the clipboard buffer owned by this Backend.
func (bck *Backend) Clipboard() *Clipboard {
	return &bck.clipboard
}

// NewFrame runs the input side of a single frame: delta time first, then
// the touch, gamepad and keyboard translators, in that order. The GUI
// layer's own frame must not begin until NewFrame() has returned or it
// will see stale delta time and events attributed to the wrong frame.
//
// NewFrame panics if the font atlas has not been built. The renderer is
// responsible for building it before the first frame; rendering garbage
// is worse than a clear crash during development.
func (bck *Backend) NewFrame() {
	if !bck.io.FontAtlasBuilt() {
		panic("backend: font atlas not built. it is generally built by the renderer. missing call to the renderer's NewFrame() function?")
	}

	// time step. first call establishes the epoch so the first frame's
	// delta is the near-zero time between the two counter reads
	if !bck.started {
		bck.started = true
		bck.epoch = bck.clock.Now()
		bck.prev = bck.epoch
	}
	now := bck.clock.Now()
	bck.io.SetDeltaTime(float32(bck.clock.Seconds(bck.prev, now)))
	bck.prev = now

	bck.input.Scan()
	bck.updateTouch()
	bck.updateGamepad()
	bck.text.update(bck.io, bck.applet)
}
