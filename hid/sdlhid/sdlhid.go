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
	"fmt"
	"runtime"

	"github.com/mossvale/ctrimgui/hid"
	"github.com/mossvale/ctrimgui/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "ctrimgui"

// geometry of the combined virtual display surface. the upper screen
// occupies the top half and the touch panel is centered in the bottom
// half, matching the offsets in backend.DefaultConfig().
const (
	surfaceW = 400
	surfaceH = 480
	panelW   = 320
	panelH   = 240
	panelX   = 40
	panelY   = 240
)

// keyTable maps SDL scancodes onto the console's buttons.
var keyTable = map[sdl.Scancode]hid.Button{
	sdl.SCANCODE_X:      hid.ButtonA,
	sdl.SCANCODE_Z:      hid.ButtonB,
	sdl.SCANCODE_S:      hid.ButtonX,
	sdl.SCANCODE_A:      hid.ButtonY,
	sdl.SCANCODE_Q:      hid.ButtonL,
	sdl.SCANCODE_W:      hid.ButtonR,
	sdl.SCANCODE_E:      hid.ButtonZL,
	sdl.SCANCODE_R:      hid.ButtonZR,
	sdl.SCANCODE_UP:     hid.ButtonDUp,
	sdl.SCANCODE_RIGHT:  hid.ButtonDRight,
	sdl.SCANCODE_DOWN:   hid.ButtonDDown,
	sdl.SCANCODE_LEFT:   hid.ButtonDLeft,
	sdl.SCANCODE_RETURN: hid.ButtonStart,
	sdl.SCANCODE_RSHIFT: hid.ButtonSelect,
}

// Input implements hid.Input on SDL. It owns the SDL window for the
// lifetime of the simulator.
type Input struct {
	window *sdl.Window
	pad    *sdl.GameController

	// mask of buttons held according to SDL key events. the touch bit is
	// folded in during Scan()
	keys hid.Button

	// the latched per-frame snapshot
	held   hid.Button
	down   hid.Button
	up     hid.Button
	touch  hid.TouchPosition
	circle hid.CirclePosition

	quit bool
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() (*Input, error) {
	// the SDL package calls LockOSThread() but we call it here too. it
	// can't hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, fmt.Errorf("sdlhid: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf("sdlhid", "sdl version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	inp := &Input{}

	inp.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		surfaceW, surfaceH, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlhid: %w", err)
	}

	// the first attached game controller stands in for the circle pad
	for i := 0; i < sdl.NumJoysticks(); i++ {
		pad := sdl.GameControllerOpen(i)
		if pad.Attached() {
			logger.Logf("sdlhid", "gamepad: %s", pad.Joystick().Name())
			inp.pad = pad
			break
		}
	}
	if inp.pad == nil {
		logger.Log("sdlhid", "no gamepads found. circle pad will read as centered")
	}

	return inp, nil
}

// Destroy cleans up the resources.
func (inp *Input) Destroy() error {
	if inp.pad != nil {
		inp.pad.Close()
		inp.pad = nil
	}
	if inp.window != nil {
		err := inp.window.Destroy()
		if err != nil {
			return fmt.Errorf("sdlhid: %w", err)
		}
		inp.window = nil
	}
	sdl.Quit()
	return nil
}

// Quit returns true once the user has asked to close the window.
func (inp *Input) Quit() bool {
	return inp.quit
}

// Scan implements the hid.Input interface. Unlike the real HID service,
// which latches edges in hardware, the simulator derives the down/up
// masks by comparing against the previously latched state. A press and
// release that both happen between two Scan() calls therefore collapse to
// nothing, which is acceptable for a desktop simulator.
func (inp *Input) Scan() {
	prev := inp.held

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			inp.quit = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			b, ok := keyTable[ev.Keysym.Scancode]
			if !ok {
				continue
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				inp.keys |= b
			case sdl.KEYUP:
				inp.keys &^= b
			}
		}
	}

	held := inp.keys

	// mouse held inside the panel rectangle acts as the digitizer
	x, y, state := sdl.GetMouseState()
	if state&sdl.Button(sdl.BUTTON_LEFT) != 0 &&
		x >= panelX && x < panelX+panelW && y >= panelY && y < panelY+panelH {
		held |= hid.ButtonTouch
		inp.touch = hid.TouchPosition{X: uint16(x - panelX), Y: uint16(y - panelY)}
	}

	inp.held = held
	inp.down = held &^ prev
	inp.up = prev &^ held

	inp.circle = hid.CirclePosition{}
	if inp.pad != nil {
		// SDL reports the Y axis positive downwards, the circle pad
		// positive upwards
		inp.circle.DX = scaleAxis(inp.pad.Axis(0))
		inp.circle.DY = -scaleAxis(inp.pad.Axis(1))
	}
}

// scaleAxis converts an SDL axis reading to circle pad displacement.
func scaleAxis(v int16) int16 {
	return int16(int32(v) * hid.CircleFullScale / 32767)
}

// Down implements the hid.Input interface.
func (inp *Input) Down() hid.Button {
	return inp.down
}

// Held implements the hid.Input interface.
func (inp *Input) Held() hid.Button {
	return inp.held
}

// Up implements the hid.Input interface.
func (inp *Input) Up() hid.Button {
	return inp.up
}

// Touch implements the hid.Input interface.
func (inp *Input) Touch() hid.TouchPosition {
	return inp.touch
}

// Circle implements the hid.Input interface.
func (inp *Input) Circle() hid.CirclePosition {
	return inp.circle
}
