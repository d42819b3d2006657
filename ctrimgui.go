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

// ctrimgui is the input half of a Dear ImGui platform backend for the
// console. This binary exercises the backend on a desktop machine using
// the sdlhid simulator; there is no rendering of the GUI draw data, the
// point is to drive the input translation end to end.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/mossvale/ctrimgui/backend"
	"github.com/mossvale/ctrimgui/hid/sdlhid"
	"github.com/mossvale/ctrimgui/logger"
	"github.com/mossvale/ctrimgui/statsview"
	"github.com/mossvale/ctrimgui/version"
)

// the simulated display surface presented to imgui.
const (
	displayW = 400.0
	displayH = 480.0
)

func main() {
	echoLog := flag.Bool("log", false, "echo log entries to stderr as they arrive")
	stats := flag.Bool("statsview", false, "run stats server (requires the statsview build constraint)")
	numFrames := flag.Int("frames", 0, "run for a fixed number of frames (0 = until the window is closed)")
	flag.Parse()

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	vrs, rev, _ := version.Version()
	logger.Logf("ctrimgui", "version %s (%s)", vrs, rev)

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("statsview is not available in this build")
		}
	}

	if err := run(*numFrames); err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}
}

func run(numFrames int) error {
	context := imgui.CreateContext(nil)
	defer context.Destroy()

	io := imgui.CurrentIO()
	io.SetIniFilename("")

	iio := backend.NewImguiIO()

	inp, err := sdlhid.NewInput()
	if err != nil {
		return err
	}
	defer inp.Destroy()

	bck := backend.NewBackend(iio, inp, sdlhid.NewTextEntry(), sdlhid.Ticks{}, backend.DefaultConfig())

	// build the font atlas. with a real renderer this happens as part of
	// the font texture upload
	_ = io.Fonts().TextureDataAlpha8()
	iio.NotifyFontAtlasBuilt()

	// interrupt signal is the same as closing the window
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// tick over at roughly the console's display rate
	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()

	for fr := 0; numFrames == 0 || fr < numFrames; fr++ {
		select {
		case <-intChan:
			return nil
		case <-tick.C:
		}

		if inp.Quit() {
			return nil
		}

		// input side of the frame must complete before the GUI layer's
		// own frame begins
		bck.NewFrame()

		io.SetDisplaySize(imgui.Vec2{X: displayW, Y: displayH})
		imgui.NewFrame()
		imgui.Render()
	}

	return nil
}
