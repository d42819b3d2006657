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

// Package backend is the input half of the Dear ImGui platform backend for
// the console. Once per frame it converts the raw hardware state (touch
// panel, button matrix, circle pad, on-screen keyboard applet) into the
// normalized event stream consumed by the GUI layer, and computes the
// frame's delta time from the hardware tick counter.
//
// The translators target the IO interface rather than imgui directly. The
// ImguiIO type adapts the interface onto imgui-go; tests use a recording
// sink instead.
//
// Everything in this package runs on a single goroutine, the one driving
// the frame loop. The only blocking point is the modal text-entry applet
// (see hid.TextEntry); every other operation completes within the frame.
package backend
