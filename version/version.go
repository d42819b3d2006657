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

package version

import (
	"runtime/debug"
)

// The name to use when referring to the project
const ProjectName = "ctrimgui"

// if number is empty then the project was probably not built using the makefile
var number string

// revision contains the vcs revision. if the source has been modified but not
// committed the string is suffixed with "+dirty"
var revision string

// version contains the current version number of the project. "unreleased"
// means the project was built manually (ie. not with the makefile). "local"
// means there is no version number and no vcs information, which can happen
// when compiling/running with "go run ."
var version string

// Version returns the version string, the revision string and whether this is
// a numbered "release" version
func Version() (string, string, bool) {
	return version, revision, version == number
}

func init() {
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision += "+dirty"
		}
	}

	if number == "" {
		if vcsRevision == "" {
			version = "local"
		} else {
			version = "unreleased"
		}
	} else {
		version = number
	}
}
