// This file is part of Gopherflash.
//
// Gopherflash is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherflash is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherflash.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopherflash"

// number is set with the linker for release builds:
//
//	go build -ldflags "-X github.com/jetsetilly/gopherflash/version.number=v0.1.0"
var number string

// the version and revision strings are decided once by init()
var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// The version is "unreleased" if the program was built from a repository
// without a version number and "local" if there is no version control
// information at all. The revision is suffixed with "+dirty" if the
// repository had uncommitted changes.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version in a form suitable for a
// banner.
func String() string {
	if number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, version)
}

func init() {
	version = number
	revision = "no revision information"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		if version == "" {
			version = "local"
		}
		return
	}

	vcs := make(map[string]string)
	for _, s := range info.Settings {
		vcs[s.Key] = s.Value
	}

	if r := vcs["vcs.revision"]; r != "" {
		revision = r
		if vcs["vcs.modified"] == "true" {
			revision += "+dirty"
		}
	}

	if version == "" {
		if _, ok := vcs["vcs"]; ok {
			version = "unreleased"
		} else {
			version = "local"
		}
	}
}
