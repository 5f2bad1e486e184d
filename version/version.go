// This file is part of EE.
//
// EE is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// EE is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with EE.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/d100/ee/version.number=v0.1.0"
//
// Without a version number the revision is taken from the VCS information
// embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the program in window titles
// and messages.
const ApplicationName = "EE"

// set by the linker. empty for builds that didn't use -ldflags
var number string

// String returns the version string, with the VCS revision if available.
func String() string {
	return describe(number, readBuildInfo())
}

func readBuildInfo() map[string]string {
	settings := make(map[string]string)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}
	return settings
}

func describe(number string, settings map[string]string) string {
	revision := settings["vcs.revision"]
	if revision != "" && settings["vcs.modified"] == "true" {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	v := number
	if v == "" {
		if _, ok := settings["vcs"]; ok {
			v = "unreleased"
		} else {
			v = "local"
		}
	}

	if revision == "" {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, revision)
}
