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

//go:build windows

package easyterm

import (
	"os"
)

// Geometry contains the dimensions of a terminal in characters.
type Geometry struct {
	Rows int
	Cols int
}

// Terminal is not supported on windows. All functions are no-ops.
type Terminal struct{}

// IsTerminal always returns false on windows.
func IsTerminal(_ *os.File) bool {
	return false
}

// Initialise does nothing on windows.
func (pt *Terminal) Initialise(_, _ *os.File) error {
	return nil
}

// CleanUp does nothing on windows.
func (pt *Terminal) CleanUp() {}

// UpdateGeometry does nothing on windows.
func (pt *Terminal) UpdateGeometry() error {
	return nil
}

// Geometry returns the zero value on windows.
func (pt *Terminal) Geometry() Geometry {
	return Geometry{}
}

// CanonicalMode does nothing on windows.
func (pt *Terminal) CanonicalMode() {}

// CBreakMode does nothing on windows.
func (pt *Terminal) CBreakMode() {}

// Flush does nothing on windows.
func (pt *Terminal) Flush() error {
	return nil
}
