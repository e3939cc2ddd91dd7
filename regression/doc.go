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

// Package regression facilitates the regression testing of the flash
// emulation. A regression entry is a monitor script, the flash chip it is run
// against and the digest of the flash contents that the script produced when
// the entry was added. Running the regression tests repeats every script and
// compares the new digest with the recorded one.
//
// Scripts are copied into the regression directory of the resource path when
// they are added so that later changes to the original file do not affect the
// regression entry.
//
// Each regression is run with the default preferences regardless of the
// preferences file.
package regression
