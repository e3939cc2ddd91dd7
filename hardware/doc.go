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

// Package hardware is the base of the flash emulation. It contains no code
// itself; the sub-packages contain everything required for a headless
// emulation of a parallel NOR flash chip.
//
// The flash package is the device and its command state machine. The chips
// it can emulate are described by the flash/variant package and the bytes of
// the chip are held by the flash/storage package. Time is provided by the
// future package, which the device uses to schedule the completion of erase
// operations. The preferences package holds the preferences that affect the
// emulation.
package hardware
