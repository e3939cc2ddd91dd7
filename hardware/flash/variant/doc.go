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

// Package variant describes the silicon models a flash device can emulate.
//
// A Descriptor is an immutable value selected when the device is created. It
// records the geometry of the chip (size, bus width, erase granularity) and
// the identification bytes returned by the ID commands. Behaviour that only
// one or two models exhibit (page programming, bank switching, alternative ID
// layouts) is also recorded in the Descriptor so that the command state
// machine never needs to know which model it is emulating.
//
// The List() function returns all models known to the package and Lookup()
// will find a model by name.
package variant
