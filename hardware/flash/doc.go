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

// Package flash emulates parallel NOR flash chips. The Device type accepts
// reads and writes in the same way as a real chip: writes are either data or a
// step in one of the command sequences understood by the chip and reads return
// either the contents of the flash or information about the chip, depending on
// the current mode.
//
// The chip being emulated is described by a variant.Descriptor. Intel style
// commands (single byte commands written to any address) and AMD/Fujitsu style
// commands (unlock sequences written to specific addresses) are both accepted
// by every variant.
//
// Operations that take time on a real chip, erasing in particular, are
// completed by an event on the future.Scheduler supplied to NewDevice(). Until
// the event has completed reads of the erasing region return a status value
// with toggling bits.
//
// Hosts normally access a device through the Bus8 or Bus16 adapters, which
// check that the width of the device matches the width of the bus.
//
//	tck := future.NewTicker("flash")
//	dev, err := flash.NewDevice(env, desc, tck)
//	bus, err := flash.NewBus8(dev)
//
//	bus.Write(0x555, 0xaa)
//	bus.Write(0x2aa, 0x55)
//	bus.Write(0x555, 0xa0)
//	bus.Write(0x1000, 0x42)
//
// Peek() and Poke() bypass the command logic entirely and are intended for
// hosts that alias the flash memory directly.
package flash
