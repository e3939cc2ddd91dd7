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

package flash

import (
	"encoding/binary"

	"github.com/jetsetilly/gopherflash/curated"
)

// Bus8 connects an 8-bit device to an 8-bit data bus.
type Bus8 struct {
	dev *Device
}

// NewBus8 is the preferred method of initialisation for the Bus8 type. Returns
// an error if the device is not an 8-bit device.
func NewBus8(dev *Device) (*Bus8, error) {
	if dev.desc.Width != 8 {
		return nil, curated.Errorf(WrongWidth, dev.desc.Name, dev.desc.Width, 8)
	}
	return &Bus8{dev: dev}, nil
}

// Device returns the device connected to the bus.
func (b *Bus8) Device() *Device {
	return b.dev
}

// Read the byte at the bus address.
func (b *Bus8) Read(address uint32) uint8 {
	return uint8(b.dev.Read(address))
}

// Write the byte to the bus address.
func (b *Bus8) Write(address uint32, data uint8) {
	b.dev.Write(address, uint16(data))
}

// Peek returns the byte at the address. The command state machine is not
// involved and the bank is not applied.
func (b *Bus8) Peek(address uint32) uint8 {
	return b.dev.Peek(address)
}

// Poke sets the byte at the address. The command state machine is not
// involved and the bank is not applied.
func (b *Bus8) Poke(address uint32, data uint8) {
	b.dev.Poke(address, data)
}

// Bus16 connects a 16-bit device to a 16-bit data bus.
type Bus16 struct {
	dev *Device
}

// NewBus16 is the preferred method of initialisation for the Bus16 type.
// Returns an error if the device is not a 16-bit device.
func NewBus16(dev *Device) (*Bus16, error) {
	if dev.desc.Width != 16 {
		return nil, curated.Errorf(WrongWidth, dev.desc.Name, dev.desc.Width, 16)
	}
	return &Bus16{dev: dev}, nil
}

// Device returns the device connected to the bus.
func (b *Bus16) Device() *Device {
	return b.dev
}

// Read the word at the bus address. Word addresses are half the byte address.
func (b *Bus16) Read(address uint32) uint16 {
	return b.dev.Read(address)
}

// Write the word to the bus address.
func (b *Bus16) Write(address uint32, data uint16) {
	b.dev.Write(address, data)
}

// PeekWord returns the word at the word address. The command state machine is
// not involved and the bank is not applied.
//
// Note that the word is read little-endian, unlike Read() which sees the flash
// contents as big-endian words.
func (b *Bus16) PeekWord(address uint32) uint16 {
	var w [2]uint8
	w[0] = b.dev.Peek(address * 2)
	w[1] = b.dev.Peek(address*2 + 1)
	return binary.LittleEndian.Uint16(w[:])
}

// PokeWord sets the word at the word address. The word is stored
// little-endian. See PeekWord().
func (b *Bus16) PokeWord(address uint32, data uint16) {
	var w [2]uint8
	binary.LittleEndian.PutUint16(w[:], data)
	b.dev.Poke(address*2, w[0])
	b.dev.Poke(address*2+1, w[1])
}
