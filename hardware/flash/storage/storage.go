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

// Package storage implements the byte array at the heart of a flash device.
//
// The Buffer type is protocol agnostic. It has no knowledge of the commands
// accepted by a flash chip and is written to only by the command state machine
// or by the bulk loading functions. Peek() and Poke() are available for hosts
// that need to alias the flash memory directly.
package storage

import (
	"encoding/binary"
	"io"
	"slices"

	"github.com/jetsetilly/gopherflash/curated"
)

// Erased is the value of every byte in an erased flash chip.
const Erased = 0xff

// Sentinal errors for Load() and Save().
const (
	ShortLoad = "storage: short load (%d of %d bytes)"
	LoadError = "storage: load: %v"
	SaveError = "storage: save: %v"
)

// Buffer is the non-volatile memory of a flash device.
type Buffer struct {
	// amend data only through Poke(), Fill() and the load functions
	data []uint8

	// the data as it was at the most recent Load() or Save(). used to decide
	// whether the buffer needs saving
	saved []uint8
}

// NewBuffer is the preferred method of initialisation for the Buffer type. The
// buffer is initialised to the erased state.
func NewBuffer(size int) *Buffer {
	b := &Buffer{
		data:  make([]uint8, size),
		saved: make([]uint8, size),
	}
	b.Fill(Erased)
	copy(b.saved, b.data)
	return b
}

// Snapshot creates a copy of the buffer.
func (b *Buffer) Snapshot() *Buffer {
	return &Buffer{
		data:  slices.Clone(b.data),
		saved: slices.Clone(b.saved),
	}
}

// Size of the buffer in bytes.
func (b *Buffer) Size() int {
	return len(b.data)
}

// Peek returns the byte at the address. The address wraps at the size of the
// buffer.
func (b *Buffer) Peek(address uint32) uint8 {
	return b.data[b.wrap(address)]
}

// Poke sets the byte at the address. The address wraps at the size of the
// buffer.
func (b *Buffer) Poke(address uint32, data uint8) {
	b.data[b.wrap(address)] = data
}

// buffer sizes are always a power of two so wrapping is a simple mask. a
// buffer of any other size uses the slower modulo
func (b *Buffer) wrap(address uint32) uint32 {
	l := uint32(len(b.data))
	if l&(l-1) == 0 {
		return address & (l - 1)
	}
	return address % l
}

// Fill the entire buffer with the value.
func (b *Buffer) Fill(v uint8) {
	for i := range b.data {
		b.data[i] = v
	}
}

// FillRange fills size bytes starting at base with the value. The range is
// clipped to the end of the buffer.
func (b *Buffer) FillRange(base uint32, size int, v uint8) {
	base = b.wrap(base)
	end := int(base) + size
	if end > len(b.data) {
		end = len(b.data)
	}
	for i := int(base); i < end; i++ {
		b.data[i] = v
	}
}

// IsErased returns true if size bytes starting at base are all in the erased
// state.
func (b *Buffer) IsErased(base uint32, size int) bool {
	base = b.wrap(base)
	end := int(base) + size
	if end > len(b.data) {
		end = len(b.data)
	}
	for _, v := range b.data[base:end] {
		if v != Erased {
			return false
		}
	}
	return true
}

// PopulateDefault initialises the buffer from the source bytes. No more than
// Size() bytes are copied and any remainder is set to the erased value. A nil
// or empty source leaves the entire buffer erased.
//
// If wordWidth is true then the source is treated as a sequence of
// little-endian 16-bit words, which are stored as big-endian byte pairs. In
// this case an odd trailing byte in the source is ignored.
func (b *Buffer) PopulateDefault(source []uint8, wordWidth bool) {
	n := min(len(b.data), len(source))

	if wordWidth {
		n &^= 1
		for i := 0; i < n; i += 2 {
			binary.BigEndian.PutUint16(b.data[i:], binary.LittleEndian.Uint16(source[i:]))
		}
	} else {
		copy(b.data, source[:n])
	}

	for i := n; i < len(b.data); i++ {
		b.data[i] = Erased
	}
}

// Load the entire buffer from the io.Reader. There is no header and the data
// must be exactly Size() bytes long. On error the buffer is left unchanged.
func (b *Buffer) Load(r io.Reader) error {
	d := make([]uint8, len(b.data))
	n, err := io.ReadFull(r, d)
	if err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return curated.Errorf(ShortLoad, n, len(b.data))
		}
		return curated.Errorf(LoadError, err)
	}
	copy(b.data, d)
	copy(b.saved, d)
	return nil
}

// Save the entire buffer to the io.Writer.
func (b *Buffer) Save(w io.Writer) error {
	n, err := w.Write(b.data)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}
	if n != len(b.data) {
		return curated.Errorf(SaveError, io.ErrShortWrite)
	}
	copy(b.saved, b.data)
	return nil
}

// IsSaved returns true if the buffer has not changed since the most recent
// Load() or Save().
func (b *Buffer) IsSaved() bool {
	return slices.Equal(b.data, b.saved)
}

// Bytes returns a copy of the buffer contents.
func (b *Buffer) Bytes() []uint8 {
	return slices.Clone(b.data)
}
