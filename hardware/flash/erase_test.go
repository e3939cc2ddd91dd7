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

package flash_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherflash/hardware/flash"
	"github.com/jetsetilly/gopherflash/test"
)

// expectErased checks that the region has been erased and that the bytes
// either side of the region have not
func expectErased(t *testing.T, dev *flash.Device, base uint32, size int) {
	t.Helper()
	end := base + uint32(size)
	if base > 0 {
		test.ExpectEquality(t, dev.Peek(base-1), uint8(0), "before", base)
	}
	for a := base; a < end; a++ {
		if dev.Peek(a) != 0xff {
			t.Errorf("%#x is not erased", a)
			return
		}
	}
	if int(end) < dev.Descriptor().Size {
		test.ExpectEquality(t, dev.Peek(end), uint8(0), "after", end)
	}
}

func TestSectorErase(t *testing.T) {
	dev, tck := newDevice(t, "amd_29f040")
	dev.Fill(0x00)

	sequence(dev, amdErase, []write{{0x12345, 0x30}})
	test.ExpectEquality(t, dev.Mode(), flash.EraseAMD4)
	test.ExpectEquality(t, dev.Status(), uint8(0x08))
	expectErased(t, dev, 0x10000, 0x10000)

	base, size := dev.EraseRegion()
	test.ExpectEquality(t, base, uint32(0x10000))
	test.ExpectEquality(t, size, 0x10000)

	// the toggle bits flip on every read inside the region
	test.ExpectEquality(t, dev.Read(0x12345), uint16(0x4c))
	test.ExpectEquality(t, dev.Read(0x10000), uint16(0x08))
	test.ExpectEquality(t, dev.Read(0x1ffff), uint16(0x4c))

	// reads outside the region are normal
	test.ExpectEquality(t, dev.Read(0x20000), uint16(0x00))

	tck.Advance(999 * time.Millisecond)
	test.ExpectEquality(t, dev.Mode(), flash.EraseAMD4)
	tck.Advance(time.Millisecond)
	test.ExpectEquality(t, dev.Mode(), flash.Normal)
	test.ExpectEquality(t, dev.Read(0x12345), uint16(0xff))
	test.ExpectFailure(t, dev.Busy())
}

func TestSectorEraseGranularity(t *testing.T) {
	tests := []struct {
		name     string
		address  uint32
		base     uint32
		size     int
		duration time.Duration
	}{
		{name: "sst_39vf020", address: 0x1234, base: 0x1000, size: 0x1000, duration: 125 * time.Millisecond},
		{name: "macronix_29lv160tmc", address: 0x5678, base: 0x4000, size: 0x4000, duration: 500 * time.Millisecond},
		{name: "amd_29f010", address: 0x1abcd, base: 0x10000, size: 0x10000, duration: time.Second},

		// top boot sectors
		{name: "amd_29f400t", address: 0x7d123, base: 0x7c000, size: 0x4000, duration: 500 * time.Millisecond},
		{name: "amd_29f400t", address: 0x7a123, base: 0x7a000, size: 0x2000, duration: 250 * time.Millisecond},
		{name: "amd_29f400t", address: 0x78000, base: 0x78000, size: 0x2000, duration: 250 * time.Millisecond},
		{name: "amd_29f400t", address: 0x74567, base: 0x70000, size: 0x8000, duration: 500 * time.Millisecond},
		{name: "amd_29f400t", address: 0x6abcd, base: 0x60000, size: 0x10000, duration: time.Second},

		// 16-bit device. word address 0x1234 is byte address 0x2468
		{name: "sst_39vf400a", address: 0x1234, base: 0x2000, size: 0x1000, duration: 125 * time.Millisecond},
	}

	for _, tt := range tests {
		dev, tck := newDevice(t, tt.name)
		dev.Fill(0x00)

		sequence(dev, amdErase, []write{{tt.address, 0x30}})
		test.ExpectEquality(t, dev.Mode(), flash.EraseAMD4, tt.name, tt.address)
		expectErased(t, dev, tt.base, tt.size)
		test.ExpectEquality(t, dev.Remaining(), tt.duration, tt.name, tt.address)

		tck.Advance(tt.duration)
		test.ExpectEquality(t, dev.Mode(), flash.Normal, tt.name, tt.address)
	}
}

func TestChipErase(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
	}{
		{name: "sst_39vf020", duration: time.Second},
		{name: "atmel_49f4096", duration: 4 * time.Second},
		{name: "amd_29f040", duration: 16 * time.Second},
	}

	for _, tt := range tests {
		dev, tck := newDevice(t, tt.name)
		dev.Fill(0x00)

		sequence(dev, amdErase, []write{{0x555, 0x10}})
		test.ExpectEquality(t, dev.Mode(), flash.EraseAMD4, tt.name)
		test.ExpectEquality(t, dev.Status(), uint8(0x08), tt.name)
		for _, v := range dev.Contents() {
			if v != 0xff {
				t.Fatalf("%s: chip erase incomplete", tt.name)
			}
		}

		// erasing reads toggle everywhere on the chip
		test.ExpectEquality(t, dev.Read(0x100), uint16(0x4c), tt.name)
		test.ExpectEquality(t, dev.Read(0x100), uint16(0x08), tt.name)

		tck.Advance(tt.duration - time.Millisecond)
		test.ExpectEquality(t, dev.Read(0x100), uint16(0x4c), tt.name)
		tck.Advance(time.Millisecond)
		test.ExpectEquality(t, dev.Mode(), flash.Normal, tt.name)
		if dev.Descriptor().Width == 16 {
			test.ExpectEquality(t, dev.Read(0x100), uint16(0xffff), tt.name)
		} else {
			test.ExpectEquality(t, dev.Read(0x100), uint16(0xff), tt.name)
		}
	}
}

func TestBlockErase(t *testing.T) {
	tests := []struct {
		name     string
		address  uint32
		base     uint32
		size     int
		duration time.Duration
	}{
		{name: "intel_e28f008sa", address: 0x12345, base: 0x10000, size: 0x10000, duration: time.Second},
		{name: "sst_28sf040", address: 0x1234, base: 0x1200, size: 0x100, duration: 4 * time.Millisecond},

		// word addresses on a 16-bit boot block device
		{name: "intel_e28f400b", address: 0x1000, base: 0x0000, size: 0x4000, duration: 300 * time.Millisecond},
		{name: "intel_e28f400b", address: 0x3000, base: 0x6000, size: 0x2000, duration: 300 * time.Millisecond},
		{name: "intel_e28f400b", address: 0x5000, base: 0x8000, size: 0x18000, duration: 600 * time.Millisecond},
		{name: "intel_e28f400b", address: 0x2a000, base: 0x40000, size: 0x20000, duration: 600 * time.Millisecond},
	}

	for _, tt := range tests {
		dev, tck := newDevice(t, tt.name)
		dev.Fill(0x00)

		sequence(dev, []write{{tt.address, 0x20}, {tt.address, 0xd0}})
		test.ExpectEquality(t, dev.Mode(), flash.ReadStatus, tt.name, tt.address)
		expectErased(t, dev, tt.base, tt.size)
		test.ExpectEquality(t, dev.Read(0), uint16(0x00), tt.name, tt.address)

		tck.Advance(tt.duration - time.Millisecond)
		test.ExpectEquality(t, dev.Read(0), uint16(0x00), tt.name, tt.address)
		tck.Advance(time.Millisecond)
		test.ExpectEquality(t, dev.Read(0), uint16(0x80), tt.name, tt.address)
	}
}

func TestWriteDuringErase(t *testing.T) {
	dev, tck := newDevice(t, "sst_39vf020")
	sequence(dev, amdErase, []write{{0x1000, 0x30}})

	// a second erase command is ignored and doesn't cancel the erase
	dev.Write(0x3000, 0x30)
	test.ExpectEquality(t, dev.Mode(), flash.EraseAMD4)
	test.ExpectSuccess(t, dev.Busy())
	base, _ := dev.EraseRegion()
	test.ExpectEquality(t, base, uint32(0x1000))

	tck.Advance(125 * time.Millisecond)
	test.ExpectEquality(t, dev.Mode(), flash.Normal)
}

func TestRearm(t *testing.T) {
	dev, tck := newDevice(t, "amd_29f040")

	// a new erase replaces the previous event
	sequence(dev, []write{{0, 0x20}, {0, 0xd0}})
	sequence(dev, []write{{0, 0xff}}, amdErase, []write{{0x20000, 0x30}})
	test.ExpectEquality(t, tck.Pending(), 1)
	test.ExpectEquality(t, dev.Remaining(), time.Second)
}

func TestResetDuringErase(t *testing.T) {
	dev, tck := newDevice(t, "amd_29f040")
	sequence(dev, amdErase, []write{{0x1000, 0x30}})

	dev.Reset()
	test.ExpectEquality(t, dev.Mode(), flash.Normal)
	test.ExpectEquality(t, dev.Status(), uint8(0x80))

	// the event is not cancelled but has no effect when it completes
	test.ExpectEquality(t, tck.Pending(), 1)
	sequence(dev, []write{{0, 0x70}})
	tck.Advance(time.Second)
	test.ExpectEquality(t, dev.Mode(), flash.ReadStatus)
	test.ExpectEquality(t, dev.Status(), uint8(0x80))
	test.ExpectEquality(t, tck.Pending(), 0)
}
