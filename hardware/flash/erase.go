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
	"time"

	"github.com/jetsetilly/gopherflash/hardware/flash/storage"
	"github.com/jetsetilly/gopherflash/hardware/flash/variant"
)

// region is an area of the flash to be erased and the time it takes for the
// erase to complete.
type region struct {
	base     uint32
	size     int
	duration time.Duration
}

func newRegion(address uint32, size int, duration time.Duration) region {
	return region{
		base:     address &^ uint32(size-1),
		size:     size,
		duration: duration,
	}
}

// chipEraseDuration is the time taken to erase the entire chip.
func chipEraseDuration(g variant.Granularity) time.Duration {
	switch g {
	case variant.Uniform4K:
		return time.Second
	case variant.Uniform16K:
		return 4 * time.Second
	}
	return 16 * time.Second
}

// sectorRegion resolves the sector containing the unit address.
func (d *Device) sectorRegion(address uint32) region {
	b := d.byteAddress(address)

	switch d.desc.Granularity {
	case variant.Uniform4K:
		return newRegion(b, 0x1000, 125*time.Millisecond)
	case variant.Uniform16K:
		return newRegion(b, 0x4000, 500*time.Millisecond)
	case variant.TopBootMixed:
		top := uint32(d.desc.Size)
		if b >= top-0x10000 {
			switch {
			case b >= top-0x4000:
				return newRegion(b, 0x4000, 500*time.Millisecond)
			case b >= top-0x8000:
				return newRegion(b, 0x2000, 250*time.Millisecond)
			default:
				return newRegion(b, 0x8000, 500*time.Millisecond)
			}
		}
	}

	return newRegion(b, 0x10000, time.Second)
}

// blockRegion resolves the block containing the unit address.
func (d *Device) blockRegion(address uint32) region {
	b := d.byteAddress(address)

	switch d.desc.BlockErase {
	case variant.BlockMicro256:
		return newRegion(b, 0x100, 4*time.Millisecond)

	case variant.BlockBootParamMain:
		// 16K boot block, two 8K parameter blocks, a 96K main block and then
		// 128K main blocks
		switch {
		case b < 0x4000:
			return region{base: 0, size: 0x4000, duration: 300 * time.Millisecond}
		case b < 0x8000:
			return region{base: b & 0x6000, size: 0x2000, duration: 300 * time.Millisecond}
		case b < 0x20000:
			return region{base: 0x8000, size: 0x18000, duration: 600 * time.Millisecond}
		}
		return newRegion(b, 0x20000, 600*time.Millisecond)
	}

	return newRegion(b, 0x10000, time.Second)
}

func (d *Device) chipErase() {
	d.buf.Fill(storage.Erased)
	d.eraseBase = 0
	d.eraseSize = d.buf.Size()
	d.status = statusErasing
	d.mode = EraseAMD4
	d.arm(chipEraseDuration(d.desc.Granularity), (*Device).finaliseErase, "chip erase")
}

func (d *Device) sectorErase(address uint32) {
	r := d.sectorRegion(address)
	d.buf.FillRange(r.base, r.size, storage.Erased)
	d.eraseBase = r.base
	d.eraseSize = r.size
	d.status = statusErasing
	d.mode = EraseAMD4
	d.arm(r.duration, (*Device).finaliseErase, "sector erase")
}

func (d *Device) blockErase(address uint32) {
	r := d.blockRegion(address)
	d.buf.FillRange(r.base, r.size, storage.Erased)
	d.status = statusBlock
	d.mode = ReadStatus
	d.arm(r.duration, (*Device).finaliseStatus, "block erase")
}

// payload for the chip and sector erase events
func (d *Device) finaliseErase() {
	if d.mode == EraseAMD4 {
		d.mode = Normal
	}
}

// payload for the block erase event
func (d *Device) finaliseStatus() {
	if d.mode == ReadStatus {
		d.status = statusReady
	}
}

// inErase returns true if the byte address is inside the region being erased
func (d *Device) inErase(b uint32) bool {
	return b >= d.eraseBase && b < d.eraseBase+uint32(d.eraseSize)
}
