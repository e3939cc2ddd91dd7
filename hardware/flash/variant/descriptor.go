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

package variant

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/jetsetilly/gopherflash/curated"
)

// Granularity is the size of the sectors erased by the AMD style sector erase
// command.
type Granularity int

// List of valid Granularity values. GranularityNone behaves the same as
// Uniform64K.
const (
	GranularityNone Granularity = iota
	Uniform4K
	Uniform16K
	Uniform64K

	// 64K sectors except for the top 64K of the chip, which is divided into a
	// 32K sector, two 8K sectors and a 16K sector
	TopBootMixed
)

func (g Granularity) String() string {
	switch g {
	case GranularityNone:
		return "none"
	case Uniform4K:
		return "4K"
	case Uniform16K:
		return "16K"
	case Uniform64K:
		return "64K"
	case TopBootMixed:
		return "top boot"
	}
	return "unknown"
}

// BlockErase is the layout of blocks erased by the Intel style block erase
// command (0x20 followed by 0xd0).
type BlockErase int

// List of valid BlockErase values.
const (
	// every block is 64K and takes one second to erase
	BlockUniform64K BlockErase = iota

	// 256 byte blocks taking 4ms to erase
	BlockMicro256

	// 16K boot block, two 8K parameter blocks, a 96K main block and 128K
	// main blocks. boot and parameter blocks take 300ms, main blocks 600ms
	BlockBootParamMain
)

func (b BlockErase) String() string {
	switch b {
	case BlockUniform64K:
		return "64K"
	case BlockMicro256:
		return "256 byte"
	case BlockBootParamMain:
		return "boot/parameter/main"
	}
	return "unknown"
}

// Descriptor records the static properties of a flash chip. A descriptor
// should be treated as immutable once it has been passed to a device.
type Descriptor struct {
	// short name used for lookups. lower case, eg. "amd_29f040"
	Name string

	// human readable description
	Description string

	// total size of the chip in bytes
	Size int

	// bus width in bits. either 8 or 16
	Width int

	MakerID  uint8
	DeviceID uint16

	Granularity Granularity

	// the Atmel page programming sequence. PageSize is the number of units
	// written before the device returns to the normal mode
	PageProgram bool
	PageSize    int

	// some chips ignore address bits when matching unlock addresses. zero
	// means that all bits are compared
	AddressMask uint32

	// the chip has no status polling phase after a program operation
	NoStatusPoll bool

	// the layout of blocks for the block erase command
	BlockErase BlockErase

	// the 0xb0 command selects a 64K bank
	BankSelect bool

	// the distance between the maker ID, device ID and lock bytes in the
	// Intel and AMD ID modes. zero is treated as one
	IntelIDStride int
	AMDIDStride   int
}

func (d Descriptor) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %dK %d-bit maker=%02x device=%04x", d.Name, d.Size/1024, d.Width, d.MakerID, d.DeviceID))
	s.WriteString(fmt.Sprintf(" sectors=%s", d.Granularity))
	if d.PageProgram {
		s.WriteString(fmt.Sprintf(" page=%d", d.PageSize))
	}
	if d.AddressMask != 0 {
		s.WriteString(fmt.Sprintf(" mask=%04x", d.AddressMask))
	}
	if d.BankSelect {
		s.WriteString(" banked")
	}
	return s.String()
}

// Sentinal errors returned by Validate().
const (
	InvalidWidth = "variant: %s: invalid bus width (%d)"
	InvalidSize  = "variant: %s: invalid size (%#x)"
	InvalidPage  = "variant: %s: invalid page size (%d)"
)

// MinSize is the smallest chip supported. Bank selection and sector
// resolution both assume at least one 64K region.
const MinSize = 0x10000

// Validate checks that the descriptor is usable.
func (d Descriptor) Validate() error {
	if d.Width != 8 && d.Width != 16 {
		return curated.Errorf(InvalidWidth, d.Name, d.Width)
	}
	if d.Size < MinSize || bits.OnesCount(uint(d.Size)) != 1 {
		return curated.Errorf(InvalidSize, d.Name, d.Size)
	}
	if d.PageProgram && (d.PageSize <= 0 || d.PageSize > d.Size) {
		return curated.Errorf(InvalidPage, d.Name, d.PageSize)
	}
	return nil
}

// IDStride returns the stride for the Intel (intel == true) or AMD ID mode.
func (d Descriptor) IDStride(intel bool) uint32 {
	s := d.AMDIDStride
	if intel {
		s = d.IntelIDStride
	}
	if s <= 0 {
		return 1
	}
	return uint32(s)
}
