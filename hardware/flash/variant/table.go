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
	"strings"

	"github.com/jetsetilly/gopherflash/curated"
)

// UnknownVariant is returned by Lookup() when the name does not match a known
// chip.
const UnknownVariant = "variant: unknown flash chip (%s)"

// the table is never modified. List() returns a copy
var table = []Descriptor{
	// 8-bit
	{Name: "intel_28f016s5", Description: "Intel 28F016S5", Size: 0x200000, Width: 8, MakerID: MakerIntel, DeviceID: 0xaa},
	{Name: "fujitsu_29f160t", Description: "Fujitsu 29F160T", Size: 0x200000, Width: 8, MakerID: MakerFujitsu, DeviceID: 0xad, Granularity: TopBootMixed},
	{Name: "fujitsu_29f016a", Description: "Fujitsu 29F016A", Size: 0x200000, Width: 8, MakerID: MakerFujitsu, DeviceID: 0xad},
	{Name: "fujitsu_29dl16x", Description: "Fujitsu 29DL16X", Size: 0x200000, Width: 8, MakerID: MakerFujitsu, DeviceID: 0x35, AMDIDStride: 2},
	{Name: "atmel_29c010", Description: "Atmel 29C010", Size: 0x20000, Width: 8, MakerID: MakerAtmel, DeviceID: 0xd5, PageProgram: true, PageSize: 0x80},
	{Name: "amd_29f010", Description: "AMD 29F010", Size: 0x20000, Width: 8, MakerID: MakerAMD, DeviceID: 0x20},
	{Name: "amd_29f040", Description: "AMD 29F040", Size: 0x80000, Width: 8, MakerID: MakerAMD, DeviceID: 0xa4},

	// address bits A11-A19 are don't care
	{Name: "amd_29f080", Description: "AMD 29F080", Size: 0x100000, Width: 8, MakerID: MakerAMD, DeviceID: 0xd5, AddressMask: 0x7ff},

	{Name: "amd_29f400t", Description: "AMD 29F400T", Size: 0x80000, Width: 8, MakerID: MakerAMD, DeviceID: 0x23, Granularity: TopBootMixed},
	{Name: "amd_29f800t", Description: "AMD 29F800T", Size: 0x100000, Width: 8, MakerID: MakerAMD, DeviceID: 0xda, Granularity: TopBootMixed},
	{Name: "amd_29lv200t", Description: "AMD 29LV200T", Size: 0x40000, Width: 8, MakerID: MakerAMD, DeviceID: 0x3b, AMDIDStride: 2},
	{Name: "sharp_lh28f016s", Description: "Sharp LH28F016S", Size: 0x200000, Width: 8, MakerID: MakerIntel, DeviceID: 0xaa},
	{Name: "intel_e28f008sa", Description: "Intel E28F008SA", Size: 0x100000, Width: 8, MakerID: MakerIntel, DeviceID: 0xa2},
	{Name: "macronix_29l001mc", Description: "Macronix 29L001MC", Size: 0x20000, Width: 8, MakerID: MakerMacronix, DeviceID: 0x51},
	{Name: "macronix_29lv160tmc", Description: "Macronix 29LV160TMC", Size: 0x20000, Width: 8, MakerID: MakerMacronix, DeviceID: 0x49, Granularity: Uniform16K},
	{Name: "panasonic_mn63f805mnp", Description: "Panasonic MN63F805MNP", Size: 0x10000, Width: 8, MakerID: MakerPanasonic, DeviceID: 0x1b, Granularity: Uniform4K},
	{Name: "sanyo_le26fv10n1ts", Description: "Sanyo LE26FV10N1TS", Size: 0x20000, Width: 8, MakerID: MakerSanyo, DeviceID: 0x13, Granularity: Uniform4K, BankSelect: true},
	{Name: "sst_28sf040", Description: "SST 28SF040", Size: 0x80000, Width: 8, MakerID: MakerSST, DeviceID: 0x04, NoStatusPoll: true, BlockErase: BlockMicro256},
	{Name: "sst_39vf020", Description: "SST 39VF020", Size: 0x40000, Width: 8, MakerID: MakerSST, DeviceID: 0xd6, Granularity: Uniform4K},

	// address bits A15-A18 are don't care
	{Name: "tms_29f040", Description: "Texas Instruments 29F040", Size: 0x80000, Width: 8, MakerID: MakerAMD, DeviceID: 0xa4, AddressMask: 0x7fff},

	// 16-bit
	{Name: "sharp_lh28f016s_16bit", Description: "Sharp LH28F016S (16-bit)", Size: 0x200000, Width: 16, MakerID: MakerIntel, DeviceID: 0xaa},
	{Name: "atmel_49f4096", Description: "Atmel AT49F4096", Size: 0x80000, Width: 16, MakerID: MakerAtmel, DeviceID: 0x92, Granularity: Uniform16K},
	{Name: "intel_28f320j3d", Description: "Intel 28F320J3D", Size: 0x400000, Width: 16, MakerID: MakerIntel, DeviceID: 0x16, Granularity: Uniform4K, IntelIDStride: 2},
	{Name: "intel_28f320j5", Description: "Intel 28F320J5", Size: 0x400000, Width: 16, MakerID: MakerIntel, DeviceID: 0x14},
	{Name: "sst_39vf400a", Description: "SST 39VF400A", Size: 0x80000, Width: 16, MakerID: MakerSST, DeviceID: 0xd6, Granularity: Uniform4K},
	{Name: "sharp_lh28f400", Description: "Sharp LH28F400", Size: 0x80000, Width: 16, MakerID: MakerSharp, DeviceID: 0xed},
	{Name: "intel_e28f400b", Description: "Intel E28F400B", Size: 0x80000, Width: 16, MakerID: MakerIntel, DeviceID: 0x4471, BlockErase: BlockBootParamMain},
	{Name: "intel_te28f160", Description: "Intel TE28F160", Size: 0x200000, Width: 16, MakerID: MakerSharp, DeviceID: 0xd0},
	{Name: "intel_te28f320", Description: "Intel TE28F320", Size: 0x400000, Width: 16, MakerID: MakerIntel, DeviceID: 0x8896},
	{Name: "sharp_unk128mbit", Description: "Sharp Unknown 128Mbit", Size: 0x800000, Width: 16, MakerID: MakerSharp, DeviceID: 0xb0},
}

// List returns a copy of every known descriptor.
func List() []Descriptor {
	l := make([]Descriptor, len(table))
	copy(l, table)
	return l
}

// Lookup returns the descriptor with the specified name. The comparison is
// case insensitive.
func Lookup(name string) (Descriptor, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	for _, d := range table {
		if d.Name == name {
			return d, nil
		}
	}
	return Descriptor{}, curated.Errorf(UnknownVariant, name)
}
