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

package variant_test

import (
	"testing"

	"github.com/jetsetilly/gopherflash/curated"
	"github.com/jetsetilly/gopherflash/hardware/flash/variant"
	"github.com/jetsetilly/gopherflash/test"
)

func TestTableIsValid(t *testing.T) {
	names := make(map[string]bool)
	for _, d := range variant.List() {
		test.ExpectSuccess(t, d.Validate(), d.Name)
		test.ExpectEquality(t, names[d.Name], false, d.Name)
		names[d.Name] = true
	}
	test.ExpectEquality(t, len(names), 30)
}

func TestLookup(t *testing.T) {
	d, err := variant.Lookup("AMD_29F040")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Size, 0x80000)
	test.ExpectEquality(t, d.MakerID, uint8(variant.MakerAMD))
	test.ExpectEquality(t, d.DeviceID, uint16(0xa4))

	_, err = variant.Lookup("not_a_chip")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, variant.UnknownVariant))
}

func TestListIsCopy(t *testing.T) {
	l := variant.List()
	l[0].Size = 1
	test.ExpectInequality(t, variant.List()[0].Size, 1)
}

func TestValidate(t *testing.T) {
	d := variant.Descriptor{Name: "bad", Size: 0x20000, Width: 12}
	test.ExpectSuccess(t, curated.Is(d.Validate(), variant.InvalidWidth))

	d = variant.Descriptor{Name: "bad", Size: 0x30000, Width: 8}
	test.ExpectSuccess(t, curated.Is(d.Validate(), variant.InvalidSize))

	d = variant.Descriptor{Name: "bad", Size: 0x8000, Width: 8}
	test.ExpectSuccess(t, curated.Is(d.Validate(), variant.InvalidSize))

	d = variant.Descriptor{Name: "bad", Size: 0x20000, Width: 8, PageProgram: true}
	test.ExpectSuccess(t, curated.Is(d.Validate(), variant.InvalidPage))

	d = variant.Descriptor{Name: "good", Size: 0x20000, Width: 8, PageProgram: true, PageSize: 0x80}
	test.ExpectSuccess(t, d.Validate())
}

func TestIDStride(t *testing.T) {
	d, err := variant.Lookup("intel_28f320j3d")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.IDStride(true), uint32(2))
	test.ExpectEquality(t, d.IDStride(false), uint32(1))

	d, err = variant.Lookup("fujitsu_29dl16x")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.IDStride(true), uint32(1))
	test.ExpectEquality(t, d.IDStride(false), uint32(2))
}
