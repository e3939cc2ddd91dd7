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
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherflash/curated"
	"github.com/jetsetilly/gopherflash/environment"
	"github.com/jetsetilly/gopherflash/hardware/flash"
	"github.com/jetsetilly/gopherflash/hardware/flash/variant"
	"github.com/jetsetilly/gopherflash/hardware/future"
	"github.com/jetsetilly/gopherflash/logger"
	"github.com/jetsetilly/gopherflash/test"
)

// write is a single bus write
type write struct {
	address uint32
	data    uint16
}

var (
	amdUnlock = []write{{0x555, 0xaa}, {0x2aa, 0x55}}
	amdErase  = []write{{0x555, 0xaa}, {0x2aa, 0x55}, {0x555, 0x80}, {0x555, 0xaa}, {0x2aa, 0x55}}
)

func newDevice(t *testing.T, name string) (*flash.Device, *future.Ticker) {
	t.Helper()

	desc, err := variant.Lookup(name)
	test.DemandSuccess(t, err)

	tck := future.NewTicker(name)
	env := environment.NewEnvironment(environment.MainEmulation, nil)
	dev, err := flash.NewDevice(env, desc, tck)
	test.DemandSuccess(t, err)

	return dev, tck
}

func sequence(dev *flash.Device, seq ...[]write) {
	for _, s := range seq {
		for _, w := range s {
			dev.Write(w.address, w.data)
		}
	}
}

func TestNewDevice(t *testing.T) {
	env := environment.NewEnvironment(environment.MainEmulation, nil)
	tck := future.NewTicker("test")

	desc, err := variant.Lookup("amd_29f040")
	test.DemandSuccess(t, err)

	_, err = flash.NewDevice(env, desc, nil)
	test.ExpectSuccess(t, curated.Is(err, flash.NoScheduler))

	desc.Width = 32
	_, err = flash.NewDevice(env, desc, tck)
	test.ExpectSuccess(t, curated.Is(err, variant.InvalidWidth))

	dev, tck := newDevice(t, "amd_29f040")
	test.ExpectEquality(t, dev.Mode(), flash.Normal)
	test.ExpectEquality(t, dev.Status(), uint8(0x80))
	test.ExpectEquality(t, dev.Bank(), uint8(0))
	test.ExpectFailure(t, dev.MasterLock())
	test.ExpectFailure(t, dev.Busy())
	test.ExpectEquality(t, tck.Pending(), 0)

	// new devices are erased
	for _, v := range dev.Contents() {
		if v != 0xff {
			t.Fatalf("new device is not erased")
		}
	}
}

func TestIntelID(t *testing.T) {
	for _, desc := range variant.List() {
		dev, _ := newDevice(t, desc.Name)
		dev.Write(0, 0x90)
		test.ExpectEquality(t, dev.Mode(), flash.ReadID, desc.Name)
		test.ExpectEquality(t, dev.Read(0), uint16(desc.MakerID), desc.Name)

		stride := desc.IDStride(true)
		test.ExpectEquality(t, dev.Read(stride), desc.DeviceID, desc.Name)
		test.ExpectEquality(t, dev.Read(2*stride), uint16(0), desc.Name)
	}
}

func TestIntelIDStride(t *testing.T) {
	dev, _ := newDevice(t, "intel_28f320j3d")
	dev.Write(0, 0x90)
	test.ExpectEquality(t, dev.Read(0), uint16(variant.MakerIntel))
	test.ExpectEquality(t, dev.Read(1), uint16(0))
	test.ExpectEquality(t, dev.Read(2), uint16(0x16))
	test.ExpectEquality(t, dev.Read(4), uint16(0))
}

func TestAMDID(t *testing.T) {
	dev, _ := newDevice(t, "amd_29f040")
	sequence(dev, amdUnlock, []write{{0x555, 0x90}})
	test.ExpectEquality(t, dev.Mode(), flash.ReadAMDID3)
	test.ExpectEquality(t, dev.Read(0), uint16(variant.MakerAMD))
	test.ExpectEquality(t, dev.Read(1), uint16(0xa4))
	test.ExpectEquality(t, dev.Read(2), uint16(0))
	test.ExpectEquality(t, dev.Read(3), uint16(0))

	// a command byte leaves the ID mode
	dev.Write(0, 0xf0)
	test.ExpectEquality(t, dev.Mode(), flash.Normal)
	test.ExpectEquality(t, dev.Read(0), uint16(0xff))

	// the extended ID layout
	dev, _ = newDevice(t, "fujitsu_29dl16x")
	sequence(dev, []write{{0xaaa, 0xaa}, {0x555, 0x55}, {0xaaa, 0x90}})
	test.ExpectEquality(t, dev.Mode(), flash.ReadAMDID3)
	test.ExpectEquality(t, dev.Read(0), uint16(variant.MakerFujitsu))
	test.ExpectEquality(t, dev.Read(1), uint16(0))
	test.ExpectEquality(t, dev.Read(2), uint16(0x35))
}

func TestAddressMask(t *testing.T) {
	// the second and third writes only match when the don't care bits are
	// ignored
	masked := []write{{0x555, 0xaa}, {0x12aa, 0x55}, {0x1d55, 0x90}}

	dev, _ := newDevice(t, "amd_29f080")
	sequence(dev, masked)
	test.ExpectEquality(t, dev.Mode(), flash.ReadAMDID3)
	test.ExpectEquality(t, dev.Read(1), uint16(0xd5))

	// chips without an address mask abort the sequence on the second write
	dev, _ = newDevice(t, "amd_29f040")
	sequence(dev, masked[:2])
	test.ExpectEquality(t, dev.Mode(), flash.Normal)
}

func TestMasterLock(t *testing.T) {
	dev, _ := newDevice(t, "intel_e28f008sa")

	sequence(dev, []write{{0, 0x60}, {0, 0xf1}})
	test.ExpectSuccess(t, dev.MasterLock())
	test.ExpectEquality(t, dev.Mode(), flash.Normal)
	dev.Write(0, 0x90)
	test.ExpectEquality(t, dev.Read(3), uint16(1))

	sequence(dev, []write{{0, 0x60}, {0, 0xd0}})
	test.ExpectFailure(t, dev.MasterLock())
	dev.Write(0, 0x90)
	test.ExpectEquality(t, dev.Read(3), uint16(0))

	// an unexpected byte leaves the lock unchanged
	sequence(dev, []write{{0, 0x60}, {0, 0x42}})
	test.ExpectFailure(t, dev.MasterLock())
	test.ExpectEquality(t, dev.Mode(), flash.Normal)
}

func TestResetCommand(t *testing.T) {
	// sequences that leave the device in each of the command modes
	tests := []struct {
		mode flash.Mode
		seq  []write
	}{
		{mode: flash.Normal},
		{mode: flash.ReadID, seq: []write{{0, 0x90}}},
		{mode: flash.ReadStatus, seq: []write{{0, 0x70}}},
		{mode: flash.ClearPart1, seq: []write{{0, 0x20}}},
		{mode: flash.SetMaster, seq: []write{{0, 0x60}}},
		{mode: flash.ReadAMDID1, seq: []write{{0x555, 0xaa}}},
		{mode: flash.ReadAMDID2, seq: amdUnlock},
		{mode: flash.ReadAMDID3, seq: append(append([]write{}, amdUnlock...), write{0x555, 0x90})},
		{mode: flash.EraseAMD1, seq: amdErase[:3]},
		{mode: flash.EraseAMD2, seq: amdErase[:4]},
		{mode: flash.EraseAMD3, seq: amdErase},
		{mode: flash.EraseAMD4, seq: append(append([]write{}, amdErase...), write{0x1000, 0x30})},
	}

	for _, tt := range tests {
		dev, _ := newDevice(t, "amd_29f040")
		dev.Poke(0, 0x12)
		dev.Poke(0x1000, 0x34)

		sequence(dev, tt.seq)
		test.DemandEquality(t, dev.Mode(), tt.mode, tt.mode)

		before := dev.Contents()
		dev.Write(0, 0xf0)
		test.ExpectEquality(t, dev.Mode(), flash.Normal, tt.mode)
		test.ExpectSuccess(t, bytes.Equal(before, dev.Contents()), tt.mode)
	}
}

func TestUnrecognisedCommand(t *testing.T) {
	logger.Clear()

	dev, _ := newDevice(t, "amd_29f040")
	dev.Write(0, 0x70)
	dev.Write(0, 0x42)
	test.ExpectEquality(t, dev.Mode(), flash.Normal)

	// 0xaa only begins an unlock sequence at the correct address
	dev.Write(0x123, 0xaa)
	test.ExpectEquality(t, dev.Mode(), flash.Normal)

	// abort part way through an unlock sequence
	sequence(dev, []write{{0x555, 0xaa}, {0x2aa, 0x56}})
	test.ExpectEquality(t, dev.Mode(), flash.Normal)

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "flash: amd_29f040: unknown command byte 42"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "in ReadAMDID1"))
}

func TestTolerantModes(t *testing.T) {
	dev, _ := newDevice(t, "amd_29f040")

	sequence(dev, amdErase[:3])
	dev.Write(0x123, 0x42)
	test.ExpectEquality(t, dev.Mode(), flash.EraseAMD1)
	dev.Write(0x555, 0xaa)
	dev.Write(0x123, 0x42)
	test.ExpectEquality(t, dev.Mode(), flash.EraseAMD2)
	dev.Write(0x2aa, 0x55)
	dev.Write(0x123, 0x42)
	test.ExpectEquality(t, dev.Mode(), flash.EraseAMD3)

	dev.Write(0, 0xf0)
	dev.Write(0, 0x20)
	dev.Write(0, 0x42)
	test.ExpectEquality(t, dev.Mode(), flash.ClearPart1)
}

func TestProgram(t *testing.T) {
	dev, _ := newDevice(t, "amd_29f040")

	// intel style program
	sequence(dev, []write{{0, 0x40}, {0x1234, 0x5a}})
	test.ExpectEquality(t, dev.Peek(0x1234), uint8(0x5a))
	test.ExpectEquality(t, dev.Mode(), flash.ReadStatus)
	test.ExpectEquality(t, dev.Read(0x1234), uint16(0x80))
	dev.Write(0, 0xff)
	test.ExpectEquality(t, dev.Read(0x1234), uint16(0x5a))

	// amd style program
	sequence(dev, amdUnlock, []write{{0x555, 0xa0}})
	test.ExpectEquality(t, dev.Mode(), flash.ByteProgram)
	dev.Write(0x4321, 0x99)
	test.ExpectEquality(t, dev.Mode(), flash.Normal)
	test.ExpectEquality(t, dev.Peek(0x4321), uint8(0x99))
	test.ExpectEquality(t, dev.Read(0x4321), uint16(0x99))

	// addresses wrap at the end of the device
	sequence(dev, []write{{0, 0x10}, {0x80010, 0x77}})
	test.ExpectEquality(t, dev.Peek(0x10), uint8(0x77))

	// chip with no status polling phase
	dev, _ = newDevice(t, "sst_28sf040")
	sequence(dev, []write{{0, 0x10}, {0x100, 0x01}})
	test.ExpectEquality(t, dev.Mode(), flash.Normal)
	test.ExpectEquality(t, dev.Read(0x100), uint16(0x01))
}

func TestProgram16(t *testing.T) {
	dev, _ := newDevice(t, "sharp_lh28f400")

	sequence(dev, []write{{0, 0x10}, {0x100, 0xbeef}})
	test.ExpectEquality(t, dev.Peek(0x200), uint8(0xbe))
	test.ExpectEquality(t, dev.Peek(0x201), uint8(0xef))
	dev.Write(0, 0xff)
	test.ExpectEquality(t, dev.Read(0x100), uint16(0xbeef))

	// byte program is not supported by 16-bit devices
	sequence(dev, amdUnlock, []write{{0x555, 0xa0}, {0x300, 0x1234}})
	test.ExpectEquality(t, dev.Mode(), flash.Normal)
	test.ExpectEquality(t, dev.Read(0x300), uint16(0xffff))
}

// programming overwrites the existing value. real flash can only clear bits
// during programming and that behaviour is available with the strict
// program preference
func TestProgramOverwrite(t *testing.T) {
	dev, _ := newDevice(t, "amd_29f040")
	dev.Poke(0x10, 0x0f)
	sequence(dev, []write{{0, 0x40}, {0x10, 0xf0}})
	test.ExpectEquality(t, dev.Peek(0x10), uint8(0xf0))

	desc, err := variant.Lookup("amd_29f040")
	test.DemandSuccess(t, err)
	env := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, env.Prefs.StrictProgram.Set(true))
	dev, err = flash.NewDevice(env, desc, future.NewTicker("strict"))
	test.DemandSuccess(t, err)

	dev.Poke(0x10, 0x0f)
	sequence(dev, []write{{0, 0x40}, {0x10, 0xf0}})
	test.ExpectEquality(t, dev.Peek(0x10), uint8(0x00))
	sequence(dev, []write{{0, 0x40}, {0x11, 0x3c}})
	test.ExpectEquality(t, dev.Peek(0x11), uint8(0x3c))
}

func TestPopulateDefault(t *testing.T) {
	dev, _ := newDevice(t, "amd_29f010")
	dev.PopulateDefault([]uint8{1, 2, 3})
	test.ExpectEquality(t, dev.Read(0), uint16(1))
	test.ExpectEquality(t, dev.Read(2), uint16(3))
	test.ExpectEquality(t, dev.Read(3), uint16(0xff))

	// source words are little-endian
	dev, _ = newDevice(t, "sharp_lh28f400")
	dev.PopulateDefault([]uint8{0x34, 0x12, 0x78, 0x56})
	test.ExpectEquality(t, dev.Read(0), uint16(0x1234))
	test.ExpectEquality(t, dev.Read(1), uint16(0x5678))
	test.ExpectEquality(t, dev.Read(2), uint16(0xffff))
}

func TestLoadSave(t *testing.T) {
	dev, _ := newDevice(t, "panasonic_mn63f805mnp")
	dev.Poke(0x100, 0x42)
	test.ExpectFailure(t, dev.IsSaved())

	b := &bytes.Buffer{}
	test.DemandSuccess(t, dev.Save(b))
	test.ExpectSuccess(t, dev.IsSaved())
	test.ExpectEquality(t, b.Len(), 0x10000)

	cp, _ := newDevice(t, "panasonic_mn63f805mnp")
	test.DemandSuccess(t, cp.Load(b))
	test.ExpectEquality(t, cp.Peek(0x100), uint8(0x42))
	test.ExpectSuccess(t, cp.IsSaved())
}

func TestSnapshot(t *testing.T) {
	dev, tck := newDevice(t, "amd_29f040")
	sequence(dev, amdErase, []write{{0x1000, 0x30}})
	tck.Advance(400_000_000)

	snap := dev.Snapshot()
	snap.Poke(0x20000, 0x01)
	test.ExpectEquality(t, dev.Peek(0x20000), uint8(0xff))

	tck2 := future.NewTicker("snapshot")
	snap.Plumb(environment.NewEnvironment(environment.MainEmulation, nil), tck2)
	test.ExpectEquality(t, snap.Mode(), flash.EraseAMD4)
	test.ExpectSuccess(t, snap.Busy())
	test.ExpectEquality(t, snap.Remaining(), dev.Remaining())

	tck2.Advance(snap.Remaining())
	test.ExpectEquality(t, snap.Mode(), flash.Normal)
	test.ExpectEquality(t, dev.Mode(), flash.EraseAMD4)
}

func TestString(t *testing.T) {
	dev, _ := newDevice(t, "amd_29f040")
	test.ExpectEquality(t, dev.String(), "amd_29f040: mode=Normal status=80 bank=00")
	test.ExpectEquality(t, flash.WritePageAtmel.String(), "WritePageAtmel")
}
