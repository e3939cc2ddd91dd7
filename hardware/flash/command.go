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
	"github.com/jetsetilly/gopherflash/logger"
)

// writeHandlers is indexed by Mode. every mode has a handler
var writeHandlers = [numModes]func(d *Device, address uint32, data uint16){
	Normal:         (*Device).writeCommand,
	ReadStatus:     (*Device).writeCommand,
	ReadID:         (*Device).writeCommand,
	ReadAMDID3:     (*Device).writeCommand,
	ReadAMDID1:     (*Device).writeAMDID1,
	ReadAMDID2:     (*Device).writeAMDID2,
	EraseAMD1:      (*Device).writeEraseAMD1,
	EraseAMD2:      (*Device).writeEraseAMD2,
	EraseAMD3:      (*Device).writeEraseAMD3,
	EraseAMD4:      (*Device).writeEraseAMD4,
	WritePart1:     (*Device).writePart1,
	ByteProgram:    (*Device).writeByteProgram,
	WritePageAtmel: (*Device).writePageAtmel,
	ClearPart1:     (*Device).writeClearPart1,
	SetMaster:      (*Device).writeSetMaster,
	BankSelect:     (*Device).writeBankSelect,
}

// Write data to the device at the address. Depending on the current mode the
// data will either be programmed into the flash or interpreted as a command.
//
// The address is in bus units. For a 16-bit device address 1 refers to the
// second and third bytes of the flash. The selected bank is applied to the
// address before it is used.
func (d *Device) Write(address uint32, data uint16) {
	address += uint32(d.bank) << 16
	writeHandlers[d.mode](d, address, data)
}

// unexpected logs a write that doesn't fit the current command sequence
func (d *Device) unexpected(address uint32, data uint16) {
	logger.Logf(d.env, logTag, "%s: unexpected %08x=%02x in %s", d.desc.Name, address, data&0xff, d.mode)
}

// the address of the first write of an unlock sequence
func isUnlock1(address uint32) bool {
	a := address & 0xfff
	return a == 0x555 || a == 0xaaa
}

// the address of the second write of an unlock sequence
func isUnlock2(address uint32) bool {
	a := address & 0xffff
	return a == 0x2aa || a == 0x2aaa || address&0xfff == 0x555
}

// the address of the command byte of an unlock sequence
func isUnlockCommand(address uint32) bool {
	a := address & 0xffff
	return a == 0x555 || a == 0x5555 || address&0xfff == 0xaaa
}

// some chips ignore address bits when matching unlock addresses
func (d *Device) masked(address uint32, pattern uint32) bool {
	m := d.desc.AddressMask
	return m != 0 && address&m == pattern&m
}

// commands accepted in the Normal, ReadStatus, ReadID and ReadAMDID3 modes
func (d *Device) writeCommand(address uint32, data uint16) {
	switch data & 0xff {
	case 0xf0, 0xff:
		d.mode = Normal
	case 0x90:
		d.mode = ReadID
	case 0x40, 0x10:
		d.mode = WritePart1
	case 0x50:
		d.status = statusReady
		d.mode = ReadStatus
	case 0x20:
		d.mode = ClearPart1
	case 0x60:
		d.mode = SetMaster
	case 0x70:
		d.mode = ReadStatus
	case 0xaa:
		if isUnlock1(address) {
			d.mode = ReadAMDID1
			return
		}
		d.unexpected(address, data)
		d.mode = Normal
	default:
		logger.Logf(d.env, logTag, "%s: unknown command byte %02x", d.desc.Name, data&0xff)
		d.mode = Normal
	}
}

func (d *Device) writeAMDID1(address uint32, data uint16) {
	if data&0xff == 0x55 && (isUnlock2(address) || d.masked(address, 0xaaaa)) {
		d.mode = ReadAMDID2
		return
	}
	d.unexpected(address, data)
	d.mode = Normal
}

func (d *Device) writeAMDID2(address uint32, data uint16) {
	cmd := data & 0xff

	if isUnlockCommand(address) {
		switch cmd {
		case 0x90:
			d.mode = ReadAMDID3
			return
		case 0x80:
			d.mode = EraseAMD1
			return
		case 0xa0:
			if address&0xffff == 0x5555 && d.desc.PageProgram {
				d.mode = WritePageAtmel
				d.byteCount = 0
				return
			}
			d.mode = ByteProgram
			return
		case 0xf0:
			d.mode = Normal
			return
		case 0xb0:
			if address&0xffff == 0x5555 && d.desc.BankSelect {
				d.mode = BankSelect
				return
			}
		}
	}

	if d.masked(address, 0x5555) {
		switch cmd {
		case 0x80:
			d.mode = EraseAMD1
			return
		case 0x90:
			d.mode = ReadAMDID3
			return
		case 0xa0:
			d.mode = ByteProgram
			return
		case 0xf0:
			d.mode = Normal
			return
		}
	}

	d.unexpected(address, data)
	d.mode = Normal
}

func (d *Device) writeEraseAMD1(address uint32, data uint16) {
	switch {
	case data&0xff == 0xaa && isUnlock1(address):
		d.mode = EraseAMD2
	case data&0xff == 0xf0:
		d.mode = Normal
	default:
		d.unexpected(address, data)
	}
}

func (d *Device) writeEraseAMD2(address uint32, data uint16) {
	switch {
	case data&0xff == 0x55 && isUnlock2(address):
		d.mode = EraseAMD3
	case data&0xff == 0xf0:
		d.mode = Normal
	default:
		d.unexpected(address, data)
	}
}

func (d *Device) writeEraseAMD3(address uint32, data uint16) {
	switch {
	case data&0xff == 0x10 && isUnlock1(address):
		d.chipErase()
	case data&0xff == 0x30:
		d.sectorErase(address)
	case data&0xff == 0xf0:
		d.mode = Normal
	default:
		d.unexpected(address, data)
	}
}

// the erase is in progress. the only write that has any effect is the reset
// command, which returns to the Normal mode without cancelling the erase
func (d *Device) writeEraseAMD4(address uint32, data uint16) {
	if data&0xff == 0xf0 {
		d.mode = Normal
		return
	}
	logger.Logf(d.env, logTag, "%s: ignored %08x=%02x during erase", d.desc.Name, address, data&0xff)
}

func (d *Device) writePart1(address uint32, data uint16) {
	d.commit(address, data)
	d.status = statusReady
	if d.desc.NoStatusPoll {
		d.mode = Normal
	} else {
		d.mode = ReadStatus
	}
}

func (d *Device) writeByteProgram(address uint32, data uint16) {
	if d.desc.Width == 8 {
		d.commit(address, data)
	} else {
		logger.Logf(d.env, logTag, "%s: byte program not supported on %d-bit device", d.desc.Name, d.desc.Width)
	}
	d.mode = Normal
}

func (d *Device) writePageAtmel(address uint32, data uint16) {
	d.commit(address, data)
	d.byteCount++
	if d.byteCount >= d.desc.PageSize {
		d.mode = Normal
	}
}

func (d *Device) writeClearPart1(address uint32, data uint16) {
	switch data & 0xff {
	case 0xd0:
		d.blockErase(address)
	case 0xf0:
		d.mode = Normal
	default:
		d.unexpected(address, data)
	}
}

func (d *Device) writeSetMaster(address uint32, data uint16) {
	switch data & 0xff {
	case 0xf1:
		d.masterLock = true
	case 0xd0:
		d.masterLock = false
	default:
		d.unexpected(address, data)
	}
	d.mode = Normal
}

func (d *Device) writeBankSelect(_ uint32, data uint16) {
	d.bank = uint8(data)
	d.mode = Normal
}
