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

// readHandlers is indexed by Mode. a nil entry means the contents of the flash
// are returned
var readHandlers = [numModes]func(d *Device, address uint32) uint16{
	ReadStatus: (*Device).readStatus,
	ReadID:     (*Device).readIntelID,
	ReadAMDID3: (*Device).readAMDID,
	EraseAMD4:  (*Device).readErasing,
}

// Read data from the device at the address. Depending on the current mode the
// data is either the contents of the flash or information about the device.
//
// Addresses are in bus units and the selected bank is applied in the same way
// as for Write().
func (d *Device) Read(address uint32) uint16 {
	address += uint32(d.bank) << 16
	if h := readHandlers[d.mode]; h != nil {
		return h(d, address)
	}
	return d.fetch(address)
}

func (d *Device) readStatus(_ uint32) uint16 {
	return uint16(d.status)
}

func (d *Device) readIntelID(address uint32) uint16 {
	return d.readID(address, true)
}

func (d *Device) readAMDID(address uint32) uint16 {
	return d.readID(address, false)
}

// the maker and device IDs are at the first and second positions with an
// unsupported block lock byte in the third. the master lock is in the fourth
// position for Intel chips with the normal ID layout
func (d *Device) readID(address uint32, intel bool) uint16 {
	stride := d.desc.IDStride(intel)
	switch address {
	case 0:
		return uint16(d.desc.MakerID)
	case stride:
		return d.desc.DeviceID
	case 3 * stride:
		if intel && stride == 1 && d.masterLock {
			return 1
		}
	}
	return 0
}

// reads inside the erasing region return the status with the toggle bits
// flipped. reads outside the region return normal data
func (d *Device) readErasing(address uint32) uint16 {
	if d.inErase(d.byteAddress(address)) {
		d.status ^= statusToggle
		return uint16(d.status)
	}
	return d.fetch(address)
}
