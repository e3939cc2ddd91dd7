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

// Mode is the state of the command state machine.
type Mode int

// List of valid Mode values.
const (
	Normal Mode = iota
	ReadID
	ReadStatus
	WritePart1
	ClearPart1
	SetMaster
	ReadAMDID1
	ReadAMDID2
	ReadAMDID3
	EraseAMD1
	EraseAMD2
	EraseAMD3
	EraseAMD4
	ByteProgram
	BankSelect
	WritePageAtmel

	numModes
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case ReadID:
		return "ReadID"
	case ReadStatus:
		return "ReadStatus"
	case WritePart1:
		return "WritePart1"
	case ClearPart1:
		return "ClearPart1"
	case SetMaster:
		return "SetMaster"
	case ReadAMDID1:
		return "ReadAMDID1"
	case ReadAMDID2:
		return "ReadAMDID2"
	case ReadAMDID3:
		return "ReadAMDID3"
	case EraseAMD1:
		return "EraseAMD1"
	case EraseAMD2:
		return "EraseAMD2"
	case EraseAMD3:
		return "EraseAMD3"
	case EraseAMD4:
		return "EraseAMD4"
	case ByteProgram:
		return "ByteProgram"
	case BankSelect:
		return "BankSelect"
	case WritePageAtmel:
		return "WritePageAtmel"
	}
	return "unknown mode"
}

// Status register values.
const (
	statusReady   = 0x80
	statusErasing = 0x08
	statusBlock   = 0x00

	// bits 6 and 2 flip on every read of an erasing region
	statusToggle = 0x44
)
