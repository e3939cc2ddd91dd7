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

// Manufacturer ID bytes as returned by the ID commands. Note that some values
// are shared between manufacturers.
const (
	MakerAlliance   = 0x52
	MakerAMD        = 0x01
	MakerAMIC       = 0x37
	MakerAtmel      = 0x1f
	MakerBright     = 0xad
	MakerCatalyst   = 0x31
	MakerEON        = 0x1c
	MakerFujitsu    = 0x04
	MakerGigaDevice = 0xc8
	MakerHyundai    = 0xad
	MakerIntel      = 0x89
	MakerISSI       = 0xd5
	MakerMacronix   = 0xc2
	MakerPanasonic  = 0x32
	MakerPMC        = 0x9d
	MakerSanyo      = 0x62
	MakerSharp      = 0xb0
	MakerSpansion   = 0x01
	MakerSST        = 0xbf
	MakerST         = 0x20
	MakerSyncMOS    = 0x40
	MakerTI         = 0x97
	MakerTIOld      = 0x01
	MakerWinbondNex = 0xef
	MakerWinbond    = 0xda
)
