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

package monitor

import (
	"strings"

	"github.com/jetsetilly/gopherflash/curated"
)

// the AMD unlock sequence. the third write carries the command
var unlockPrefix = []struct {
	address uint32
	data    uint16
}{
	{address: 0x555, data: 0xaa},
	{address: 0x2aa, data: 0x55},
}

func (mon *Monitor) unlockCommand(cmd uint16) {
	for _, w := range unlockPrefix {
		mon.dev.Write(w.address, w.data)
	}
	mon.dev.Write(0x555, cmd)
}

func (mon *Monitor) unlock(keyword string, args []string) error {
	if len(args) < 1 {
		return curated.Errorf(MissingArgument, keyword)
	}

	switch strings.ToUpper(args[0]) {
	case "ID":
		mon.unlockCommand(0x90)

	case "CHIP":
		mon.unlockCommand(0x80)
		mon.unlockCommand(0x10)

	case "ERASE":
		if len(args) < 2 {
			return curated.Errorf(MissingArgument, keyword)
		}
		address, err := parseAddress(keyword, args[1])
		if err != nil {
			return err
		}
		mon.unlockCommand(0x80)
		for _, w := range unlockPrefix {
			mon.dev.Write(w.address, w.data)
		}
		mon.dev.Write(address, 0x30)

	case "PROGRAM":
		if len(args) < 3 {
			return curated.Errorf(MissingArgument, keyword)
		}
		address, err := parseAddress(keyword, args[1])
		if err != nil {
			return err
		}
		v, err := parseNumber(args[2])
		if err != nil || v > 0xffff {
			return curated.Errorf(InvalidArgument, keyword, args[2])
		}
		mon.unlockCommand(0xa0)
		mon.dev.Write(address, uint16(v))

	default:
		return curated.Errorf(InvalidArgument, keyword, args[0])
	}

	mon.printf("%s\n", mon.dev)
	return nil
}
