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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given with NewArgs() and Parse() is
// called with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "RUN", "LIST", "INFO")
//	_, _ = md.Parse()
//
// If the first non-flag argument matches one of the sub-modes then that mode is
// selected. Otherwise the first sub-mode in the list is selected. The flags for
// the selected mode are then added and Parse() called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		variant := md.AddString("variant", "amd_29f040", "flash chip")
//		fill := md.AddHex("fill", 0xff, "initial flash contents")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			fmt.Println(err)
//			return
//		case modalflag.ParseHelp:
//			return
//		}
//		run(*variant, *fill, md.GetArg(0))
//	}
//
// Help messages, including the list of sub-modes, are printed automatically
// when the -help flag is given. Sub-mode comparisons are case insensitive.
package modalflag
