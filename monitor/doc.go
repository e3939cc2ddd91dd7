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

// Package monitor is a command interpreter for a flash device. Commands can be
// entered interactively or run from a script. Each command is a single line
// consisting of a keyword followed by arguments. Keywords are case insensitive
// and numbers are hexadecimal, unless they are prefixed with a # in which case
// they are decimal. Lines beginning with # are comments.
//
//	# program a byte with the AMD sequence
//	WRITE 555 aa
//	WRITE 2aa 55
//	WRITE 555 a0
//	WRITE 1000 42
//	PEEK 1000
//
// Time on the virtual clock passes only with the ADVANCE command.
package monitor
