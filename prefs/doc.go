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

// Package prefs facilitates the storage of preferential values in the
// Gopherflash system.
//
// The Bool, String and Int types hold a single preference value each. Values
// are added to a Disk instance with a key, and the Disk instance stores and
// loads all of its values to and from a single file. The file is a simple
// text file with one "key :: value" pair per line.
//
// Values can also be specified on the command line, in a string of the form:
//
//	key::value; key::value
//
// The string is added to the command line stack with
// PushCommandLineStack(). Values in the top group of the stack take priority
// over values loaded from disk. Each value is used only once.
package prefs
