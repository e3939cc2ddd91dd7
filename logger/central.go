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

package logger

import (
	"io"
)

// the size of the application wide log
const centralSize = 256

// central is the log used by the package level functions. every package in
// the application writes to the same log
var central = NewLogger(centralSize)

// Log adds an entry to the central log.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central log.
func Logf(perm Permission, tag string, pattern string, args ...any) {
	central.Logf(perm, tag, pattern, args...)
}

// Clear removes every entry from the central log.
func Clear() {
	central.Clear()
}

// Write the central log to the io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// WriteRecent writes the central log entries added since the previous call.
func WriteRecent(output io.Writer) {
	central.WriteRecent(output)
}

// Tail writes the most recent entries of the central log.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho copies new central log entries to the io.Writer as they arrive. A
// nil writer stops the echo.
func SetEcho(output io.Writer, writeRecent bool) {
	central.SetEcho(output, writeRecent)
}

// BorrowLog calls f with the central log entries. The log is locked for the
// duration of the call.
func BorrowLog(f func([]Entry)) {
	central.BorrowLog(f)
}
