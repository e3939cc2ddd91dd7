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

// Package statsview runs a local HTTP server offering runtime statistics of
// the running program. It is useful when looking at the memory behaviour of
// long monitor sessions and scripts with large flash images.
//
// The server is only available when the program is built with the statsview
// build tag:
//
//	go build -tags statsview .
//
// The statistics are then available at:
//
//	localhost:12650/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:12650/debug/pprof/
//
// Without the build tag Available() returns false and Launch() does nothing.
package statsview

// Address of the statsview server.
const Address = "localhost:12650"
