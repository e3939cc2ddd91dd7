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

// Package curated creates errors that can be identified by the pattern they
// were created with. Curated errors implement the error interface.
//
// Packages declare their errors as pattern constants and create errors with
// Errorf():
//
//	const ShortLoad = "storage: short load (%d of %d bytes)"
//
//	err := curated.Errorf(ShortLoad, n, 0x80000)
//
// The pattern identifies the error. Is() compares the pattern of the error
// and Has() looks for the pattern anywhere in the chain of wrapped curated
// errors:
//
//	err := curated.Errorf(ReadError, curated.Errorf(ShortLoad, n, 0x80000))
//
//	curated.Is(err, ShortLoad)  // false
//	curated.Has(err, ShortLoad) // true
//
// Adjacent duplicate parts of the message are removed by Error(), so a
// package can wrap an error with a prefix that the error already carries
// without the prefix appearing twice.
//
// Errors from other packages that are wrapped by a curated error are
// available to errors.Is() and errors.As().
package curated
