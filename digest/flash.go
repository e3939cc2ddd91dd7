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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// Flash is an implementation of the Digest interface. It generates a SHA-1
// value of the flash contents every time Update() is called. Each value is
// chained with the previous value so the hash reflects every update in
// sequence.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Flash struct {
	digest [sha1.Size]byte
	data   []byte
}

// NewFlash is the preferred method of initialisation for the Flash type.
func NewFlash() *Flash {
	return &Flash{}
}

// Hash implements digest.Digest interface
func (dig *Flash) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Flash) ResetDigest() {
	clear(dig.digest[:])
}

// Update the digest with the contents of the flash.
func (dig *Flash) Update(contents []uint8) {
	// length of data contains enough room for the previous digest value
	l := len(dig.digest) + len(contents)
	if cap(dig.data) < l {
		dig.data = make([]byte, l)
	}
	dig.data = dig.data[:l]

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the data
	n := copy(dig.data, dig.digest[:])
	copy(dig.data[n:], contents)
	dig.digest = sha1.Sum(dig.data)
}
