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

package digest_test

import (
	"crypto/sha1"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherflash/digest"
	"github.com/jetsetilly/gopherflash/test"
)

func TestFlash(t *testing.T) {
	dig := digest.NewFlash()
	var _ digest.Digest = dig

	zero := fmt.Sprintf("%x", [sha1.Size]byte{})
	test.ExpectEquality(t, dig.Hash(), zero)

	contents := []uint8{0xff, 0xff, 0x01}
	dig.Update(contents)

	var prev [sha1.Size]byte
	expected := sha1.Sum(append(prev[:], contents...))
	test.ExpectEquality(t, dig.Hash(), fmt.Sprintf("%x", expected))

	// updates are chained
	dig.Update(contents)
	chained := sha1.Sum(append(expected[:], contents...))
	test.ExpectEquality(t, dig.Hash(), fmt.Sprintf("%x", chained))

	// the same sequence of updates produces the same hash
	other := digest.NewFlash()
	other.Update(contents)
	other.Update(contents)
	test.ExpectEquality(t, other.Hash(), dig.Hash())

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), zero)
}
