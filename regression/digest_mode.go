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

package regression

import (
	"strings"

	"github.com/jetsetilly/gopherflash/curated"
)

// DigestMode specifies how often the digest is updated while the script runs.
type DigestMode int

// List of valid DigestMode values. Use String() and ParseDigestMode() to
// convert to and from string representations.
const (
	DigestUndefined DigestMode = iota

	// the digest is updated once when the script has finished
	DigestFinal

	// the digest is updated after every command in the script. catches
	// regressions in intermediate states that are later erased
	DigestEvery
)

func (mode DigestMode) String() string {
	switch mode {
	case DigestFinal:
		return "final"
	case DigestEvery:
		return "every"
	}
	return "undefined"
}

// ParseDigestMode converts a string to a DigestMode.
func ParseDigestMode(s string) (DigestMode, error) {
	switch strings.ToLower(s) {
	case "final":
		return DigestFinal, nil
	case "every":
		return DigestEvery, nil
	}
	return DigestUndefined, curated.Errorf(RegressionError, curated.Errorf("invalid digest mode (%s)", s))
}
