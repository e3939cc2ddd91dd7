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

package curated

import (
	"fmt"
	"strings"
)

// curated errors remember the pattern they were created with so that they can
// be identified later by Is() and Has().
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The values are not formatted until
// Error() is called.
//
// The argument is called pattern rather than format because it is the
// pattern that Is() and Has() compare against.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface. Adjacent parts of the message that
// are identical are reduced to a single part. For example, "flash: flash:
// bad address" becomes "flash: bad address".
func (er curated) Error() string {
	p := strings.Split(fmt.Sprintf(er.pattern, er.values...), ": ")
	n := p[:1]
	for _, s := range p[1:] {
		if s != n[len(n)-1] {
			n = append(n, s)
		}
	}
	return strings.Join(n, ": ")
}

// Unwrap returns every error in the values of the curated error. This allows
// errors.Is() and errors.As() to find errors from other packages.
func (er curated) Unwrap() []error {
	var w []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			w = append(w, e)
		}
	}
	return w
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is checks if error is a curated error with a specific pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has checks if a curated error with the pattern is anywhere in the chain.
// The chain is followed through curated errors only.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}
	if er.pattern == pattern {
		return true
	}
	for _, e := range er.Unwrap() {
		if Has(e, pattern) {
			return true
		}
	}
	return false
}
