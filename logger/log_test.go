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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherflash/logger"
	"github.com/jetsetilly/gopherflash/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "flash", "unknown command byte 12")
	log.Log(logger.Allow, "nvram", "no nvram file for amd_29f040")

	both := "flash: unknown command byte 12\nnvram: no nvram file for amd_29f040\n"

	tests := []struct {
		n   int
		exp string
	}{
		{n: 100, exp: both},
		{n: 2, exp: both},
		{n: 1, exp: "nvram: no nvram file for amd_29f040\n"},
		{n: 0, exp: ""},
	}

	for _, tt := range tests {
		w.Reset()
		log.Tail(w, tt.n)
		test.ExpectEquality(t, w.String(), tt.exp, tt.n)
	}
}

// a permission that can be changed during the test
type switchable struct {
	on bool
}

func (p *switchable) AllowLogging() bool {
	return p.on
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Deny, "tag", "denied")
	log.Log(nil, "tag", "nil permission")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	p := &switchable{}
	log.Log(p, "tag", "off")
	p.on = true
	log.Log(p, "tag", "on")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: on\n")
}

// errors and fmt.Stringer implementations are logged with the Error() and
// String() functions. anything else is logged with the %v verb
type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestDetail(t *testing.T) {
	err := errors.New("test error")

	tests := []struct {
		detail any
		exp    string
	}{
		{detail: err, exp: "tag: test error\n"},
		{detail: stringerTest{}, exp: "tag: stringer test\n"},
		{detail: 100, exp: "tag: 100\n"},
		{detail: "multi\nline", exp: "tag: multiline\n"},
	}

	for _, tt := range tests {
		log := logger.NewLogger(100)
		w := &strings.Builder{}
		log.Log(logger.Allow, "tag", tt.detail)
		log.Write(w)
		test.ExpectEquality(t, w.String(), tt.exp)
	}

	log := logger.NewLogger(100)
	w := &strings.Builder{}
	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "flash", "unexpected byte")
	log.Log(logger.Allow, "flash", "unexpected byte")
	log.Log(logger.Allow, "flash", "unexpected byte")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "flash: unexpected byte (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "a: 1\n")

	w.Reset()
	log.Log(logger.Allow, "b", "2")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "b: 2\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.SetEcho(w, false)
	log.Log(logger.Allow, "echo", "on")
	test.ExpectEquality(t, w.String(), "echo: on\n")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "echo", "off")
	test.ExpectEquality(t, w.String(), "echo: on\n")
}
