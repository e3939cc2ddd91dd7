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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherflash/modalflag"
	"github.com/jetsetilly/gopherflash/test"
)

func newModes(t *testing.T, args ...string) *modalflag.Modes {
	t.Helper()
	md := &modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs(args)
	md.AddSubModes("MONITOR", "RUN", "LIST", "INFO")
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	return md
}

func TestList(t *testing.T) {
	md := newModes(t, "list", "-width", "16")
	test.DemandEquality(t, md.Mode(), "LIST")

	out := &strings.Builder{}
	test.ExpectSuccess(t, list(md, out))
	test.ExpectSuccess(t, strings.Contains(out.String(), "intel_e28f400b"))
	test.ExpectFailure(t, strings.Contains(out.String(), "amd_29f040"))
}

func TestInfo(t *testing.T) {
	md := newModes(t, "info", "AMD_29F040")
	test.DemandEquality(t, md.Mode(), "INFO")

	out := &strings.Builder{}
	test.ExpectSuccess(t, info(md, out))
	test.ExpectSuccess(t, strings.Contains(out.String(), "amd_29f040"))

	md = newModes(t, "info")
	test.ExpectFailure(t, info(md, out))

	md = newModes(t, "info", "no_such_chip")
	test.ExpectFailure(t, info(md, out))
}

func TestRunScript(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "script")
	err := os.WriteFile(fn, []byte("unlock program 10 00\nunlock erase 0\nadvance 1s\n"), 0600)
	test.DemandSuccess(t, err)

	// the digest of an erased amd_29f010 is the same as the digest after the
	// program and erase in the script
	md := newModes(t, "run", "-variant", "amd_29f010", fn)
	erased := &strings.Builder{}
	test.ExpectSuccess(t, runScript(md, erased))

	empty := filepath.Join(t.TempDir(), "empty")
	test.DemandSuccess(t, os.WriteFile(empty, []byte{}, 0600))

	md = newModes(t, "run", "-variant", "amd_29f010", empty)
	out := &strings.Builder{}
	test.ExpectSuccess(t, runScript(md, out))

	lines := strings.Split(strings.TrimSpace(erased.String()), "\n")
	test.ExpectEquality(t, lines[len(lines)-1], strings.TrimSpace(out.String()))
}
