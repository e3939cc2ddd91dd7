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

package environment_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherflash/environment"
	"github.com/jetsetilly/gopherflash/logger"
	"github.com/jetsetilly/gopherflash/test"
)

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	env := environment.NewEnvironment(environment.MainEmulation, nil)
	test.ExpectSuccess(t, env.AllowLogging())
	log.Log(env, "flash", "allowed")

	test.ExpectSuccess(t, env.Prefs.LogProtocol.Set(false))
	test.ExpectFailure(t, env.AllowLogging())
	log.Log(env, "flash", "prohibited")

	// normalise restores logging
	env.Normalise()
	test.ExpectSuccess(t, env.AllowLogging())

	// secondary emulations never log
	sec := environment.NewEnvironment("comparison", nil)
	test.ExpectFailure(t, sec.AllowLogging())
	test.ExpectSuccess(t, sec.IsEmulation("comparison"))
	log.Log(sec, "flash", "secondary")

	log.Write(w)
	test.ExpectEquality(t, w.String(), "flash: allowed\n")
}

func TestRegressionLabel(t *testing.T) {
	env := environment.NewEnvironment(environment.Regression, nil)
	test.ExpectFailure(t, env.IsMainEmulation())
	test.ExpectFailure(t, env.AllowLogging())
}
