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

package environment

import (
	"github.com/jetsetilly/gopherflash/hardware/preferences"
)

// Label identifies an environment in log output and permission checks.
type Label string

// List of known labels.
const (
	// the interactive or scripted device driven from the command line
	MainEmulation = Label("")

	// devices created by the regression system. they never log
	Regression = Label("regression")
)

// Environment is shared by a flash device and everything that drives it. It
// carries the preferences that alter device behaviour.
type Environment struct {
	Label Label
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// A nil prefs argument creates a set of default preferences that are not
// backed by a file. Environments that share a non-nil prefs value see each
// other's changes.
func NewEnvironment(label Label, prefs *preferences.Preferences) *Environment {
	env := &Environment{
		Label: label,
		Prefs: prefs,
	}
	if env.Prefs == nil {
		env.Prefs = preferences.NewDefaultPreferences()
	}
	return env
}

// Normalise resets the preferences to their default values so that a script
// produces the same result on every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation logs and then only if the LogProtocol preference is set.
func (env *Environment) AllowLogging() bool {
	if !env.IsMainEmulation() {
		return false
	}
	return env.Prefs.LogProtocol.Get().(bool)
}

// IsMainEmulation returns true if the environment has the MainEmulation label.
func (env *Environment) IsMainEmulation() bool {
	return env.IsEmulation(MainEmulation)
}

// IsEmulation returns true if the environment has the specified label.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}
