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

package preferences

import (
	"github.com/jetsetilly/gopherflash/curated"
	"github.com/jetsetilly/gopherflash/prefs"
	"github.com/jetsetilly/gopherflash/resources"
)

// DefaultVariant is the flash chip used when no other chip is specified.
const DefaultVariant = "amd_29f040"

// Preferences defines and collates all the preference values used by the
// flash emulation.
type Preferences struct {
	// nil if the preferences are not backed by a file
	dsk *prefs.Disk

	// program operations AND the new value with the existing contents of
	// the flash, as real NOR flash does. when false the new value simply
	// replaces the existing value
	StrictProgram prefs.Bool

	// log unexpected command bytes and unsupported operations
	LogProtocol prefs.Bool

	// the chip to emulate when none is specified on the command line
	Variant prefs.String

	// the number of log entries shown by the monitor's LOG command
	LogTail prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file in the resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFile(pth)
}

// NewPreferencesFile is like NewPreferences() but with an explicit path to the
// preferences file.
func NewPreferencesFile(pth string) (*Preferences, error) {
	p := NewDefaultPreferences()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.flash.strictprogram", &p.StrictProgram)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.flash.logprotocol", &p.LogProtocol)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.flash.variant", &p.Variant)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("monitor.logtail", &p.LogTail)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// a file that isn't a preferences file is not fatal
		if !curated.Is(err, prefs.InvalidFile) {
			return nil, err
		}
	}

	return p, nil
}

// NewDefaultPreferences returns preferences set to the default values that are
// not backed by a file. Load() and Save() have no effect.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.StrictProgram.Set(false)
	p.LogProtocol.Set(true)
	p.Variant.Set(DefaultVariant)
	p.LogTail.Set(20)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
