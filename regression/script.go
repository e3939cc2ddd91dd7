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
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopherflash/curated"
	"github.com/jetsetilly/gopherflash/database"
	"github.com/jetsetilly/gopherflash/digest"
	"github.com/jetsetilly/gopherflash/environment"
	"github.com/jetsetilly/gopherflash/hardware/flash"
	"github.com/jetsetilly/gopherflash/hardware/flash/variant"
	"github.com/jetsetilly/gopherflash/hardware/future"
	"github.com/jetsetilly/gopherflash/monitor"
)

const scriptEntryID = "script"

const (
	scriptFieldVariant int = iota
	scriptFieldMode
	scriptFieldScript
	scriptFieldDigest
	scriptFieldNotes
	numScriptFields
)

// ScriptRegression is a monitor script run against a flash chip.
type ScriptRegression struct {
	Variant string
	Mode    DigestMode
	Script  string
	Notes   string

	// the digest recorded when the regression was added
	digest string
}

// NewScriptRegression is the preferred method of initialisation for the
// ScriptRegression type.
func NewScriptRegression(chip string, script string, mode DigestMode) (*ScriptRegression, error) {
	if _, err := variant.Lookup(chip); err != nil {
		return nil, curated.Errorf(RegressionError, err)
	}
	if _, err := os.Stat(script); err != nil {
		return nil, curated.Errorf(RegressionError, err)
	}
	if mode == DigestUndefined {
		mode = DigestFinal
	}

	return &ScriptRegression{
		Variant: chip,
		Mode:    mode,
		Script:  script,
	}, nil
}

func deserialiseScriptEntry(fields []string) (database.Entry, error) {
	if len(fields) != numScriptFields {
		return nil, curated.Errorf(RegressionError, "wrong number of fields in script entry")
	}

	mode, err := ParseDigestMode(fields[scriptFieldMode])
	if err != nil {
		return nil, err
	}

	return &ScriptRegression{
		Variant: fields[scriptFieldVariant],
		Mode:    mode,
		Script:  fields[scriptFieldScript],
		digest:  fields[scriptFieldDigest],
		Notes:   fields[scriptFieldNotes],
	}, nil
}

// EntryType implements the database.Entry interface.
func (reg *ScriptRegression) EntryType() string {
	return scriptEntryID
}

// Serialise implements the database.Entry interface.
func (reg *ScriptRegression) Serialise() ([]string, error) {
	return []string{
		reg.Variant,
		reg.Mode.String(),
		reg.Script,
		reg.digest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface. The copy of the script is
// removed.
func (reg *ScriptRegression) CleanUp() error {
	err := os.Remove(reg.Script)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (reg *ScriptRegression) String() string {
	s := fmt.Sprintf("[%s] %s (%s)", reg.Variant, filepath.Base(reg.Script), reg.Mode)
	if reg.Notes != "" {
		s = fmt.Sprintf("%s [%s]", s, reg.Notes)
	}
	return s
}

// Digest returns the digest recorded when the regression was added.
func (reg *ScriptRegression) Digest() string {
	return reg.digest
}

// copy the script into the scripts directory and use the copy from now on
func (reg *ScriptRegression) copyScript() error {
	_, scripts, err := location()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(scripts, 0700); err != nil {
		return err
	}

	data, err := os.ReadFile(reg.Script)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(scripts, uniqueFilename(reg.Variant, reg.Script))
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	reg.Script = f.Name()

	return nil
}

// run the script and return the resulting digest
func (reg *ScriptRegression) run() (string, error) {
	desc, err := variant.Lookup(reg.Variant)
	if err != nil {
		return "", err
	}

	env := environment.NewEnvironment(environment.Regression, nil)
	env.Normalise()

	tck := future.NewTicker(string(environment.Regression))
	dev, err := flash.NewDevice(env, desc, tck)
	if err != nil {
		return "", err
	}

	f, err := os.Open(reg.Script)
	if err != nil {
		return "", err
	}
	defer f.Close()

	mon := monitor.NewMonitor(env, dev, tck, io.Discard)
	dig := digest.NewFlash()

	switch reg.Mode {
	case DigestEvery:
		scanner := bufio.NewScanner(f)
		line := 0
		for scanner.Scan() && !mon.Quit() {
			line++
			if err := mon.Execute(scanner.Text()); err != nil {
				return "", curated.Errorf(monitor.ScriptError, line, err)
			}
			dig.Update(dev.Contents())
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
	default:
		if err := mon.RunScript(f); err != nil {
			return "", err
		}
		dig.Update(dev.Contents())
	}

	return dig.Hash(), nil
}

func (reg *ScriptRegression) regress(newRegression bool, output io.Writer, message string) (bool, string, error) {
	fmt.Fprint(output, message)

	if newRegression {
		orig := reg.Script
		if err := reg.copyScript(); err != nil {
			return false, "", err
		}
		hash, err := reg.run()
		if err != nil {
			_ = reg.CleanUp()
			reg.Script = orig
			return false, "", err
		}
		reg.digest = hash
		return true, "", nil
	}

	hash, err := reg.run()
	if err != nil {
		return false, "", err
	}
	if hash != reg.digest {
		return false, fmt.Sprintf("digest mismatch: expected %s, got %s", reg.digest, hash), nil
	}

	return true, "", nil
}
