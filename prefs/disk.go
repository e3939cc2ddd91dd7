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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherflash/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// Sentinal errors returned by the Disk type.
const (
	NoPrefsFile   = "prefs: file does not exist (%s)"
	InvalidFile   = "prefs: file is not a valid preferences file (%s)"
	DuplicateKey  = "prefs: key already added (%s)"
	DiskIOError   = "prefs: %v"
	keySeparator  = " :: "
	lineSeparator = "\n"
)

// Disk represents preference values as stored on disk. More than one Disk
// instance can use the same file. Entries added to other instances are
// preserved when the file is saved.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s%s", k, keySeparator, dsk.entries[k], lineSeparator))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// read the file into a map of key/value strings.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(DiskIOError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidFile, dsk.path)
	}

	data := make(map[string]string)
	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySeparator, 2)
		if len(kv) != 2 || isDefunct(kv[0]) {
			continue
		}
		data[kv[0]] = kv[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskIOError, err)
	}

	return data, nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		data = make(map[string]string)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskIOError, err)
	}

	w := bufio.NewWriter(f)
	w.WriteString(WarningBoilerPlate)
	w.WriteString(lineSeparator)
	for _, k := range keys {
		w.WriteString(k)
		w.WriteString(keySeparator)
		w.WriteString(data[k])
		w.WriteString(lineSeparator)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(DiskIOError, err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf(DiskIOError, err)
	}

	return nil
}

// Load preference values from disk. Values in the top group of the command
// line stack override the values on disk.
//
// If useDefaults is true then a missing preferences file is not an error.
func (dsk *Disk) Load(useDefaults bool) error {
	data, err := dsk.read()
	if err != nil {
		if !(useDefaults && curated.Is(err, NoPrefsFile)) {
			return err
		}
		data = make(map[string]string)
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return err
			}
			continue
		}
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// DoesNotHaveEntry returns true if the file on disk does not contain the key.
// A missing file is treated as not having the entry.
func (dsk *Disk) DoesNotHaveEntry(key string) (bool, error) {
	data, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) {
			return true, nil
		}
		return false, err
	}
	_, ok := data[key]
	return !ok, nil
}
