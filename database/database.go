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

package database

import (
	"fmt"
	"io"
	"sort"
)

// arbitrary maximum number of entries
const maxEntries = 1000

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db *Session) SortedKeyList() []int {
	keys := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// List the entries in key order.
func (db *Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]
		if _, err := fmt.Fprintf(output, "%03d [%s] %s\n", key, ent.EntryType(), ent); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
	return err
}

// Add an entry to the database. The entry is given the lowest free key, which
// is returned.
func (db *Session) Add(ent Entry) (int, error) {
	if db.activity == ActivityReading {
		return 0, errorf("cannot add to a database opened for reading")
	}
	if _, ok := db.entryTypes[ent.EntryType()]; !ok {
		return 0, errorf("unrecognised entry type (%s)", ent.EntryType())
	}

	for key := 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			db.entries[key] = ent
			return key, nil
		}
	}

	return 0, errorf("maximum entries exceeded (max %d)", maxEntries)
}

// Get returns the entry with the key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, errorf("key not available (%d)", key)
	}
	return ent, nil
}

// Delete the entry with the key. The CleanUp() function of the entry is
// called before it is removed.
func (db *Session) Delete(key int) error {
	if db.activity == ActivityReading {
		return errorf("cannot delete from a database opened for reading")
	}

	ent, err := db.Get(key)
	if err != nil {
		return err
	}
	if err := ent.CleanUp(); err != nil {
		return errorf("%v", err)
	}
	delete(db.entries, key)

	return nil
}
