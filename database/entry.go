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

// Entry is implemented by every type that is stored in a database.
type Entry interface {
	// EntryType returns the string that identifies the type in the database
	// file. Must be registered with RegisterEntryType()
	EntryType() string

	// a human readable summary of the entry
	String() string

	// the fields to store in the database file
	Serialise() ([]string, error)

	// called when the entry is removed from the database
	CleanUp() error
}

// Deserialiser creates an Entry from the fields in the database file.
type Deserialiser func(fields []string) (Entry, error)

// RegisterEntryType tells the session what entry types it may find in the
// database and how to create them.
func (db *Session) RegisterEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return errorf("entry type already registered (%s)", id)
	}
	db.entryTypes[id] = des
	return nil
}
