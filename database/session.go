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
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/jetsetilly/gopherflash/curated"
)

// Sentinal error returned by all database functions.
const DatabaseError = "database: %v"

func errorf(pattern string, values ...any) error {
	return curated.Errorf(DatabaseError, curated.Errorf(pattern, values...))
}

// Activity describes what will happen during the session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// the first two fields of every line in the database file
const (
	fieldKey int = iota
	fieldType
	numLeaderFields
)

// Session is an open database.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession reads the database file and deserialises every entry with the
// entry types registered by the init function.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && activity == ActivityCreating {
			return db, nil
		}
		return nil, errorf("%v", err)
	}
	defer f.Close()

	if err := db.read(f); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Session) read(r io.Reader) error {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1

	for {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errorf("%v", err)
		}

		line, _ := rd.FieldPos(0)
		if len(rec) < numLeaderFields {
			return errorf("too few fields at line %d", line)
		}

		key, err := strconv.Atoi(rec[fieldKey])
		if err != nil {
			return errorf("invalid key (%s) at line %d", rec[fieldKey], line)
		}
		if _, ok := db.entries[key]; ok {
			return errorf("duplicate key (%d) at line %d", key, line)
		}

		des, ok := db.entryTypes[rec[fieldType]]
		if !ok {
			return errorf("unrecognised entry type (%s) at line %d", rec[fieldType], line)
		}

		ent, err := des(rec[numLeaderFields:])
		if err != nil {
			return errorf("%v", err)
		}
		db.entries[key] = ent
	}

	return nil
}

// EndSession closes the session. Changes are written to disk if commitChanges
// is true and the session was not started with ActivityReading.
func (db *Session) EndSession(commitChanges bool) error {
	if !commitChanges || db.activity == ActivityReading {
		return nil
	}

	f, err := os.Create(db.path)
	if err != nil {
		return errorf("%v", err)
	}

	w := csv.NewWriter(f)
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]
		fields, err := ent.Serialise()
		if err != nil {
			f.Close()
			return errorf("%v", err)
		}
		rec := append([]string{strconv.Itoa(key), ent.EntryType()}, fields...)
		if err := w.Write(rec); err != nil {
			f.Close()
			return errorf("%v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return errorf("%v", err)
	}

	if err := f.Close(); err != nil {
		return errorf("%v", err)
	}
	return nil
}
