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

// Package database is a very simple way of storing structured entries of
// arbitrary type in a flat file. Each line of the file is one entry.
//
// Use of a database requires a session, started with StartSession() and
// ended with EndSession():
//
//	db, err := database.StartSession(path, database.ActivityCreating, initSession)
//	if err != nil {
//		return err
//	}
//	defer db.EndSession(true)
//
// The activity describes what will happen during the session. A database file
// that does not exist is only created with ActivityCreating. Changes are only
// written to disk if the session was started with ActivityModifying or
// ActivityCreating and EndSession() is called with true.
//
// The initialisation function registers the entry types that might be found
// in the database:
//
//	func initSession(db *database.Session) error {
//		return db.RegisterEntryType("script", deserialiseScript)
//	}
//
// Entries are deserialised during StartSession(). The deserialiser is given
// the fields of the entry, not including the key and type fields that the
// database adds itself.
package database
