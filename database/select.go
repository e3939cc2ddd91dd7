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

// SelectAll entries in the database in key order. The onSelect function
// should return false if the selection should stop. Selection also stops if
// onSelect returns an error, which is returned along with the entry that
// caused it.
func (db *Session) SelectAll(onSelect func(key int, ent Entry) (bool, error)) (Entry, error) {
	return db.SelectKeys(onSelect)
}

// SelectKeys is like SelectAll() except that only entries with the specified
// keys are selected. If no keys are given then all entries are selected. Keys
// that are not in the database are ignored.
func (db *Session) SelectKeys(onSelect func(key int, ent Entry) (bool, error), keys ...int) (Entry, error) {
	filter := make(map[int]bool, len(keys))
	for _, k := range keys {
		filter[k] = true
	}

	var ent Entry
	for _, key := range db.SortedKeyList() {
		if len(filter) > 0 && !filter[key] {
			continue
		}
		ent = db.entries[key]
		cont, err := onSelect(key, ent)
		if err != nil {
			return ent, err
		}
		if !cont {
			break
		}
	}

	return ent, nil
}
