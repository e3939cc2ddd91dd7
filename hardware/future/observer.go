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

package future

// Observer exposes only the function relating to the observing of events.
type Observer interface {
	Observe(label string) (*Event, bool)
}

// Observe looks for the most recently scheduled active event with the
// specified label. If it is found then it is returned along with the value
// true to indicate a match. If it is not found, then the most recently
// scheduled event (with whatever label) is returned along with false to
// indicate no match.
func (tck *Ticker) Observe(label string) (*Event, bool) {
	var recent *Event
	var match *Event
	for _, ev := range tck.events {
		if recent == nil || ev.seq > recent.seq {
			recent = ev
		}
		if ev.label == label && (match == nil || ev.seq > match.seq) {
			match = ev
		}
	}
	if match != nil {
		return match, true
	}
	return recent, false
}
