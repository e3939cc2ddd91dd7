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

import "time"

// Scheduler exposes only the functions relating to scheduling of events.
type Scheduler interface {
	Schedule(delay time.Duration, payload func(), label string) *Event
}

// Schedule the payload to run once the delay has passed. A negative delay
// causes the payload to be run immediately, in which case the function returns
// nil.
func (tck *Ticker) Schedule(delay time.Duration, payload func(), label string) *Event {
	if delay < 0 {
		payload()
		return nil
	}

	tck.seq++
	ev := &Event{
		ticker:   tck,
		label:    label,
		delay:    delay,
		deadline: tck.now + delay,
		seq:      tck.seq,
		payload:  payload,
		active:   true,
	}
	tck.events = append(tck.events, ev)

	return ev
}
