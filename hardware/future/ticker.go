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

import (
	"slices"
	"strings"
	"time"
)

// Ticker is the virtual clock and the queue of pending events.
type Ticker struct {
	Label string

	now time.Duration
	seq uint64

	// active events. not kept in any particular order
	events []*Event
}

// NewTicker is the preferred method of initialisation for the Ticker type.
func NewTicker(label string) *Ticker {
	return &Ticker{
		Label:  label,
		events: make([]*Event, 0, 4),
	}
}

func (tck *Ticker) String() string {
	s := strings.Builder{}
	for _, ev := range tck.sorted() {
		if tck.Label != "" {
			s.WriteString(tck.Label)
			s.WriteString(": ")
		}
		s.WriteString(ev.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Now returns the current time on the virtual clock.
func (tck *Ticker) Now() time.Duration {
	return tck.now
}

// Pending returns the number of active events.
func (tck *Ticker) Pending() int {
	return len(tck.events)
}

func (tck *Ticker) sorted() []*Event {
	s := slices.Clone(tck.events)
	slices.SortFunc(s, func(a, b *Event) int {
		if a.deadline != b.deadline {
			if a.deadline < b.deadline {
				return -1
			}
			return 1
		}
		if a.seq < b.seq {
			return -1
		}
		return 1
	})
	return s
}

// Advance moves the clock forward by the duration, running the payload of
// every event that completes in that time. Returns true if any payload was
// run.
//
// A payload may schedule new events. If the new event completes before the
// end of the advance then it is also run.
func (tck *Ticker) Advance(d time.Duration) bool {
	if d < 0 {
		d = 0
	}
	target := tck.now + d
	ran := false

	for {
		var next *Event
		for _, ev := range tck.events {
			if ev.deadline > target {
				continue
			}
			if next == nil || ev.deadline < next.deadline || (ev.deadline == next.deadline && ev.seq < next.seq) {
				next = ev
			}
		}
		if next == nil {
			break
		}

		tck.now = next.deadline
		tck.drop(next)
		next.payload()
		ran = true
	}

	tck.now = target
	return ran
}

func (tck *Ticker) drop(ev *Event) {
	ev.active = false
	tck.events = slices.DeleteFunc(tck.events, func(e *Event) bool {
		return e == ev
	})
}
