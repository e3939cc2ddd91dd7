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
	"fmt"
	"strings"
	"time"
)

// Event represents a single occurance of a payload sometime in the future.
type Event struct {
	// the future ticker this event belongs to
	ticker *Ticker

	// label is a short decription describing the future payload
	label string

	// the delay the event was scheduled with and the time at which it
	// completes
	delay    time.Duration
	deadline time.Duration

	// the order in which the event was scheduled. events with the same
	// deadline are run in the order they were scheduled
	seq uint64

	payload func()

	active bool
}

func (ev *Event) String() string {
	label := strings.TrimSpace(ev.label)
	if label == "" {
		label = "[unlabelled event]"
	}
	return fmt.Sprintf("%s -> %v", label, ev.Remaining())
}

// Label returns the label the event was scheduled with.
func (ev *Event) Label() string {
	return ev.label
}

// Active returns true if the payload has not yet been run or the event
// dropped.
func (ev *Event) Active() bool {
	return ev.active
}

// Remaining reports the time remaining before the payload function is run.
// Returns zero if the event is no longer active.
func (ev *Event) Remaining() time.Duration {
	if !ev.active {
		return 0
	}
	return ev.deadline - ev.ticker.now
}

// Force can be used to immediately run the event's payload. Forcing an event
// that is no longer active has no effect.
func (ev *Event) Force() {
	if !ev.active {
		return
	}
	ev.ticker.drop(ev)
	ev.payload()
}

// Drop removes the event from the ticker queue without executing the payload.
// Dropping an event that is no longer active has no effect.
func (ev *Event) Drop() {
	if !ev.active {
		return
	}
	ev.ticker.drop(ev)
}
