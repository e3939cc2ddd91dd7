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

// Package future conceptualises events that complete some time after the
// stimulus that caused them. For example, when a program writes the final
// byte of a flash erase sequence, the chip reports that it is busy for some
// hundreds of milliseconds before the erase is complete.
//
// The Ticker type coordinates scheduled events on a virtual clock. Events are
// created and registered with the Schedule() function. The function takes the
// delay period, a callback function and a label (useful for identifying the
// event in debuggers) as arguments. The callback is called once the delay
// period has expired.
//
// The Advance() function of the Ticker type is used to indicate that time has
// passed. It is up to the users of the package to govern how often and by how
// much the clock is advanced. Payloads run in deadline order, on the same
// goroutine as the call to Advance(), with the clock set to the deadline of
// the event being run.
//
// To help keep code clean, two interfaces to the Ticker type are provided, the
// Scheduler and Observer. The Scheduler is used in those places where an event
// is only ever scheduled. The Observer interface meanwhile is useful for
// debuggers.
package future
