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

package flash

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jetsetilly/gopherflash/curated"
	"github.com/jetsetilly/gopherflash/environment"
	"github.com/jetsetilly/gopherflash/hardware/flash/storage"
	"github.com/jetsetilly/gopherflash/hardware/flash/variant"
	"github.com/jetsetilly/gopherflash/hardware/future"
	"github.com/jetsetilly/gopherflash/logger"
)

// Sentinal errors returned by NewDevice() and the bus adapters.
const (
	NoScheduler = "flash: %s: no scheduler"
	WrongWidth  = "flash: %s: is a %d-bit device not %d-bit"
)

// the tag used for log entries
const logTag = "flash"

// pending records the payload of the scheduled event so that it can be
// rescheduled after a snapshot is plumbed into a new scheduler
type pending struct {
	payload func(*Device)
	label   string
	ev      *future.Event
}

// Device is a single flash chip.
type Device struct {
	env   *environment.Environment
	desc  variant.Descriptor
	sched future.Scheduler

	// the non-volatile contents of the chip
	buf *storage.Buffer

	mode       Mode
	status     uint8
	bank       uint8
	masterLock bool

	// the region being erased by an AMD style erase command. in bytes and
	// only valid in the EraseAMD4 mode
	eraseBase uint32
	eraseSize int

	// number of units written in the WritePageAtmel mode
	byteCount int

	// the most recently scheduled event. nil if nothing has been scheduled
	pending *pending

	// time remaining on the pending event when the snapshot was taken
	resume time.Duration

	// incremented on every hard reset. events scheduled in an earlier
	// generation have no effect
	generation int
}

// NewDevice is the preferred method of initialisation for the Device type. The
// descriptor is validated and an error returned if it is not usable. The
// contents of the new device are in the erased state.
func NewDevice(env *environment.Environment, desc variant.Descriptor, sched future.Scheduler) (*Device, error) {
	err := desc.Validate()
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, curated.Errorf(NoScheduler, desc.Name)
	}

	d := &Device{
		env:   env,
		desc:  desc,
		sched: sched,
		buf:   storage.NewBuffer(desc.Size),
	}
	d.Reset()

	return d, nil
}

// Reset is the equivalent of a hard reset. The contents of the flash are
// unaffected. Any pending erase event is left to expire but will have no
// effect when it does.
func (d *Device) Reset() {
	d.mode = Normal
	d.status = statusReady
	d.bank = 0
	d.masterLock = false
	d.eraseBase = 0
	d.eraseSize = 0
	d.byteCount = 0
	d.generation++
}

func (d *Device) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: mode=%s status=%02x bank=%02x", d.desc.Name, d.mode, d.status, d.bank))
	if d.masterLock {
		s.WriteString(" locked")
	}
	if d.mode == EraseAMD4 {
		s.WriteString(fmt.Sprintf(" erasing=%#x+%#x", d.eraseBase, d.eraseSize))
	}
	if d.mode == WritePageAtmel {
		s.WriteString(fmt.Sprintf(" page=%d/%d", d.byteCount, d.desc.PageSize))
	}
	if d.Busy() {
		s.WriteString(fmt.Sprintf(" [%s]", d.pending.ev))
	}
	return s.String()
}

// Descriptor returns the descriptor of the chip being emulated.
func (d *Device) Descriptor() variant.Descriptor {
	return d.desc
}

// Mode returns the current mode of the command state machine.
func (d *Device) Mode() Mode {
	return d.mode
}

// Status returns the status register. Unlike a read in the ReadStatus mode
// this does not affect the toggle bits.
func (d *Device) Status() uint8 {
	return d.status
}

// Bank returns the currently selected 64K bank.
func (d *Device) Bank() uint8 {
	return d.bank
}

// MasterLock returns the state of the master lock.
func (d *Device) MasterLock() bool {
	return d.masterLock
}

// EraseRegion returns the region (in bytes) being erased. Only meaningful in
// the EraseAMD4 mode.
func (d *Device) EraseRegion() (uint32, int) {
	return d.eraseBase, d.eraseSize
}

// Busy returns true if an erase or status event is still to complete.
func (d *Device) Busy() bool {
	return d.pending != nil && d.pending.ev != nil && d.pending.ev.Active()
}

// Remaining returns the time until the pending event completes. Returns zero
// if the device is not busy.
func (d *Device) Remaining() time.Duration {
	if !d.Busy() {
		return 0
	}
	return d.pending.ev.Remaining()
}

// Snapshot creates a copy of the device. The copy is detached from the
// scheduler and must be plumbed in with Plumb() before it is used.
func (d *Device) Snapshot() *Device {
	cp := *d
	cp.buf = d.buf.Snapshot()
	cp.sched = nil
	if d.Busy() {
		cp.pending = &pending{
			payload: d.pending.payload,
			label:   d.pending.label,
			ev:      nil,
		}
		cp.resume = d.pending.ev.Remaining()
	} else {
		cp.pending = nil
	}
	return &cp
}

// Plumb attaches a snapshotted device to a scheduler. An event that was
// pending when the snapshot was taken is rescheduled with the time that was
// remaining.
func (d *Device) Plumb(env *environment.Environment, sched future.Scheduler) {
	d.env = env
	d.sched = sched
	if d.pending != nil && d.pending.ev == nil {
		d.arm(d.resume, d.pending.payload, d.pending.label)
	}
	d.resume = 0
}

// Peek returns the byte at the address without regard to the current mode.
// The bank is not applied.
func (d *Device) Peek(address uint32) uint8 {
	return d.buf.Peek(address)
}

// Poke sets the byte at the address without regard to the current mode. The
// bank is not applied.
func (d *Device) Poke(address uint32, data uint8) {
	d.buf.Poke(address, data)
}

// Fill sets every byte of the flash to the value without regard to the
// current mode.
func (d *Device) Fill(v uint8) {
	d.buf.Fill(v)
}

// PopulateDefault initialises the contents of the flash from the source data.
// For 16-bit devices the source is a sequence of little-endian words. Any
// part of the flash not covered by the source is erased.
func (d *Device) PopulateDefault(source []uint8) {
	d.buf.PopulateDefault(source, d.desc.Width == 16)
}

// Load the entire contents of the flash from the io.Reader.
func (d *Device) Load(r io.Reader) error {
	return d.buf.Load(r)
}

// Save the entire contents of the flash to the io.Writer.
func (d *Device) Save(w io.Writer) error {
	return d.buf.Save(w)
}

// IsSaved returns true if the contents of the flash have not changed since the
// most recent Load() or Save().
func (d *Device) IsSaved() bool {
	return d.buf.IsSaved()
}

// Contents returns a copy of the entire flash contents.
func (d *Device) Contents() []uint8 {
	return d.buf.Bytes()
}

// the number of bytes in a single bus access
func (d *Device) unitBytes() uint32 {
	return uint32(d.desc.Width / 8)
}

// the address of the first byte of the unit address, wrapped to the size of
// the device
func (d *Device) byteAddress(address uint32) uint32 {
	return (address * d.unitBytes()) & uint32(d.desc.Size-1)
}

// the unit at the address. 16-bit units are stored big-endian
func (d *Device) fetch(address uint32) uint16 {
	if d.desc.Width == 16 {
		b := d.byteAddress(address)
		return uint16(d.buf.Peek(b))<<8 | uint16(d.buf.Peek(b+1))
	}
	return uint16(d.buf.Peek(address))
}

// program the unit at the address. if the strict program preference is set
// then bits can only be cleared
func (d *Device) commit(address uint32, data uint16) {
	if d.env.Prefs.StrictProgram.Get().(bool) {
		data &= d.fetch(address)
	}
	if d.desc.Width == 16 {
		b := d.byteAddress(address)
		d.buf.Poke(b, uint8(data>>8))
		d.buf.Poke(b+1, uint8(data))
		return
	}
	d.buf.Poke(address, uint8(data))
}

// arm schedules the payload to run after the delay. any previously scheduled
// event is dropped
func (d *Device) arm(delay time.Duration, payload func(*Device), label string) {
	if d.pending != nil && d.pending.ev != nil {
		d.pending.ev.Drop()
	}

	p := &pending{
		payload: payload,
		label:   label,
	}
	d.pending = p

	gen := d.generation
	p.ev = d.sched.Schedule(delay, func() {
		if gen != d.generation {
			logger.Logf(d.env, logTag, "%s: %s completed after reset", d.desc.Name, label)
			return
		}
		payload(d)
	}, label)
}
