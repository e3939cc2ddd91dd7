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

package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherflash/curated"
	"github.com/jetsetilly/gopherflash/digest"
	"github.com/jetsetilly/gopherflash/environment"
	"github.com/jetsetilly/gopherflash/hardware/flash"
	"github.com/jetsetilly/gopherflash/hardware/flash/variant"
	"github.com/jetsetilly/gopherflash/hardware/future"
	"github.com/jetsetilly/gopherflash/logger"
)

// Sentinal errors returned by Execute() and RunScript().
const (
	UnknownCommand  = "monitor: unknown command: %s"
	MissingArgument = "monitor: %s: missing argument"
	InvalidArgument = "monitor: %s: invalid argument: %s"
	ScriptError     = "monitor: line %d: %v"
)

// Monitor interprets commands for a single flash device.
type Monitor struct {
	env *environment.Environment
	dev *flash.Device
	tck *future.Ticker
	dig *digest.Flash

	output io.Writer

	// set by the QUIT command
	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The ticker should be the scheduler the device was created with.
func NewMonitor(env *environment.Environment, dev *flash.Device, tck *future.Ticker, output io.Writer) *Monitor {
	return &Monitor{
		env:    env,
		dev:    dev,
		tck:    tck,
		dig:    digest.NewFlash(),
		output: output,
	}
}

// Digest returns the running digest of the flash contents.
func (mon *Monitor) Digest() *digest.Flash {
	return mon.dig
}

// Quit returns true once the QUIT command has been executed.
func (mon *Monitor) Quit() bool {
	return mon.quit
}

func (mon *Monitor) printf(pattern string, args ...any) {
	fmt.Fprintf(mon.output, pattern, args...)
}

// RunScript executes every line from the io.Reader. Execution stops at the
// first error or when the QUIT command is executed.
func (mon *Monitor) RunScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if err := mon.Execute(scanner.Text()); err != nil {
			return curated.Errorf(ScriptError, line, err)
		}
		if mon.quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute a single command line. Empty lines and lines beginning with # are
// ignored.
func (mon *Monitor) Execute(input string) error {
	input = strings.TrimSpace(input)
	if input == "" || strings.HasPrefix(input, "#") {
		return nil
	}

	tokens := strings.Fields(input)
	keyword := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch keyword {
	case cmdRead:
		return mon.read(keyword, args, true)
	case cmdPeek:
		return mon.read(keyword, args, false)
	case cmdWrite:
		return mon.write(keyword, args, true)
	case cmdPoke:
		return mon.write(keyword, args, false)
	case cmdDump:
		return mon.dump(keyword, args)

	case cmdFill:
		if len(args) < 1 {
			return curated.Errorf(MissingArgument, keyword)
		}
		v, err := parseByte(keyword, args[0])
		if err != nil {
			return err
		}
		mon.dev.Fill(v)

	case cmdAdvance:
		if len(args) < 1 {
			return curated.Errorf(MissingArgument, keyword)
		}
		d, err := time.ParseDuration(args[0])
		if err != nil || d < 0 {
			return curated.Errorf(InvalidArgument, keyword, args[0])
		}
		mon.tck.Advance(d)
		mon.printf("%s\n", mon.dev)

	case cmdReset:
		mon.dev.Reset()
		mon.printf("%s\n", mon.dev)

	case cmdState:
		mon.printf("%s\n", mon.dev)
		mon.printf("time: %s\n", mon.tck.Now())
		mon.printf("%s", mon.tck)

	case cmdLoad:
		if len(args) < 1 {
			return curated.Errorf(MissingArgument, keyword)
		}
		f, err := os.Open(args[0])
		if err != nil {
			return curated.Errorf(InvalidArgument, keyword, err)
		}
		defer f.Close()
		if err := mon.dev.Load(f); err != nil {
			return curated.Errorf(InvalidArgument, keyword, err)
		}

	case cmdSave:
		if len(args) < 1 {
			return curated.Errorf(MissingArgument, keyword)
		}
		f, err := os.Create(args[0])
		if err != nil {
			return curated.Errorf(InvalidArgument, keyword, err)
		}
		defer f.Close()
		if err := mon.dev.Save(f); err != nil {
			return curated.Errorf(InvalidArgument, keyword, err)
		}

	case cmdDigest:
		if len(args) > 0 {
			if strings.ToUpper(args[0]) != "RESET" {
				return curated.Errorf(InvalidArgument, keyword, args[0])
			}
			mon.dig.ResetDigest()
		} else {
			mon.dig.Update(mon.dev.Contents())
		}
		mon.printf("%s\n", mon.dig.Hash())

	case cmdUnlock:
		return mon.unlock(keyword, args)

	case cmdMemviz:
		if len(args) < 1 {
			return curated.Errorf(MissingArgument, keyword)
		}
		f, err := os.Create(args[0])
		if err != nil {
			return curated.Errorf(InvalidArgument, keyword, err)
		}
		defer f.Close()
		v := struct {
			Descriptor variant.Descriptor
			State      state
		}{
			Descriptor: mon.dev.Descriptor(),
			State:      newState(mon.dev),
		}
		memviz.Map(f, &v)

	case cmdLog:
		n := mon.env.Prefs.LogTail.Get().(int)
		if len(args) > 0 {
			v, err := parseNumber(args[0])
			if err != nil {
				return curated.Errorf(InvalidArgument, keyword, args[0])
			}
			n = int(v)
		}
		logger.Tail(mon.output, n)

	case cmdHelp:
		if len(args) == 0 {
			mon.printf("%s\n", helpOverview())
			return nil
		}
		h, ok := helpKeyword(strings.ToUpper(args[0]))
		if !ok {
			return curated.Errorf(UnknownCommand, args[0])
		}
		mon.printf("%s\n", h)

	case cmdQuit:
		mon.quit = true

	default:
		return curated.Errorf(UnknownCommand, tokens[0])
	}

	return nil
}

func (mon *Monitor) read(keyword string, args []string, viaDevice bool) error {
	if len(args) < 1 {
		return curated.Errorf(MissingArgument, keyword)
	}
	address, err := parseAddress(keyword, args[0])
	if err != nil {
		return err
	}
	count := uint32(1)
	if len(args) > 1 {
		count, err = parseAddress(keyword, args[1])
		if err != nil {
			return err
		}
	}

	width := mon.dev.Descriptor().Width
	for i := uint32(0); i < count; i++ {
		if viaDevice {
			v := mon.dev.Read(address + i)
			if width == 16 {
				mon.printf("%06x: %04x\n", address+i, v)
			} else {
				mon.printf("%06x: %02x\n", address+i, v)
			}
		} else {
			mon.printf("%06x: %02x\n", address+i, mon.dev.Peek(address+i))
		}
	}
	return nil
}

func (mon *Monitor) write(keyword string, args []string, viaDevice bool) error {
	if len(args) < 2 {
		return curated.Errorf(MissingArgument, keyword)
	}
	address, err := parseAddress(keyword, args[0])
	if err != nil {
		return err
	}

	// parse all values before writing any of them
	values := make([]uint16, 0, len(args)-1)
	for _, a := range args[1:] {
		v, err := parseNumber(a)
		if err != nil || v > 0xffff || (!viaDevice && v > 0xff) {
			return curated.Errorf(InvalidArgument, keyword, a)
		}
		values = append(values, uint16(v))
	}

	for i, v := range values {
		if viaDevice {
			mon.dev.Write(address+uint32(i), v)
		} else {
			mon.dev.Poke(address+uint32(i), uint8(v))
		}
	}
	return nil
}

func (mon *Monitor) dump(keyword string, args []string) error {
	if len(args) < 2 {
		return curated.Errorf(MissingArgument, keyword)
	}
	address, err := parseAddress(keyword, args[0])
	if err != nil {
		return err
	}
	count, err := parseAddress(keyword, args[1])
	if err != nil {
		return err
	}

	s := strings.Builder{}
	for i := uint32(0); i < count; i++ {
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%06x:", address+i))
		}
		s.WriteString(fmt.Sprintf(" %02x", mon.dev.Peek(address+i)))
	}
	if count > 0 {
		s.WriteString("\n")
	}
	mon.printf("%s", s.String())
	return nil
}

// state is a summary of a device that is suitable for visualisation with
// memviz
type state struct {
	Mode       string
	Status     uint8
	Bank       uint8
	MasterLock bool
	EraseBase  uint32
	EraseSize  int
	Busy       bool
	Remaining  time.Duration
}

func newState(dev *flash.Device) state {
	base, size := dev.EraseRegion()
	return state{
		Mode:       dev.Mode().String(),
		Status:     dev.Status(),
		Bank:       dev.Bank(),
		MasterLock: dev.MasterLock(),
		EraseBase:  base,
		EraseSize:  size,
		Busy:       dev.Busy(),
		Remaining:  dev.Remaining(),
	}
}

// numbers are hexadecimal by default. a # prefix indicates a decimal number
// and the 0x and $ prefixes are accepted for hexadecimal numbers
func parseNumber(s string) (uint64, error) {
	switch {
	case strings.HasPrefix(s, "#"):
		return strconv.ParseUint(s[1:], 10, 32)
	case strings.HasPrefix(s, "$"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
	}
	return strconv.ParseUint(s, 16, 32)
}

func parseAddress(keyword string, s string) (uint32, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, curated.Errorf(InvalidArgument, keyword, s)
	}
	return uint32(v), nil
}

func parseByte(keyword string, s string) (uint8, error) {
	v, err := parseNumber(s)
	if err != nil || v > 0xff {
		return 0, curated.Errorf(InvalidArgument, keyword, s)
	}
	return uint8(v), nil
}
