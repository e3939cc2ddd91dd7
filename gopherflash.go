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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopherflash/environment"
	"github.com/jetsetilly/gopherflash/hardware/flash"
	"github.com/jetsetilly/gopherflash/hardware/flash/nvram"
	"github.com/jetsetilly/gopherflash/hardware/flash/variant"
	"github.com/jetsetilly/gopherflash/hardware/future"
	"github.com/jetsetilly/gopherflash/hardware/preferences"
	"github.com/jetsetilly/gopherflash/logger"
	"github.com/jetsetilly/gopherflash/modalflag"
	"github.com/jetsetilly/gopherflash/monitor"
	"github.com/jetsetilly/gopherflash/prefs"
	"github.com/jetsetilly/gopherflash/regression"
	"github.com/jetsetilly/gopherflash/statsview"
	"github.com/jetsetilly/gopherflash/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the monitor is running
	// interactively and wants ctrl-c to reach the terminal.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// default ctrl-c handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("MONITOR", "RUN", "REGRESS", "LIST", "INFO")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "MONITOR":
		err = runMonitor(md, sync, os.Stdout)

	case "RUN":
		err = runScript(md, os.Stdout)

	case "REGRESS":
		err = regress(md, os.Stdout)

	case "LIST":
		err = list(md, os.Stdout)

	case "INFO":
		err = info(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// the flags shared by the modes that create a device
type deviceFlags struct {
	variant   *string
	image     *string
	fill      *uint32
	nvram     *bool
	prefs     *string
	log       *bool
	statsview *bool
}

func addDeviceFlags(md *modalflag.Modes) deviceFlags {
	f := deviceFlags{
		variant: md.AddString("variant", "", "flash chip to emulate. see LIST mode (default from preferences)"),
		image:   md.AddString("image", "", "file to populate the flash with"),
		fill:    md.AddHex("fill", 0xff, "initial value of every byte in the flash"),
		nvram:   md.AddBool("nvram", false, "keep flash contents in the nvram directory"),
		prefs:   md.AddString("prefs", "", "preferences for this session. eg. hardware.flash.strictprogram::true"),
		log:     md.AddBool("log", false, "echo log to stdout"),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, "run stats server ("+statsview.Address+")")
	}
	return f
}

// session is a device and the supporting types created from the command line
type session struct {
	env *environment.Environment
	dev *flash.Device
	tck *future.Ticker
	nv  *nvram.NVRAM
}

func loadPreferences() *preferences.Preferences {
	p, err := preferences.NewPreferences()
	if err != nil {
		logger.Logf(logger.Allow, "gopherflash", "using default preferences: %v", err)
		return preferences.NewDefaultPreferences()
	}
	return p
}

func newSession(md *modalflag.Modes, output io.Writer) (*session, error) {
	flags := addDeviceFlags(md)

	r, err := md.Parse()
	if err != nil || r != modalflag.ParseContinue {
		return nil, err
	}

	if *flags.log {
		logger.SetEcho(output, false)
	}

	if flags.statsview != nil && *flags.statsview {
		statsview.Launch(output)
	}

	// the command line stack is consumed when the preferences are loaded
	if *flags.prefs != "" {
		prefs.PushCommandLineStack(*flags.prefs)
	}
	p := loadPreferences()

	if *flags.variant == "" {
		*flags.variant = p.Variant.Get().(string)
	}

	desc, err := variant.Lookup(*flags.variant)
	if err != nil {
		return nil, err
	}

	s := &session{
		env: environment.NewEnvironment(environment.MainEmulation, p),
		tck: future.NewTicker(""),
	}

	s.dev, err = flash.NewDevice(s.env, desc, s.tck)
	if err != nil {
		return nil, err
	}

	if *flags.fill > 0xff {
		return nil, fmt.Errorf("fill value must be a single byte")
	}
	s.dev.Fill(uint8(*flags.fill))

	if *flags.image != "" {
		data, err := os.ReadFile(*flags.image)
		if err != nil {
			return nil, err
		}
		s.dev.PopulateDefault(data)
	}

	if *flags.nvram {
		s.nv, err = nvram.NewNVRAM(s.env, s.dev)
		if err != nil {
			return nil, err
		}
		if err := s.nv.Read(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// end writes the flash contents to the nvram file if required
func (s *session) end() error {
	if s.nv == nil {
		return nil
	}
	return s.nv.Write()
}

func runMonitor(md *modalflag.Modes, sync *mainSync, output *os.File) error {
	md.NewMode()
	md.AdditionalHelp("An optional script is run before the interactive session begins.")

	s, err := newSession(md, output)
	if err != nil || s == nil {
		return err
	}

	mon := monitor.NewMonitor(s.env, s.dev, s.tck, output)

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		if err := script(mon, md.GetArg(0)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if !mon.Quit() {
		fmt.Fprintf(output, "%s: %s\n", version.String(), s.dev)
		sync.state <- stateRequest{req: reqNoIntSig}
		if err := mon.Interactive(os.Stdin, output); err != nil {
			return err
		}
	}

	return s.end()
}

func runScript(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("The script is read from stdin if no file is specified. The digest of the flash\ncontents is printed when the script ends.")

	s, err := newSession(md, output)
	if err != nil || s == nil {
		return err
	}

	mon := monitor.NewMonitor(s.env, s.dev, s.tck, output)

	switch len(md.RemainingArgs()) {
	case 0:
		err = mon.RunScript(os.Stdin)
	case 1:
		err = script(mon, md.GetArg(0))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	if err != nil {
		return err
	}

	mon.Digest().Update(s.dev.Contents())
	fmt.Fprintln(output, mon.Digest().Hash())

	return s.end()
}

func script(mon *monitor.Monitor, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return mon.RunScript(f)
}

func list(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	width := md.AddInt("width", 0, "list only chips with the bus width: 8 or 16")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for _, d := range variant.List() {
		if *width != 0 && d.Width != *width {
			continue
		}
		fmt.Fprintf(output, "%-24s %s\n", d.Name, d.Description)
	}

	return nil
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("flash chip required for %s mode", md)
	}

	for _, n := range md.RemainingArgs() {
		d, err := variant.Lookup(strings.ToLower(n))
		if err != nil {
			return err
		}
		fmt.Fprintln(output, d)
	}

	return nil
}

func regress(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()
		verbose := md.AddBool("verbose", false, "output more detail on failure")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRun(output, *verbose, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressList(output)

	case "DELETE":
		md.NewMode()
		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) != 1 {
			return fmt.Errorf("a single regression key is required for %s mode", md)
		}

		var confirm io.Reader = os.Stdin
		if *answerYes {
			confirm = nil
		}
		return regression.RegressDelete(output, confirm, md.GetArg(0))

	case "ADD":
		md.NewMode()
		chip := md.AddString("variant", preferences.DefaultVariant, "flash chip to run the script against")
		mode := md.AddString("mode", "final", "when to update the digest: final, every")
		notes := md.AddString("notes", "", "annotation for the regression entry")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) != 1 {
			return fmt.Errorf("a single script is required for %s mode", md)
		}

		dm, err := regression.ParseDigestMode(*mode)
		if err != nil {
			return err
		}

		reg, err := regression.NewScriptRegression(*chip, md.GetArg(0), dm)
		if err != nil {
			return err
		}
		reg.Notes = *notes

		return regression.RegressAdd(output, reg)
	}

	return nil
}
