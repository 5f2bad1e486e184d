// This file is part of EE.
//
// EE is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// EE is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with EE.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/d100/ee/gui/sdlwindow"
	"github.com/d100/ee/hardware"
	"github.com/d100/ee/hardware/cpu"
	"github.com/d100/ee/hardware/memory"
	"github.com/d100/ee/hardware/peripherals/shifter"
	"github.com/d100/ee/hardware/preferences"
	"github.com/d100/ee/logger"
	"github.com/d100/ee/modalflag"
	"github.com/d100/ee/performance"
	"github.com/d100/ee/prefs"
	"github.com/d100/ee/statsview"
	"github.com/d100/ee/terminal/easyterm"
	"github.com/d100/ee/terminal/monitor"
	"github.com/d100/ee/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode provides its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. SDL
// requires window creation and event handling to happen on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			g, err := creator()
			if err != nil {
				gui = nil
				sync.creationError <- err
			} else {
				gui = g
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}
				if v, ok := state.args.(int); ok {
					exitVal = v
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
			}

		default:
			if gui != nil {
				gui.Service()
			} else {
				// nothing to service. don't spin
				time.Sleep(time.Millisecond)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DISASM", "DIAG", "PERFORMANCE", "VERSION")

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
	case "RUN":
		err = run(md, sync)

	case "DISASM":
		err = disasm(md)

	case "DIAG":
		err = diag(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to every mode that creates a machine.
type hardwareFlags struct {
	roms        *string
	haltUnknown *bool
	pacing      *bool
	prefs       *string
}

func addHardwareFlags(md *modalflag.Modes) hardwareFlags {
	return hardwareFlags{
		roms:        md.AddString("roms", "roms", "directory containing the ROM images"),
		haltUnknown: md.AddBool("haltunknown", true, "halt the CPU on an unknown opcode"),
		pacing:      md.AddBool("pacing", false, "pace the CPU to the clock rate"),
		prefs:       md.AddString("prefs", "", "preferences overrides. eg. \"hardware.cpu.clockrate::1.5\""),
	}
}

// overrides returns the preferences string for the hardware flags that were
// set on the command line, in the form accepted by prefs.PushCommandLineStack().
func (hf hardwareFlags) overrides(md *modalflag.Modes) string {
	s := []string{}
	if *hf.prefs != "" {
		s = append(s, *hf.prefs)
	}
	md.Visit(func(flag string) {
		switch flag {
		case "roms":
			s = append(s, fmt.Sprintf("hardware.roms::%s", *hf.roms))
		case "haltunknown":
			s = append(s, fmt.Sprintf("hardware.cpu.haltunknown::%v", *hf.haltUnknown))
		case "pacing":
			s = append(s, fmt.Sprintf("hardware.cpu.pacing::%v", *hf.pacing))
		}
	})
	return strings.Join(s, "; ")
}

// create the preferences for the machine. values from the command line take
// priority over values in the preferences file.
func (hf hardwareFlags) hardwarePrefs(md *modalflag.Modes, diagnostic bool) (*preferences.Preferences, error) {
	o := hf.overrides(md)
	if diagnostic {
		if o != "" {
			o += "; "
		}
		o += "hardware.diagnostic::true"
	}

	prefs.PushCommandLineStack(o)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
	}()

	return preferences.NewPreferences()
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	hf := addHardwareFlags(md)
	diagnostic := md.AddBool("diag", false, "overlay the CPU diagnostic image on the ROMs")
	scale := md.AddFloat64("scale", 3.0, "window scaling")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	term := md.AddBool("terminal", false, "start the terminal monitor")
	memvizFile := md.AddString("memviz", "", "write a graph of the machine state to file on exit")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp("keys: c=coin 1/2=start arrows/space=player one a/d/w=player two p=pause t=capture esc=quit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
		defer logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		defer statsview.Launch(os.Stdout)()
	}

	hwprefs, err := hf.hardwarePrefs(md, *diagnostic)
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(hwprefs)
	if err != nil {
		return err
	}
	defer m.End()

	if *memvizFile != "" {
		defer func() {
			if err := writeMemviz(*memvizFile, m); err != nil {
				logger.Log(logger.Allow, "memviz", err)
			}
		}()
	}

	sync.creator <- func() (GuiCreator, error) {
		return sdlwindow.NewSdlWindow(m, float32(*scale))
	}

	var wnd *sdlwindow.SdlWindow
	select {
	case g := <-sync.creation:
		wnd = g.(*sdlwindow.SdlWindow)
	case err := <-sync.creationError:
		return err
	}

	// turn off fallback ctrl-c handling so that the terminal can be restored
	// and the machine ended gracefully
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	monDone := make(chan error, 1)
	if *term {
		var et easyterm.Terminal
		err := et.Initialise(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		defer et.CleanUp()
		et.CBreakMode()

		mon := monitor.NewMonitor(m, &et, &et)
		go func() {
			monDone <- mon.Run()
		}()
	}

	m.PowerOn()

	select {
	case <-wnd.Quit():
	case err = <-monDone:
	case <-intChan:
	}

	m.Pause()
	if err != nil {
		return err
	}
	return m.Err()
}

func writeMemviz(filename string, m *hardware.Machine) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	m.Pause()
	m.Borrow(func(mc *cpu.CPU, _ *memory.Memory, sh *shifter.ShiftRegister) {
		memviz.Map(f, m.Prefs, &mc.Flags, &mc.Control, sh)
	})

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	hf := addHardwareFlags(md)
	diagnostic := md.AddBool("diag", false, "list the CPU diagnostic image")
	from := md.AddAddress("from", 0x0000, "address of first instruction")
	count := md.AddInt("count", 32, "number of instructions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	hwprefs, err := hf.hardwarePrefs(md, *diagnostic)
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(hwprefs)
	if err != nil {
		return err
	}
	defer m.End()

	return m.CPU.Disassembler().Write(md.Output, *from, *count)
}

func diag(md *modalflag.Modes) error {
	md.NewMode()

	hf := addHardwareFlags(md)
	timeout := md.AddFloat64("timeout", 5.0, "seconds to wait for the diagnostic result")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
		defer logger.SetEcho(nil)
	}

	hwprefs, err := hf.hardwarePrefs(md, true)
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(hwprefs)
	if err != nil {
		return err
	}
	defer m.End()

	con := newConsole(md.Output)
	m.CPU.Console(con)

	m.PowerOn()
	defer m.Pause()

	select {
	case <-con.done:
	case <-time.After(time.Duration(*timeout * float64(time.Second))):
		return fmt.Errorf("no result from diagnostic after %.1f seconds", *timeout)
	}

	if err := m.Err(); err != nil {
		return err
	}
	if !con.passed() {
		return fmt.Errorf("CPU diagnostic failed")
	}
	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	hf := addHardwareFlags(md)
	duration := md.AddFloat64("duration", 5.0, "seconds to run for (there is a 2s lead time)")
	profile := md.AddString("profile", "", "write cpu and memory profiles to directory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	hwprefs, err := hf.hardwarePrefs(md, false)
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(hwprefs)
	if err != nil {
		return err
	}
	defer m.End()

	err = performance.Check(md.Output, performance.Profile(*profile), m,
		hwprefs.ClockRate.Get().(float64),
		time.Duration(*duration*float64(time.Second)))
	if err != nil {
		return err
	}

	return m.Err()
}
