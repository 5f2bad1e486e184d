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

package monitor

import (
	"errors"
	"fmt"
	"io"

	"github.com/d100/ee/hardware/cpu"
	"github.com/d100/ee/hardware/memory"
	"github.com/d100/ee/hardware/peripherals/shifter"
	"github.com/d100/ee/logger"
	"github.com/d100/ee/terminal/easyterm"
	"github.com/d100/ee/terminal/easyterm/ansi"
)

// Machine is the set of control signals and observers used by the monitor.
// Satisfied by *hardware.Machine.
type Machine interface {
	Pause()
	Resume()
	Running() bool
	StepOnce() error
	ToggleCapture() bool
	Borrow(func(*cpu.CPU, *memory.Memory, *shifter.ShiftRegister))
}

// the number of entries printed by the history, log and listing commands.
const listLength = 10

// Monitor reads single key presses and acts on them.
type Monitor struct {
	machine Machine
	input   io.Reader
	output  io.Writer

	commands map[byte]command
}

type command struct {
	help string
	fn   func() error
}

// errQuit is returned by the quit command to end the Run() loop.
var errQuit = errors.New("quit")

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The input should be a terminal in cbreak mode so that keys are delivered
// as soon as they are pressed.
func NewMonitor(machine Machine, input io.Reader, output io.Writer) *Monitor {
	mon := &Monitor{
		machine: machine,
		input:   input,
		output:  output,
	}

	mon.commands = map[byte]command{
		'p': {help: "pause/resume", fn: mon.pause},
		's': {help: "step", fn: mon.step},
		't': {help: "toggle capture", fn: mon.capture},
		'r': {help: "registers", fn: mon.registers},
		'h': {help: "history", fn: mon.history},
		'l': {help: "log", fn: mon.log},
		'd': {help: "disassemble", fn: mon.disassemble},
		'q': {help: "quit", fn: func() error { return errQuit }},
	}

	return mon
}

// Run reads keys until the quit key is pressed or the input is exhausted.
func (mon *Monitor) Run() error {
	mon.print("", "keys: %s\n", mon.Help())

	key := make([]byte, 1)
	for {
		n, err := mon.input.Read(key)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("monitor: %w", err)
		}
		if n == 0 {
			continue
		}

		err = mon.dispatch(key[0])
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			mon.print("red", "* %v\n", err)
		}
	}
}

// Help returns a one line summary of the keys.
func (mon *Monitor) Help() string {
	s := ""
	for _, k := range []byte("pstrhldq") {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%c=%s", k, mon.commands[k].help)
	}
	return s
}

func (mon *Monitor) dispatch(key byte) error {
	switch key {
	case easyterm.KeyInterrupt:
		return errQuit
	case easyterm.KeySuspend:
		return easyterm.SuspendProcess()
	}

	if easyterm.IsControl(key) {
		return nil
	}

	c, ok := mon.commands[key]
	if !ok {
		return fmt.Errorf("unrecognised key (%c)", key)
	}
	return c.fn()
}

func (mon *Monitor) print(pen string, format string, args ...any) {
	if pen != "" {
		_, _ = io.WriteString(mon.output, ansi.Pens[pen])
		defer io.WriteString(mon.output, ansi.NormalPen)
	}
	_, _ = fmt.Fprintf(mon.output, format, args...)
}

func (mon *Monitor) pause() error {
	if mon.machine.Running() {
		mon.machine.Pause()
		mon.print("yellow", "paused\n")
		logger.Log(logger.Allow, "monitor", "paused")
		return nil
	}
	mon.machine.Resume()
	mon.print("green", "running\n")
	logger.Log(logger.Allow, "monitor", "resumed")
	return nil
}

func (mon *Monitor) step() error {
	if err := mon.machine.StepOnce(); err != nil {
		return err
	}
	return mon.registers()
}

func (mon *Monitor) capture() error {
	if mon.machine.ToggleCapture() {
		mon.print("", "capture on\n")
	} else {
		mon.print("", "capture off\n")
	}
	return nil
}

func (mon *Monitor) registers() error {
	mon.machine.Borrow(func(mc *cpu.CPU, _ *memory.Memory, sh *shifter.ShiftRegister) {
		mon.print("cyan", "%s\n", mc)
		mon.print("", "%s\n", sh)
	})
	return nil
}

func (mon *Monitor) history() error {
	mon.machine.Borrow(func(mc *cpu.CPU, _ *memory.Memory, _ *shifter.ShiftRegister) {
		tail := mc.History().Tail(listLength)
		if len(tail) == 0 {
			mon.print("", "no history. %s\n", &mc.Control)
			return
		}
		for _, e := range tail {
			mon.print("", "%s\n", e)
		}
	})
	return nil
}

func (mon *Monitor) log() error {
	logger.Tail(logger.NewColorizer(mon.output), listLength)
	return nil
}

func (mon *Monitor) disassemble() error {
	var err error
	mon.machine.Borrow(func(mc *cpu.CPU, _ *memory.Memory, _ *shifter.ShiftRegister) {
		err = mc.Disassembler().Write(mon.output, mc.PC.Address(), listLength)
	})
	return err
}
