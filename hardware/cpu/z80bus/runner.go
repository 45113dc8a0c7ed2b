// This file is part of Specx.
//
// Specx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Specx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Specx.  If not, see <https://www.gnu.org/licenses/>.

package z80bus

import (
	"context"
	"errors"
	"fmt"

	"github.com/jetsetilly/specx/curated"
	"github.com/koron-go/z80"
)

// Patterns used for errors returned by Run().
const (
	RunError   = "z80bus: %v"
	BreakPoint = "z80bus: breakpoint at %04x"
)

// Runner drives the CPU for a number of frames at a time.
type Runner struct {
	CPU z80.CPU

	m   Machine
	mem *Memory
	io  *IO

	// frames completed during the current call to Run() and the number
	// requested
	frames int
	target int

	// cancels the CPU when the target has been reached
	cancel context.CancelFunc

	// the CPU has executed a HALT instruction
	halted bool

	// number of frame interrupts seen
	interrupts int
}

// NewRunner is the preferred method of initialisation for the Runner type.
// The CPU will start execution at the pc argument.
func NewRunner(m Machine, pc uint16) *Runner {
	r := &Runner{m: m}
	r.mem = &Memory{m: m, clock: r}
	r.io = &IO{m: m, clock: r}
	r.Reset(pc)
	return r
}

// Reset the CPU and start execution at the pc argument. Breakpoints are
// kept.
func (r *Runner) Reset(pc uint16) {
	bp := r.CPU.BreakPoints
	r.CPU = z80.CPU{
		States: z80.States{SPR: z80.SPR{PC: pc}},
		Memory: r.mem,
		IO:     r.io,
	}
	r.CPU.BreakPoints = bp
	r.halted = false
}

// AddBreakPoint stops Run() when the CPU reaches the address.
func (r *Runner) AddBreakPoint(address uint16) {
	if r.CPU.BreakPoints == nil {
		r.CPU.BreakPoints = make(map[uint16]struct{})
	}
	r.CPU.BreakPoints[address] = struct{}{}
}

// RemoveBreakPoint removes a breakpoint added with AddBreakPoint().
func (r *Runner) RemoveBreakPoint(address uint16) {
	delete(r.CPU.BreakPoints, address)
}

// PC returns the program counter.
func (r *Runner) PC() uint16 {
	return r.CPU.PC
}

// Halted returns true if the CPU has executed a HALT instruction.
func (r *Runner) Halted() bool {
	return r.halted
}

// Interrupt implements the hardware.Interrupter interface. The CPU emulator
// does not accept interrupts so they are only counted.
func (r *Runner) Interrupt() {
	r.interrupts++
}

// Interrupts returns the number of frame interrupts raised by the machine.
func (r *Runner) Interrupts() int {
	return r.interrupts
}

func (r *Runner) tick(n int) {
	if r.m.AddTStates(n) {
		r.m.EndFrame()
		r.frames++
		if r.frames >= r.target && r.cancel != nil {
			r.cancel()
		}
	}
}

func (r *Runner) portHigh() uint8 {
	return r.CPU.BC.Hi
}

// idle completes the outstanding frames without running the CPU.
func (r *Runner) idle() {
	for r.frames < r.target {
		r.tick(TStatesPerAccess)
	}
}

// Run the CPU for the number of frames. Returns early with an error matching
// the BreakPoint pattern if a breakpoint is reached. The CPU stops before the
// instruction at the breakpoint so the breakpoint must be removed, or the PC
// changed, before Run() is called again.
func (r *Runner) Run(ctx context.Context, frames int) error {
	if frames <= 0 {
		return nil
	}

	r.frames = 0
	r.target = frames

	if r.halted {
		r.idle()
		return nil
	}

	ctx, r.cancel = context.WithCancel(ctx)
	defer func() {
		r.cancel()
		r.cancel = nil
	}()

	err := r.CPU.Run(ctx)

	switch {
	case err == nil:
		r.halted = true
		r.idle()
		return nil
	case errors.Is(err, z80.ErrBreakPoint):
		return curated.Errorf(BreakPoint, r.CPU.PC)
	case errors.Is(err, context.Canceled) && r.frames >= r.target:
		return nil
	}

	return curated.Errorf(RunError, fmt.Errorf("at %04x: %w", r.CPU.PC, err))
}
