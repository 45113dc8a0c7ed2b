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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/jetsetilly/specx/cartridgeloader"
	"github.com/jetsetilly/specx/digest"
	"github.com/jetsetilly/specx/environment"
	"github.com/jetsetilly/specx/framebuffer"
	"github.com/jetsetilly/specx/hardware"
	"github.com/jetsetilly/specx/hardware/cpu/z80bus"
	"github.com/jetsetilly/specx/hardware/memory/bus"
	"github.com/jetsetilly/specx/hardware/preferences"
	"github.com/jetsetilly/specx/hardware/rom"
	"github.com/jetsetilly/specx/hardware/snapshot"
	"github.com/jetsetilly/specx/logger"
	"github.com/jetsetilly/specx/modalflag"
	"github.com/jetsetilly/specx/performance"
	"github.com/jetsetilly/specx/performance/limiter"
	"github.com/jetsetilly/specx/prefs"
	"github.com/jetsetilly/specx/statsview"
	"github.com/jetsetilly/specx/version"
	"github.com/jetsetilly/specx/wavwriter"
)

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Stdout, os.Args[1:])
	stop()
	os.Exit(exitVal)
}

// launch the mode selected by the arguments. returns the value to be used
// with os.Exit()
func launch(ctx context.Context, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PERFORMANCE", "DCK", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)
	case "PERFORMANCE":
		err = perform(md)
	case "DCK":
		err = dck(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return 0
}

// poke data into memory starting at org. addresses wrap at the top of memory
func poke(dbg bus.DebuggerBus, org uint16, data []uint8) {
	for i, v := range data {
		dbg.Poke(org+uint16(i), v)
	}
}

// flags common to every mode that creates a machine
type machineFlags struct {
	machine *string
	romDir  *string
	prefs   *string
	log     *bool
	org     *string
	pc      *string
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		machine: md.AddString("machine", "", "machine variant: 48, 128, TC2048, TC2068, TS2068, SE (default from preferences)"),
		romDir:  md.AddString("romdir", "", "directory containing ROM images (default from preferences)"),
		prefs:   md.AddString("prefs", "", "preferences for this run only (eg. 'hardware.display.flashFrames::32')"),
		log:     md.AddBool("log", false, "echo log to stdout"),
		org:     md.AddString("org", "0x8000", "address to load the program at"),
		pc:      md.AddString("pc", "", "address to start execution at (default org, or 0 if there is no program)"),
	}
}

func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("address: %w", err)
	}
	return uint16(v), nil
}

// create a machine and load the program (if any) into it. the CPU runner
// starts at the program's origin
func (f machineFlags) create(md *modalflag.Modes) (*environment.Environment, *hardware.Machine, *z80bus.Runner, error) {
	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}

	hprefs, err := preferences.NewPreferences("")
	if *f.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(md.Output, "* unused preferences: %s\n", unused)
		}
	}
	if err != nil {
		return nil, nil, nil, err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, hprefs)
	if err != nil {
		return nil, nil, nil, err
	}

	if *f.log || hprefs.EchoLog.Get().(bool) {
		logger.SetEcho(md.Output)
	}

	id := *f.machine
	if id == "" {
		id = hprefs.Machine.Get().(string)
	}
	dir := *f.romDir
	if dir == "" {
		dir = hprefs.ROMDir.Get().(string)
	}

	m, err := hardware.NewMachine(env, id, rom.Dir(dir))
	if err != nil {
		return nil, nil, nil, err
	}

	var pc uint16
	if md.GetArg(0) != "" {
		org, err := parseAddress(*f.org)
		if err != nil {
			return nil, nil, nil, err
		}

		ld := cartridgeloader.NewLoader(md.GetArg(0))
		err = ld.Load()
		if err != nil {
			return nil, nil, nil, err
		}
		poke(m, org, ld.Data)
		logger.Logf(env, "specx", "loaded %s (%d bytes) at %04x", ld.ShortName(), len(ld.Data), org)

		pc = org
	}

	if *f.pc != "" {
		pc, err = parseAddress(*f.pc)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	r := z80bus.NewRunner(m, pc)
	m.AttachInterrupter(r)

	return env, m, r, nil
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	dckFile := md.AddString("dck", "", "DCK cartridge image to insert in the dock")
	load := md.AddString("load", "", "snapshot to restore before running")
	save := md.AddString("save", "", "file to save a snapshot to after running")
	frames := md.AddInt("frames", 50, "number of frames to run")
	png := md.AddString("png", "", "file to save a screenshot to after running")
	wav := md.AddString("wav", "", "file to record the beeper to")
	fpsCap := md.AddBool("fpscap", false, "limit emulation to the frame rate of the machine")
	stats := md.AddBool("statsview", false, "run stats server (requires statsview build tag)")
	showDigest := md.AddBool("digest", false, "print a digest of the video output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	env, m, r, err := mf.create(md)
	if err != nil {
		return err
	}

	if *dckFile != "" {
		ld := cartridgeloader.NewLoader(*dckFile)
		err = ld.Load()
		if err != nil {
			return err
		}
		err = m.InsertDock(ld.Data)
		if err != nil {
			return err
		}
	}

	if *load != "" {
		data, err := os.ReadFile(*load)
		if err != nil {
			return err
		}
		s, err := snapshot.Unmarshal(data)
		if err != nil {
			return err
		}
		err = m.Plumb(s)
		if err != nil {
			return err
		}
	}

	var fb *framebuffer.Framebuffer
	if *png != "" {
		fb = framebuffer.NewFramebuffer()
		m.Display.AddRenderer(fb)
	}

	var dig *digest.Video
	if *showDigest {
		dig = digest.NewVideo()
		m.Display.AddRenderer(dig)
	}

	if *wav != "" {
		ww, err := wavwriter.NewWavWriter(env, *wav, m.Spec)
		if err != nil {
			return err
		}
		m.AttachDAC(ww)
		defer func() {
			if err := ww.Close(); err != nil {
				fmt.Fprintf(md.Output, "* %v\n", err)
			}
		}()
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "* statsview not available")
		}
	}

	if *fpsCap {
		lim := limiter.NewFPSLimiter(m.Spec.FramesPerSecond)
		defer lim.Stop()
		for i := 0; i < *frames && err == nil; i++ {
			lim.Wait()
			err = r.Run(ctx, 1)
		}
	} else {
		err = r.Run(ctx, *frames)
	}

	// interruption by the user is not an error. the rest of the run is
	// completed as normal
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(md.Output, "* interrupted")
		err = nil
	}
	if err != nil {
		return err
	}

	if *save != "" {
		err = os.WriteFile(*save, snapshot.Marshal(m.Snapshot()), 0o644)
		if err != nil {
			return err
		}
	}

	if fb != nil {
		err = fb.Save(*png)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(md.Output, "%s (frame %d)\n", m, m.Display.FrameNum())
	if dig != nil {
		fmt.Fprintf(md.Output, "video digest: %s\n", dig.Hash())
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "profiles to create: cpu, mem, trace (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	_, m, r, err := mf.create(md)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, r, m.Spec, *duration)
}

func dck(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("DCK file required for %s mode", md)
	}

	for _, fn := range md.RemainingArgs() {
		ld := cartridgeloader.NewLoader(fn)
		err := ld.Load()
		if err != nil {
			return err
		}

		d, err := cartridgeloader.ParseDCK(ld.Data)
		if err != nil {
			return err
		}

		fmt.Fprintf(md.Output, "%s (%s)\n", ld.ShortName(), ld.Hash)
		for _, blk := range d.Blocks {
			fmt.Fprintf(md.Output, "  %s\n", blk)
		}
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(md.Output, version.String())
	if *revision {
		_, r, _ := version.Version()
		fmt.Fprintf(md.Output, "revision: %s\n", r)
	}

	return nil
}
