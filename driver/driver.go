// Package driver implements the outer loop: it paces two interrupts
// per frame against a wall clock, drains host input into the machine
// I/O bridge, executes batches of CPU instructions, and asks the video
// scanner to render on vertical blank.
package driver

import (
	"context"
	"errors"

	"github.com/Brad-S1/intel-8080-cpu-emulator/cpu"
	"github.com/Brad-S1/intel-8080-cpu-emulator/machine"
	"github.com/Brad-S1/intel-8080-cpu-emulator/memory"
	"github.com/Brad-S1/intel-8080-cpu-emulator/video"
)

// DefaultBatchSize is the number of instructions executed between wall
// clock checks, "on the order of 100" per the specification — a
// tuning knob, not part of the observable contract.
const DefaultBatchSize = 100

// midScreenInterrupt and vBlankInterrupt are the two RST vectors the
// driver alternates between: RST 1 (0x08) at mid-screen, RST 2 (0x10)
// at vertical blank.
const (
	midScreenInterrupt = 1
	vBlankInterrupt     = 2
)

// interruptPeriodMillis is the spacing between the two per-frame
// interrupts: roughly half of 16.67ms at 60Hz.
const interruptPeriodMillis = 8

// Clock abstracts the monotonic millisecond clock the driver paces
// against, so tests can inject a fake clock instead of wall time.
type Clock interface {
	NowMillis() uint64
}

// InputSource drains pending host input events into the machine I/O
// bridge's port bits and reports whether the host has signaled quit.
type InputSource interface {
	Poll(io *machine.IO) (quit bool)
}

// FrameSink receives one fully scanned-out frame per vertical blank.
type FrameSink interface {
	Present(pixels []uint32)
}

// FrameDriver wires together one CPU, its memory, the machine I/O
// bridge, a video scanner, and the host-supplied input/frame sinks.
type FrameDriver struct {
	CPU     *cpu.CPU
	Mem     *memory.Memory
	IO      *machine.IO
	Scanner video.Scanner

	Input InputSource
	Frame FrameSink
	Clock Clock

	// BatchSize is the number of instructions executed between clock
	// checks. Zero means DefaultBatchSize.
	BatchSize int
}

// ErrQuit is returned by Run when the input source signals quit. It is
// not an error condition; callers should treat it as a normal exit.
var ErrQuit = errors.New("driver: quit requested")

// Run drives the emulator until ctx is cancelled, the input source
// signals quit (returns ErrQuit), or the interpreter executes HLT
// (returns nil). Any other error from CPU.Step — in practice only
// *cpu.UnimplementedOpcodeError — is returned unwrapped.
func (d *FrameDriver) Run(ctx context.Context) error {
	batch := d.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	pixels := make([]uint32, video.Width*video.Height)
	which := midScreenInterrupt
	nextInterrupt := d.Clock.NowMillis()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if d.Input.Poll(d.IO) {
			return ErrQuit
		}

		if d.Clock.NowMillis() > nextInterrupt {
			d.CPU.Inject(d.Mem, which)

			if which == vBlankInterrupt {
				d.Scanner.Scan(d.Mem.VRAM(), pixels)
				d.Frame.Present(pixels)
			}

			if which == midScreenInterrupt {
				which = vBlankInterrupt
			} else {
				which = midScreenInterrupt
			}
			nextInterrupt = d.Clock.NowMillis() + interruptPeriodMillis
		}

		for i := 0; i < batch; i++ {
			if err := d.CPU.Step(d.Mem, d.IO); err != nil {
				if errors.Is(err, cpu.ErrHalted) {
					return nil
				}
				return err
			}
		}
	}
}
