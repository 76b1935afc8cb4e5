// Command invaders runs the Space Invaders ROM named on the command
// line against the 8080 interpreter, driven by an SDL2 window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Brad-S1/intel-8080-cpu-emulator/cpu"
	"github.com/Brad-S1/intel-8080-cpu-emulator/driver"
	"github.com/Brad-S1/intel-8080-cpu-emulator/machine"
	"github.com/Brad-S1/intel-8080-cpu-emulator/memory"
	"github.com/Brad-S1/intel-8080-cpu-emulator/sdlhost"
)

func main() {
	if err := run(); err != nil {
		log.Default().Println(err)
		os.Exit(1)
	}
}

func run() error {
	trace := flag.Bool("trace", false, "log the PC and opcode before every instruction")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: %s [-trace] <rom-path>", os.Args[0])
	}

	rom, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("invaders: read rom: %w", err)
	}

	mem := memory.New()
	if err := mem.Load(rom); err != nil {
		return fmt.Errorf("invaders: load rom: %w", err)
	}

	host, err := sdlhost.New()
	if err != nil {
		return fmt.Errorf("invaders: init host: %w", err)
	}
	defer host.Close()

	io := machine.New(host.Sound)

	c := cpu.New()
	c.Logger = log.Default()
	if *trace {
		c.Trace = func(pc uint16, opcode byte) {
			c.Logger.Printf("pc=%04X opcode=%02X", pc, opcode)
		}
	}

	fd := &driver.FrameDriver{
		CPU:     c,
		Mem:     mem,
		IO:      io,
		Input:   host.Input,
		Frame:   host.Frame,
		Clock:   host.Clock,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	if err := fd.Run(ctx); err != nil && !errors.Is(err, driver.ErrQuit) {
		return err
	}
	return nil
}
