// Package sdlhost is the concrete SDL2-backed host: window, renderer,
// streaming texture, keyboard polling, and mix-based sample playback.
// It is the only package that imports github.com/veandco/go-sdl2; every
// other package in this module is SDL-agnostic.
package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Brad-S1/intel-8080-cpu-emulator/machine"
)

// Input polls SDL's event queue and applies key-down/key-up edges to
// the machine I/O bridge's port1/port2 bits; the key-to-bit mapping is
// the switch in Poll. It implements driver.InputSource.
type Input struct{}

// Poll drains all pending SDL events, applying keyboard edges to io and
// reporting true the moment a quit event (window close or Escape) is seen.
func (Input) Poll(io *machine.IO) bool {
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			pressed := t.Type == sdl.KEYDOWN

			switch t.Keysym.Sym {
			case sdl.K_ESCAPE:
				if pressed {
					quit = true
				}
			case sdl.K_c:
				io.SetPort1Bit(0, pressed) // insert coin
			case sdl.K_2:
				io.SetPort1Bit(1, pressed) // P2 start
			case sdl.K_1:
				io.SetPort1Bit(2, pressed) // P1 start
			case sdl.K_SPACE:
				io.SetPort1Bit(4, pressed) // P1 fire
			case sdl.K_LEFT:
				io.SetPort1Bit(5, pressed) // P1 left
			case sdl.K_RIGHT:
				io.SetPort1Bit(6, pressed) // P1 right
			case sdl.K_e:
				io.SetPort2Bit(4, pressed) // P2 fire
			case sdl.K_q:
				io.SetPort2Bit(5, pressed) // P2 left
			case sdl.K_w:
				io.SetPort2Bit(6, pressed) // P2 right
			}
		}
	}

	return quit
}
