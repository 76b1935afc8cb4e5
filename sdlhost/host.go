package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Host bundles the SDL subsystem lifetime with the concrete
// input/frame/sound adapters built on top of it, following the
// teacher's newChip8 pattern of one init call guarding window,
// renderer, and texture creation.
type Host struct {
	Input Input
	Frame *Frame
	Sound *Sound
	Clock Clock
}

// New initializes SDL (video, audio, events), then the window/renderer/
// texture and the mixer. On any failure it unwinds everything already
// created before returning the error.
func New() (*Host, error) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, fmt.Errorf("sdlhost: sdl init: %w", err)
	}

	frame, err := NewFrame()
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	sound, err := NewSound()
	if err != nil {
		frame.Close()
		sdl.Quit()
		return nil, err
	}

	return &Host{Frame: frame, Sound: sound}, nil
}

// Close tears down the mixer, the window/renderer/texture, and SDL
// itself, in reverse order of creation.
func (h *Host) Close() {
	h.Sound.Close()
	h.Frame.Close()
	sdl.Quit()
}
