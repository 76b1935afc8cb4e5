package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// Clock implements driver.Clock over SDL's own tick counter, matching
// original_source/src/cpu/emulator_shell.c's SDL_GetTicks-based pacing
// exactly instead of reaching for a second timing source.
type Clock struct{}

// NowMillis returns milliseconds elapsed since sdl.Init was called.
func (Clock) NowMillis() uint64 {
	return sdl.GetTicks64()
}
