package sdlhost

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/mix"

	"github.com/Brad-S1/intel-8080-cpu-emulator/machine"
)

// mixFrequency, mixChannels, and mixChunkSize mirror
// original_source/src/io/sound.c's Mix_OpenAudio call exactly: 44.1kHz,
// the default sample format, stereo, 2048-sample chunks.
const (
	mixFrequency = 44100
	mixChannels  = 2
	mixChunkSize = 2048
)

// soundFiles maps each SoundID to its sample file, in the same order
// and with the same UFO-hit-reuses-UFO choice as the source.
var soundFiles = [...]string{
	machine.SoundUFO:        "sounds/ufo_highpitch.wav",
	machine.SoundShot:       "sounds/shoot.wav",
	machine.SoundPlayerDie:  "sounds/explosion.wav",
	machine.SoundInvaderDie: "sounds/invaderkilled.wav",
	machine.SoundFleet1:     "sounds/fleet_1.wav",
	machine.SoundFleet2:     "sounds/fleet_2.wav",
	machine.SoundFleet3:     "sounds/fleet_3.wav",
	machine.SoundFleet4:     "sounds/fleet_4.wav",
	machine.SoundUFOHit:     "sounds/ufo_highpitch.wav",
}

// Sound owns the loaded sample chunks. It implements machine.SoundSink.
// A chunk that fails to load is left nil and Play silently skips it,
// matching the source's "warn and continue" behavior rather than
// failing the whole machine over one missing sample.
type Sound struct {
	chunks [len(soundFiles)]*mix.Chunk

	// Logger receives one line per sample that fails to load. Defaults
	// to log.Default() when nil.
	Logger *log.Logger
}

// NewSound opens the mixer and loads every sample named in soundFiles,
// logging (rather than failing) any sample that can't be loaded.
func NewSound() (*Sound, error) {
	if err := mix.OpenAudio(mixFrequency, mix.DEFAULT_FORMAT, mixChannels, mixChunkSize); err != nil {
		return nil, fmt.Errorf("sdlhost: open audio: %w", err)
	}

	s := &Sound{Logger: log.Default()}
	for id, path := range soundFiles {
		chunk, err := mix.LoadWAV(path)
		if err != nil {
			s.Logger.Printf("sdlhost: sound effect %q failed to load: %v", path, err)
			continue
		}
		s.chunks[id] = chunk
	}
	return s, nil
}

// Play fires the sample for id on any free channel. Out-of-range IDs
// and samples that failed to load are no-ops.
func (s *Sound) Play(id machine.SoundID) {
	if int(id) < 0 || int(id) >= len(s.chunks) {
		return
	}
	chunk := s.chunks[id]
	if chunk == nil {
		return
	}
	chunk.Play(-1, 0)
}

// Close frees every loaded chunk and shuts down the mixer.
func (s *Sound) Close() {
	for _, chunk := range s.chunks {
		if chunk != nil {
			chunk.Free()
		}
	}
	mix.CloseAudio()
	mix.Quit()
}
