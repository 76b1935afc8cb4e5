package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Brad-S1/intel-8080-cpu-emulator/video"
)

const windowTitle = "Space Invaders"

// windowScale matches original_source/src/graphics/graphics.c's
// WINDOW_SCALE: the logical 224x256 frame is displayed 5x up.
const windowScale = 5

// Frame owns the SDL window, renderer, and a streaming texture sized to
// the scan-out buffer. It implements driver.FrameSink.
type Frame struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// NewFrame creates the window, renderer, and texture. Callers must call
// Close when done.
func NewFrame() (*Frame, error) {
	window, err := sdl.CreateWindow(
		windowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		video.Width*windowScale, video.Height*windowScale,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("sdlhost: create renderer: %w", err)
	}
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")
	renderer.SetLogicalSize(video.Width, video.Height)

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING,
		video.Width, video.Height,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("sdlhost: create texture: %w", err)
	}

	return &Frame{window: window, renderer: renderer, texture: texture}, nil
}

// Present uploads pixels (row-major, ARGB8888, video.Width*video.Height
// long) into the streaming texture and flips it to the window.
func (f *Frame) Present(pixels []uint32) {
	rawPixels, pitch, err := f.texture.Lock(nil)
	if err != nil {
		return
	}

	dst := make([]byte, len(pixels)*4)
	for i, p := range pixels {
		dst[i*4+0] = byte(p)
		dst[i*4+1] = byte(p >> 8)
		dst[i*4+2] = byte(p >> 16)
		dst[i*4+3] = byte(p >> 24)
	}
	rowBytes := video.Width * 4
	for row := 0; row < video.Height; row++ {
		copy(rawPixels[row*pitch:row*pitch+rowBytes], dst[row*rowBytes:row*rowBytes+rowBytes])
	}
	f.texture.Unlock()

	f.renderer.Clear()
	f.renderer.Copy(f.texture, nil, nil)
	f.renderer.Present()
}

// Close destroys the texture, renderer, and window in reverse
// creation order.
func (f *Frame) Close() {
	f.texture.Destroy()
	f.renderer.Destroy()
	f.window.Destroy()
}
