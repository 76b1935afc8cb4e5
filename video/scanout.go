// Package video converts the 1-bit-per-pixel, column-first, rotated
// Space Invaders framebuffer into a displayable pixel image. The
// rotation happens at scan-out time, not at write time, because the
// ROM writes VRAM in the CRT's native (portrait) orientation.
package video

// Width and Height are the host-display dimensions after the 90-degree
// counter-clockwise rotation out of VRAM-space.
const (
	Width  = 224
	Height = 256
)

// VRAMSize is the number of VRAM bytes the scanner expects, [0x2400, 0x4000).
const VRAMSize = 7168

// Lit and Unlit are the two pixel values scan-out ever writes: opaque
// white and opaque black, in ARGB8888 (0xAARRGGBB).
const (
	Lit   uint32 = 0xFFFFFFFF
	Unlit uint32 = 0xFF000000
)

// Scanner converts VRAM bytes to pixels. It carries no state of its own.
type Scanner struct{}

// Scan reads vram (expected to be VRAMSize bytes) and writes Width*Height
// pixels into dst in row-major order. For VRAM byte index i, x = (i mod
// 32) * 8 and y = i / 32; bit b of the byte (b=0 is the first pixel
// drawn) maps to VRAM-space pixel (x+b, y), which rotates 90 degrees
// counter-clockwise to host-space pixel (y, 255-(x+b)).
func (Scanner) Scan(vram []byte, dst []uint32) {
	for i := 0; i < len(vram) && i < VRAMSize; i++ {
		b := vram[i]
		x := (i % 32) * 8
		y := i / 32

		for bit := 0; bit < 8; bit++ {
			color := Unlit
			if b&(1<<uint(bit)) != 0 {
				color = Lit
			}

			xRotated := y
			yRotated := 255 - (x + bit)

			if xRotated < Width && yRotated >= 0 && yRotated < Height {
				dst[yRotated*Width+xRotated] = color
			}
		}
	}
}
