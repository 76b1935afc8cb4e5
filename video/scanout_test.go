package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanWritesLitPixelAtRotatedCoordinate(t *testing.T) {
	vram := make([]byte, VRAMSize)
	vram[0] = 0x01 // bit 0 of byte 0: VRAM-space (0,0)

	dst := make([]uint32, Width*Height)
	Scanner{}.Scan(vram, dst)

	// VRAM (x=0,y=0) rotates to host (y=0, 255-0=255).
	assert.Equal(t, Lit, dst[255*Width+0])
}

func TestScanLeavesUnlitPixelsBlack(t *testing.T) {
	vram := make([]byte, VRAMSize)
	dst := make([]uint32, Width*Height)
	for i := range dst {
		dst[i] = 0xDEADBEEF
	}

	Scanner{}.Scan(vram, dst)

	for _, p := range dst {
		assert.Equal(t, Unlit, p)
	}
}

func TestScanBitOrderWithinAByte(t *testing.T) {
	vram := make([]byte, VRAMSize)
	vram[32] = 0x80 // byte index 32 -> y=1, x=0; bit 7 -> VRAM-space (7,1)

	dst := make([]uint32, Width*Height)
	Scanner{}.Scan(vram, dst)

	// VRAM (x=7,y=1) rotates to host (y=1, 255-7=248).
	assert.Equal(t, Lit, dst[248*Width+1])
}

func TestScanCoversFullFrameWithoutOutOfRangeWrites(t *testing.T) {
	vram := make([]byte, VRAMSize)
	for i := range vram {
		vram[i] = 0xFF
	}
	dst := make([]uint32, Width*Height)
	Scanner{}.Scan(vram, dst)

	for _, p := range dst {
		assert.Equal(t, Lit, p)
	}
}
