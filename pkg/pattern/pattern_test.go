package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolid(t *testing.T) {
	buf := Solid(4, 2, 1, 2, 3)
	require.Len(t, buf, 4*2*3)
	for i := 0; i < len(buf); i += 3 {
		assert.Equal(t, uint16(1), buf[i])
		assert.Equal(t, uint16(2), buf[i+1])
		assert.Equal(t, uint16(3), buf[i+2])
	}
}

func TestColorBars(t *testing.T) {
	const width, height = 70, 4
	buf := ColorBars(width, height)
	require.Len(t, buf, width*height*3)

	// First bar is 75% gray, last is 75% blue
	gray := uint16(192) * 257
	assert.Equal(t, []uint16{gray, gray, gray}, buf[:3])

	last := (width - 1) * 3
	assert.Equal(t, []uint16{0, 0, gray}, buf[last:last+3])

	// Rows are identical
	row := width * 3
	assert.Equal(t, buf[:row], buf[row:2*row])
}

func TestHGradient(t *testing.T) {
	buf := HGradient(256, 1)
	require.Len(t, buf, 256*3)

	assert.Equal(t, uint16(0), buf[0])
	assert.Equal(t, uint16(65535), buf[255*3])

	// Monotonic left to right
	for x := 1; x < 256; x++ {
		assert.GreaterOrEqual(t, buf[x*3], buf[(x-1)*3], "x=%d", x)
	}
}

func TestCheckerboard(t *testing.T) {
	buf := Checkerboard(4, 4, 2)
	require.Len(t, buf, 4*4*3)

	// Top-left cell white, next cell over black
	assert.Equal(t, uint16(65535), buf[0])
	assert.Equal(t, uint16(0), buf[2*3])

	// One row down stays within the same cells
	assert.Equal(t, uint16(65535), buf[4*3])
}

func TestByName(t *testing.T) {
	for _, name := range []string{"bars", "gradient", "checker", "black", "white"} {
		gen := ByName(name)
		require.NotNil(t, gen, name)
		assert.Len(t, gen(8, 2), 8*2*3)
	}
	assert.Nil(t, ByName("plasma"))
}
