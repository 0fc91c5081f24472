package pixpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFrame builds a deterministic full-range RGB16 frame
func testFrame(width, height int) []uint16 {
	src := make([]uint16, width*height*3)
	for i := range src {
		src[i] = uint16(uint32(i) * 2654435761) // knuth hash, full 16-bit spread
	}
	return src
}

func TestPack_SpecScenario(t *testing.T) {
	// width=2 height=1, pure red then pure green, BGRA layout
	src := []uint16{65535, 0, 0, 0, 65535, 0}
	stride, err := RowStride(FormatBGRA8, 2)
	require.NoError(t, err)

	dst := make([]byte, stride)
	require.NoError(t, Pack(dst, FormatBGRA8, src, 2, 1, stride))
	assert.Equal(t, []byte{0, 0, 255, 255, 0, 255, 0, 255}, dst)
}

func TestPack_UnsupportedFormat(t *testing.T) {
	src := testFrame(2, 2)
	err := Pack(make([]byte, 64), PixelFormat(0x31313131), src, 2, 2, 16)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestPack_InvalidDimension(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 1},
		{"zero height", 1, 0},
		{"negative width", -1, 1},
		{"negative height", 1, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Pack(make([]byte, 64), FormatBGRA8, nil, tt.width, tt.height, 16)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestPack_BufferTooSmall_EveryFormat(t *testing.T) {
	const width, height = 7, 3
	src := testFrame(width, height)

	for _, f := range Formats() {
		t.Run(f.FourCC(), func(t *testing.T) {
			stride, err := RowStride(f, width)
			require.NoError(t, err)

			// One byte short of rowStride * height
			dst := make([]byte, stride*height-1)
			err = Pack(dst, f, src, width, height, stride)
			assert.ErrorIs(t, err, ErrBufferTooSmall)

			// Understated stride is rejected before any write
			err = Pack(make([]byte, stride*height), f, src, width, height, stride-1)
			assert.ErrorIs(t, err, ErrBufferTooSmall)
		})
	}
}

func TestPack_SourceSizeMismatch(t *testing.T) {
	stride, err := RowStride(FormatRGB8, 4)
	require.NoError(t, err)
	dst := make([]byte, stride*4)

	short := make([]uint16, 4*4*3-1)
	assert.ErrorIs(t, Pack(dst, FormatRGB8, short, 4, 4, stride), ErrSourceSizeMismatch)

	long := make([]uint16, 4*4*3+3)
	assert.ErrorIs(t, Pack(dst, FormatRGB8, long, 4, 4, stride), ErrSourceSizeMismatch)
}

func TestPack_AllFormats_FillBuffer(t *testing.T) {
	// Every registered format packs a mixed frame without error and the
	// output is deterministic across calls.
	const width, height = 13, 5
	src := testFrame(width, height)

	for _, f := range Formats() {
		t.Run(f.FourCC(), func(t *testing.T) {
			stride, err := RowStride(f, width)
			require.NoError(t, err)

			a := make([]byte, stride*height)
			b := make([]byte, stride*height)
			require.NoError(t, Pack(a, f, src, width, height, stride))
			require.NoError(t, Pack(b, f, src, width, height, stride))
			assert.Equal(t, a, b)
		})
	}
}

func TestPackParallel_MatchesSequential(t *testing.T) {
	const width, height = 31, 17
	src := testFrame(width, height)

	for _, f := range Formats() {
		t.Run(f.FourCC(), func(t *testing.T) {
			stride, err := RowStride(f, width)
			require.NoError(t, err)

			seq := make([]byte, stride*height)
			require.NoError(t, Pack(seq, f, src, width, height, stride))

			for _, workers := range []int{2, 4, 16, height + 5} {
				par := make([]byte, stride*height)
				require.NoError(t, PackParallel(par, f, src, width, height, stride, workers))
				assert.Equal(t, seq, par, "workers=%d", workers)
			}
		})
	}
}

func TestPackParallel_Validates(t *testing.T) {
	src := testFrame(4, 4)
	err := PackParallel(make([]byte, 1), FormatBGRA8, src, 4, 4, 16, 4)
	assert.ErrorIs(t, err, ErrBufferTooSmall)

	err = PackParallel(nil, PixelFormat(7), src, 4, 4, 16, 4)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
