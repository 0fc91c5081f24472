package signalgen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfielding/signalgen.go/pkg/pattern"
	"github.com/jpfielding/signalgen.go/pkg/pixpack"
)

func TestGenerator_Lifecycle(t *testing.T) {
	out := &NullOutput{}
	g := New(out)

	// Frame creation requires an enabled output
	_, err := g.CreateFrame()
	assert.ErrorIs(t, err, ErrOutputDisabled)

	require.NoError(t, g.StartOutput())
	require.NoError(t, g.StartOutput()) // idempotent

	// And staged data
	_, err = g.CreateFrame()
	assert.ErrorIs(t, err, ErrNoFrameData)

	require.NoError(t, g.SetFrameData(pattern.ColorBars(1920, 1080), 1920, 1080))
	frame, err := g.CreateFrame()
	require.NoError(t, err)
	assert.Equal(t, 1920, frame.Width)
	assert.Equal(t, 1080, frame.Height)
	assert.Len(t, frame.Data, frame.RowBytes*1080)

	require.NoError(t, g.ScheduleFrame())
	require.NoError(t, g.StartPlayback())
	assert.Equal(t, 1, out.Scheduled())

	require.NoError(t, g.StopOutput())
	require.NoError(t, g.StopOutput()) // idempotent
}

func TestGenerator_SetFrameData_Validation(t *testing.T) {
	g := New(&NullOutput{})

	err := g.SetFrameData(nil, 0, 1)
	assert.ErrorIs(t, err, pixpack.ErrInvalidDimension)

	err = g.SetFrameData(make([]uint16, 5), 2, 1)
	assert.ErrorIs(t, err, pixpack.ErrSourceSizeMismatch)
}

func TestGenerator_SetFrameData_UpdatesMode(t *testing.T) {
	g := New(&NullOutput{})
	require.NoError(t, g.SetFrameData(pattern.HGradient(640, 480), 640, 480))
	require.NoError(t, g.StartOutput())

	frame, err := g.CreateFrame()
	require.NoError(t, err)
	assert.Equal(t, 640, frame.Width)
	assert.Equal(t, 480, frame.Height)
}

func TestGenerator_FormatSelection(t *testing.T) {
	g := New(&NullOutput{})
	formats := g.SupportedFormats()
	require.NotEmpty(t, formats)

	// Default is the first supported format
	assert.Equal(t, formats[0], g.PixelFormat())
	assert.Equal(t, 0, g.PixelFormatIndex())

	require.NoError(t, g.SetPixelFormatIndex(len(formats)-1))
	assert.Equal(t, formats[len(formats)-1], g.PixelFormat())
	assert.Equal(t, len(formats)-1, g.PixelFormatIndex())

	assert.ErrorIs(t, g.SetPixelFormatIndex(-1), ErrFormatIndex)
	assert.ErrorIs(t, g.SetPixelFormatIndex(len(formats)), ErrFormatIndex)
}

func TestGenerator_HDRMetadata(t *testing.T) {
	g := New(&NullOutput{})
	require.NoError(t, g.StartOutput())
	require.NoError(t, g.SetFrameData(pattern.Solid(8, 8, 65535, 65535, 65535), 8, 8))

	// No metadata by default
	frame, err := g.CreateFrame()
	require.NoError(t, err)
	assert.Nil(t, frame.HDR)

	require.NoError(t, g.SetHDRMetadata(HDRMetadata{EOTF: EOTFPQ, MaxCLL: 2000, MaxFALL: 400}))
	frame, err = g.CreateFrame()
	require.NoError(t, err)
	require.NotNil(t, frame.HDR)
	assert.Equal(t, EOTFPQ, frame.HDR.EOTF)
	assert.Equal(t, uint16(2000), frame.HDR.MaxCLL)

	// Out-of-range EOTF rejected
	assert.Error(t, g.SetHDRMetadata(HDRMetadata{EOTF: 8}))
}

func TestFileOutput_WritesPackedBytes(t *testing.T) {
	var buf bytes.Buffer
	out := NewFileOutput(&buf)
	g := New(out, WithPackWorkers(1))

	// Red/green pair through BGRA, checked byte for byte at the sink
	idx := -1
	for i, f := range g.SupportedFormats() {
		if f == pixpack.FormatBGRA8 {
			idx = i
		}
	}
	require.NotEqual(t, -1, idx)
	require.NoError(t, g.SetPixelFormatIndex(idx))

	require.NoError(t, g.SetFrameData([]uint16{65535, 0, 0, 0, 65535, 0}, 2, 1))
	require.NoError(t, g.StartOutput())

	_, err := g.CreateFrame()
	require.NoError(t, err)
	require.NoError(t, g.ScheduleFrame())

	assert.Equal(t, []byte{0, 0, 255, 255, 0, 255, 0, 255}, buf.Bytes())
	assert.Equal(t, 1, out.FramesWritten())
}

func TestFileOutput_DisabledRejectsFrames(t *testing.T) {
	out := NewFileOutput(&bytes.Buffer{})
	err := out.ScheduleFrame(&Frame{})
	assert.ErrorIs(t, err, ErrOutputDisabled)
}

func TestHDRMetadata_Validate(t *testing.T) {
	tests := []struct {
		name string
		eotf EOTF
		ok   bool
	}{
		{"sdr", EOTFTraditionalSDR, true},
		{"pq", EOTFPQ, true},
		{"hlg", EOTFHLG, true},
		{"reserved upper bound", 7, true},
		{"too high", 8, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HDRMetadata{EOTF: tt.eotf}.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestEOTF_String(t *testing.T) {
	assert.Equal(t, "PQ (ST 2084)", EOTFPQ.String())
	assert.Equal(t, "HLG", EOTFHLG.String())
	assert.Equal(t, "Reserved (5)", EOTF(5).String())
}
