// Package signalgen drives test-pattern frames out of a playback sink:
// output lifecycle, pixel-format selection against the sink's supported
// set, frame creation through the pixpack engine, and HDR static metadata.
// It is the device-control layer; all byte-layout work lives in pixpack.
package signalgen

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"
	"github.com/jpfielding/signalgen.go/pkg/pixpack"
)

var (
	// ErrOutputDisabled - output lifecycle methods called before StartOutput
	ErrOutputDisabled = errors.New("signalgen: video output not enabled")
	// ErrNoFrameData - CreateFrame called before SetFrameData
	ErrNoFrameData = errors.New("signalgen: no pending frame data")
	// ErrNoFrame - ScheduleFrame called before CreateFrame
	ErrNoFrame = errors.New("signalgen: no frame created")
	// ErrFormatIndex - pixel format index outside the supported set
	ErrFormatIndex = errors.New("signalgen: pixel format index out of range")
)

// Generator owns one output sink and the state needed to feed it frames:
// current mode, chosen pixel format, pending RGB16 data, HDR metadata.
// Not safe for concurrent use; callers serialize, as with the SDKs it fronts.
type Generator struct {
	out     Output
	log     *slog.Logger
	width   int
	height  int
	format  pixpack.PixelFormat
	pending []uint16
	hdr     *HDRMetadata
	frame   *Frame
	enabled bool
	workers int
}

// Option configures a Generator
type Option func(*Generator)

// WithLogger replaces the default slog logger
func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// WithPackWorkers sets the row-parallel worker count for frame packing
func WithPackWorkers(n int) Option {
	return func(g *Generator) { g.workers = n }
}

// New builds a Generator over an output sink, defaulting to 1920x1080 and
// the sink's first supported format.
func New(out Output, opts ...Option) *Generator {
	g := &Generator{
		out:     out,
		log:     slog.Default(),
		width:   1920,
		height:  1080,
		workers: runtime.NumCPU(),
	}
	if formats := out.SupportedFormats(); len(formats) > 0 {
		g.format = formats[0]
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// StartOutput enables video on the sink for the current mode
func (g *Generator) StartOutput() error {
	if g.enabled {
		return nil
	}
	if err := g.out.EnableVideo(g.width, g.height, g.format); err != nil {
		return fmt.Errorf("enable video: %w", err)
	}
	g.enabled = true
	g.log.Info("video output enabled",
		"width", g.width, "height", g.height, "format", g.format.String())
	return nil
}

// StopOutput halts playback and disables video
func (g *Generator) StopOutput() error {
	if !g.enabled {
		return nil
	}
	if err := g.out.StopPlayback(); err != nil {
		return fmt.Errorf("stop playback: %w", err)
	}
	if err := g.out.DisableVideo(); err != nil {
		return fmt.Errorf("disable video: %w", err)
	}
	g.enabled = false
	g.log.Info("video output disabled")
	return nil
}

// SetFrameData stages a full-range RGB16 frame (three samples per pixel)
// and updates the output mode when dimensions change.
func (g *Generator) SetFrameData(data []uint16, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("frame data %dx%d: %w", width, height, pixpack.ErrInvalidDimension)
	}
	if len(data) != width*height*3 {
		return fmt.Errorf("frame data %d samples for %dx%d: %w",
			len(data), width, height, pixpack.ErrSourceSizeMismatch)
	}
	if width != g.width || height != g.height {
		g.log.Info("frame dimensions updated", "width", width, "height", height)
		g.width = width
		g.height = height
	}
	g.pending = append(g.pending[:0], data...)
	return nil
}

// SetHDRMetadata attaches static HDR metadata to frames created from now on
func (g *Generator) SetHDRMetadata(m HDRMetadata) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("hdr metadata: %w", err)
	}
	g.hdr = &m
	g.log.Info("hdr metadata set",
		"eotf", m.EOTF.String(), "maxCLL", m.MaxCLL, "maxFALL", m.MaxFALL)
	return nil
}

// SupportedFormats reports the sink's pixel formats in selection order
func (g *Generator) SupportedFormats() []pixpack.PixelFormat {
	return g.out.SupportedFormats()
}

// SetPixelFormatIndex selects a format by its position in SupportedFormats
func (g *Generator) SetPixelFormatIndex(i int) error {
	formats := g.out.SupportedFormats()
	if i < 0 || i >= len(formats) {
		return fmt.Errorf("index %d of %d formats: %w", i, len(formats), ErrFormatIndex)
	}
	g.format = formats[i]
	g.log.Info("pixel format set", "index", i, "format", g.format.String())
	return nil
}

// PixelFormatIndex returns the current format's index in SupportedFormats,
// or -1 when the sink no longer lists it.
func (g *Generator) PixelFormatIndex() int {
	for i, f := range g.out.SupportedFormats() {
		if f == g.format {
			return i
		}
	}
	return -1
}

// PixelFormat returns the currently selected format
func (g *Generator) PixelFormat() pixpack.PixelFormat {
	return g.format
}

// CreateFrame packs the pending RGB16 data into a new frame in the current
// pixel format. Requires StartOutput and SetFrameData to have run.
func (g *Generator) CreateFrame() (*Frame, error) {
	if !g.enabled {
		return nil, ErrOutputDisabled
	}
	if len(g.pending) == 0 {
		return nil, ErrNoFrameData
	}
	rowBytes, err := pixpack.RowStride(g.format, g.width)
	if err != nil {
		return nil, fmt.Errorf("row stride: %w", err)
	}
	frame := &Frame{
		ID:       uuid.New(),
		Format:   g.format,
		Width:    g.width,
		Height:   g.height,
		RowBytes: rowBytes,
		Data:     make([]byte, rowBytes*g.height),
		HDR:      g.hdr,
	}
	if err := pixpack.PackParallel(frame.Data, g.format, g.pending,
		g.width, g.height, rowBytes, g.workers); err != nil {
		return nil, fmt.Errorf("pack frame: %w", err)
	}
	g.frame = frame
	g.log.Info("frame created",
		"frame", frame.ID.String(),
		"width", frame.Width, "height", frame.Height,
		"rowBytes", frame.RowBytes, "format", frame.Format.String(),
		"hdr", frame.HDR != nil)
	return frame, nil
}

// ScheduleFrame queues the most recently created frame on the sink
func (g *Generator) ScheduleFrame() error {
	if g.frame == nil {
		return ErrNoFrame
	}
	if err := g.out.ScheduleFrame(g.frame); err != nil {
		return fmt.Errorf("schedule frame %s: %w", g.frame.ID, err)
	}
	g.log.Info("frame scheduled", "frame", g.frame.ID.String())
	return nil
}

// StartPlayback begins playback of scheduled frames
func (g *Generator) StartPlayback() error {
	if !g.enabled {
		return ErrOutputDisabled
	}
	if err := g.out.StartPlayback(); err != nil {
		return fmt.Errorf("start playback: %w", err)
	}
	g.log.Info("playback started")
	return nil
}
