package signalgen

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/jpfielding/signalgen.go/pkg/pixpack"
)

// Frame is one packed video frame ready for an output sink
type Frame struct {
	ID       uuid.UUID
	Format   pixpack.PixelFormat
	Width    int
	Height   int
	RowBytes int
	Data     []byte
	HDR      *HDRMetadata // nil when no static metadata is attached
}

// Output abstracts the playback sink a Generator drives. Hardware SDK
// bindings implement this; FileOutput and NullOutput ship for offline use.
type Output interface {
	// SupportedFormats reports the pixel formats the sink accepts
	SupportedFormats() []pixpack.PixelFormat
	// EnableVideo prepares the sink for frames of the given shape
	EnableVideo(width, height int, f pixpack.PixelFormat) error
	// DisableVideo tears the video path down
	DisableVideo() error
	// ScheduleFrame queues one packed frame for playback
	ScheduleFrame(frame *Frame) error
	// StartPlayback begins consuming scheduled frames
	StartPlayback() error
	// StopPlayback halts playback and drops anything still queued
	StopPlayback() error
}

// FileOutput writes scheduled frames back-to-back to an io.Writer.
// It accepts every registered pixel format.
type FileOutput struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
	frames  int
}

// NewFileOutput wraps w as a frame sink
func NewFileOutput(w io.Writer) *FileOutput {
	return &FileOutput{w: w}
}

func (o *FileOutput) SupportedFormats() []pixpack.PixelFormat {
	return pixpack.Formats()
}

func (o *FileOutput) EnableVideo(width, height int, f pixpack.PixelFormat) error {
	if _, err := pixpack.RowStride(f, width); err != nil {
		return err
	}
	if height <= 0 {
		return fmt.Errorf("enable video height %d: %w", height, pixpack.ErrInvalidDimension)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.enabled = true
	return nil
}

func (o *FileOutput) DisableVideo() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.enabled = false
	return nil
}

func (o *FileOutput) ScheduleFrame(frame *Frame) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.enabled {
		return ErrOutputDisabled
	}
	if _, err := o.w.Write(frame.Data); err != nil {
		return fmt.Errorf("write frame %s: %w", frame.ID, err)
	}
	o.frames++
	return nil
}

func (o *FileOutput) StartPlayback() error { return nil }
func (o *FileOutput) StopPlayback() error  { return nil }

// FramesWritten reports how many frames have been sunk
func (o *FileOutput) FramesWritten() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.frames
}

// NullOutput discards every frame. Useful for dry runs and benchmarks.
type NullOutput struct {
	mu        sync.Mutex
	enabled   bool
	scheduled int
}

func (o *NullOutput) SupportedFormats() []pixpack.PixelFormat {
	return pixpack.Formats()
}

func (o *NullOutput) EnableVideo(width, height int, f pixpack.PixelFormat) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.enabled = true
	return nil
}

func (o *NullOutput) DisableVideo() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.enabled = false
	return nil
}

func (o *NullOutput) ScheduleFrame(frame *Frame) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.enabled {
		return ErrOutputDisabled
	}
	o.scheduled++
	return nil
}

func (o *NullOutput) StartPlayback() error { return nil }
func (o *NullOutput) StopPlayback() error  { return nil }

// Scheduled reports how many frames were accepted
func (o *NullOutput) Scheduled() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.scheduled
}
