// Package pixpack converts logical full-range RGB16 frames into the exact
// byte layouts professional capture/playback hardware consumes: 8-bit
// packed RGB/BGRA, 10- and 12-bit packed RGB in both byte orders, and
// 8/10-bit YUV 4:2:2. It owns bit-depth rescaling, the fixed RGB to YUV
// matrix, sub-pixel bit packing, and row-stride math; it performs no I/O
// and keeps no state between calls.
package pixpack

import (
	"fmt"
	"sync"
)

// Pack converts a full-range RGB16 frame into the wire layout of format f,
// writing rowStride bytes per scan line into dst. src holds three 16-bit
// samples per pixel in row-major order. dst must hold at least
// rowStride * height bytes and rowStride must be at least RowStride(f,
// width). On error the destination contents are unspecified.
//
// Pack is the only place format-specific control flow lives; every arm is
// strictly validate, rescale and/or convert, then pack.
func Pack(dst []byte, f PixelFormat, src []uint16, width, height, rowStride int) error {
	d, err := validate(dst, f, src, width, height, rowStride)
	if err != nil {
		return err
	}
	var comps []uint16
	for row := 0; row < height; row++ {
		comps = prepareRow(comps, d, src[row*width*3:(row+1)*width*3])
		packRow(dst[row*rowStride:(row+1)*rowStride], d, comps, width)
	}
	return nil
}

// PackParallel is Pack with rows partitioned across workers goroutines.
// Output is byte-identical to Pack; rows are independent given the stride
// and descriptor (4:2:2 chroma subsampling is intra-row only). workers <= 1
// falls back to the sequential path.
func PackParallel(dst []byte, f PixelFormat, src []uint16, width, height, rowStride, workers int) error {
	if workers <= 1 || height == 1 {
		return Pack(dst, f, src, width, height, rowStride)
	}
	d, err := validate(dst, f, src, width, height, rowStride)
	if err != nil {
		return err
	}
	if workers > height {
		workers = height
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * height / workers
		hi := (w + 1) * height / workers
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			var comps []uint16
			for row := lo; row < hi; row++ {
				comps = prepareRow(comps, d, src[row*width*3:(row+1)*width*3])
				packRow(dst[row*rowStride:(row+1)*rowStride], d, comps, width)
			}
		}(lo, hi)
	}
	wg.Wait()
	return nil
}

// validate runs the shared precondition checks and resolves the descriptor
func validate(dst []byte, f PixelFormat, src []uint16, width, height, rowStride int) (Descriptor, error) {
	d, err := Describe(f)
	if err != nil {
		return Descriptor{}, err
	}
	if width <= 0 || height <= 0 {
		return Descriptor{}, fmt.Errorf("pack %dx%d: %w", width, height, ErrInvalidDimension)
	}
	min, err := RowStride(f, width)
	if err != nil {
		return Descriptor{}, err
	}
	if rowStride < min {
		return Descriptor{}, fmt.Errorf("pack %s: row stride %d < minimum %d: %w",
			d.Name, rowStride, min, ErrBufferTooSmall)
	}
	if len(src) != width*height*3 {
		return Descriptor{}, fmt.Errorf("pack %s: %d samples for %dx%d (want %d): %w",
			d.Name, len(src), width, height, width*height*3, ErrSourceSizeMismatch)
	}
	if len(dst) < rowStride*height {
		return Descriptor{}, fmt.Errorf("pack %s: destination %d bytes < %d: %w",
			d.Name, len(dst), rowStride*height, ErrBufferTooSmall)
	}
	return d, nil
}

// prepareRow rescales or color-converts one source row into working
// component triples at the format's depth, reusing scratch.
func prepareRow(scratch []uint16, d Descriptor, src []uint16) []uint16 {
	if d.YUV {
		return convertRowYUV(scratch, src)
	}
	return rescaleRow(scratch, src, d.Depth)
}

// packRow serializes one prepared row. The switch is exhaustive over the
// descriptor registry; the default arm is unreachable for registered tags.
func packRow(dst []byte, d Descriptor, comps []uint16, width int) {
	switch d.Format {
	case FormatRGB8:
		packRowRGB8(dst, comps, width)
	case FormatARGB8:
		packRowARGB8(dst, comps, width)
	case FormatBGRA8:
		packRowBGRA8(dst, comps, width)
	case Format10BitRGB:
		packRowR210(dst, comps, width)
	case Format10BitRGBX, Format10BitRGBXLE:
		packRowR10X(dst, comps, width, d.ByteOrder)
	case Format12BitRGB, Format12BitRGBLE:
		packRow12Bit(dst, comps, width, d.ByteOrder)
	case Format8BitYUV:
		packRow2VUY(dst, comps, width)
	case Format10BitYUV:
		packRowV210(dst, comps, width)
	case Format10BitYUVA:
		packRowAy10(dst, comps, width)
	}
}
