// Package pattern generates deterministic full-range RGB16 test frames.
// Buffers hold three 16-bit samples per pixel in row-major order, sized
// width*height*3, ready for pixpack.Pack.
package pattern

// expand8 widens an 8-bit level to full-range 16 bits (v * 257 maps
// 255 -> 65535 exactly)
func expand8(v uint8) uint16 {
	return uint16(v) * 257
}

// Solid returns a frame filled with one RGB16 color
func Solid(width, height int, r, g, b uint16) []uint16 {
	buf := make([]uint16, width*height*3)
	for i := 0; i < len(buf); i += 3 {
		buf[i] = r
		buf[i+1] = g
		buf[i+2] = b
	}
	return buf
}

// barColors are the seven 75% SMPTE bars, left to right
var barColors = [7][3]uint8{
	{192, 192, 192}, // gray
	{192, 192, 0},   // yellow
	{0, 192, 192},   // cyan
	{0, 192, 0},     // green
	{192, 0, 192},   // magenta
	{192, 0, 0},     // red
	{0, 0, 192},     // blue
}

// ColorBars returns a standard SMPTE 75% color-bar frame
func ColorBars(width, height int) []uint16 {
	buf := make([]uint16, width*height*3)
	barWidth := width / 7
	if barWidth == 0 {
		barWidth = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			bar := x / barWidth
			if bar > 6 {
				bar = 6
			}
			i := (y*width + x) * 3
			buf[i] = expand8(barColors[bar][0])
			buf[i+1] = expand8(barColors[bar][1])
			buf[i+2] = expand8(barColors[bar][2])
		}
	}
	return buf
}

// HGradient returns a horizontal black-to-white luminance ramp
func HGradient(width, height int) []uint16 {
	buf := make([]uint16, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var v uint16
			if width > 1 {
				v = uint16(uint64(x) * 65535 / uint64(width-1))
			}
			i := (y*width + x) * 3
			buf[i] = v
			buf[i+1] = v
			buf[i+2] = v
		}
	}
	return buf
}

// Checkerboard returns an alternating black/white grid with cell-sized
// squares (cell <= 0 defaults to 8)
func Checkerboard(width, height, cell int) []uint16 {
	if cell <= 0 {
		cell = 8
	}
	buf := make([]uint16, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var v uint16
			if (x/cell+y/cell)%2 == 0 {
				v = 65535
			}
			i := (y*width + x) * 3
			buf[i] = v
			buf[i+1] = v
			buf[i+2] = v
		}
	}
	return buf
}

// ByName resolves a pattern generator by CLI name, returning nil for
// unknown names. Solid color is not addressable here; callers compose it
// directly.
func ByName(name string) func(width, height int) []uint16 {
	switch name {
	case "bars":
		return ColorBars
	case "gradient":
		return HGradient
	case "checker":
		return func(w, h int) []uint16 { return Checkerboard(w, h, 8) }
	case "black":
		return func(w, h int) []uint16 { return Solid(w, h, 0, 0, 0) }
	case "white":
		return func(w, h int) []uint16 { return Solid(w, h, 65535, 65535, 65535) }
	default:
		return nil
	}
}
