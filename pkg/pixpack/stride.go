package pixpack

import "fmt"

// RowStride returns the minimum byte stride for one scan line of width
// pixels in the given format, rounded up to the format's packing group.
// Widths that do not tile evenly into a group still pack; the trailing
// group is simply padded (e.g. v210 holds 6 pixels per 16 bytes, so a
// 7-pixel row strides to 32 bytes).
func RowStride(f PixelFormat, width int) (int, error) {
	d, err := Describe(f)
	if err != nil {
		return 0, err
	}
	if width <= 0 {
		return 0, fmt.Errorf("row stride for width %d: %w", width, ErrInvalidDimension)
	}
	groups := (width + d.GroupPixels - 1) / d.GroupPixels
	return groups * d.GroupBytes, nil
}
