package pixpack

// rgbToYUV converts one RGB triple to Y/Cb/Cr using the fixed-point BT.601
// style matrix. Inputs are 8-bit-equivalent samples; conversion always runs
// at 8-bit precision even when the result lands in a 10-bit container
// (deeper YUV formats store the 8-bit values directly in their wider slots).
//
//	y = ( 66r + 129g +  25b + 128) >> 8
//	u = (-38r -  74g + 112b + 128) >> 8
//	v = (112r -  94g -  18b + 128) >> 8
//
// Results clamp hard to [0,255]; no wraparound.
func rgbToYUV(r, g, b uint8) (y, u, v uint8) {
	ri, gi, bi := int(r), int(g), int(b)
	y = clamp8((66*ri + 129*gi + 25*bi + 128) >> 8)
	u = clamp8((-38*ri - 74*gi + 112*bi + 128) >> 8)
	v = clamp8((112*ri - 94*gi - 18*bi + 128) >> 8)
	return y, u, v
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// convertRowYUV rescales one RGB16 row to 8-bit and applies the matrix,
// producing interleaved Y/Cb/Cr triples (3 per pixel) in dst.
func convertRowYUV(dst []uint16, src []uint16) []uint16 {
	if cap(dst) < len(src) {
		dst = make([]uint16, len(src))
	}
	dst = dst[:len(src)]
	for i := 0; i+2 < len(src); i += 3 {
		r := uint8(rescale(src[i], 8))
		g := uint8(rescale(src[i+1], 8))
		b := uint8(rescale(src[i+2], 8))
		y, u, v := rgbToYUV(r, g, b)
		dst[i] = uint16(y)
		dst[i+1] = uint16(u)
		dst[i+2] = uint16(v)
	}
	return dst
}
