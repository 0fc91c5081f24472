package pixpack

// rescale maps a full-range 16-bit sample to an N-bit target depth using
// truncating integer division: floor(s * (2^bits - 1) / 65535). Truncation
// is load-bearing: rounding instead changes output bytes and breaks
// bit-exact compatibility with existing captures.
func rescale(s uint16, bits int) uint16 {
	max := uint32(1)<<bits - 1
	return uint16(uint32(s) * max / 65535)
}

// rescaleRow converts one row of RGB16 samples (3 per pixel) to the target
// depth, reusing dst when it has capacity.
func rescaleRow(dst []uint16, src []uint16, bits int) []uint16 {
	if cap(dst) < len(src) {
		dst = make([]uint16, len(src))
	}
	dst = dst[:len(src)]
	for i, s := range src {
		dst[i] = rescale(s, bits)
	}
	return dst
}
