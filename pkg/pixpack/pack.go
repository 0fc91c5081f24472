package pixpack

import "encoding/binary"

// Row packers. Each writes exactly one scan line into dst, which the
// dispatcher has already sliced to the row stride and validated. comps
// holds interleaved component triples at the format's working depth:
// R/G/B for the RGB family, Y/Cb/Cr for the YUV family.

// packRowRGB8 writes 3 bytes per pixel: R, G, B
func packRowRGB8(dst []byte, comps []uint16, width int) {
	for x := 0; x < width; x++ {
		dst[x*3+0] = byte(comps[x*3+0])
		dst[x*3+1] = byte(comps[x*3+1])
		dst[x*3+2] = byte(comps[x*3+2])
	}
}

// packRowARGB8 writes 4 bytes per pixel: A=255, R, G, B
func packRowARGB8(dst []byte, comps []uint16, width int) {
	for x := 0; x < width; x++ {
		dst[x*4+0] = 0xFF
		dst[x*4+1] = byte(comps[x*3+0])
		dst[x*4+2] = byte(comps[x*3+1])
		dst[x*4+3] = byte(comps[x*3+2])
	}
}

// packRowBGRA8 writes 4 bytes per pixel: B, G, R, A=255
func packRowBGRA8(dst []byte, comps []uint16, width int) {
	for x := 0; x < width; x++ {
		dst[x*4+0] = byte(comps[x*3+2])
		dst[x*4+1] = byte(comps[x*3+1])
		dst[x*4+2] = byte(comps[x*3+0])
		dst[x*4+3] = 0xFF
	}
}

// packRowR210 packs three 10-bit components into one big-endian 32-bit
// word per pixel: bits 29-20 R, 19-10 G, 9-0 B, top two bits zero.
func packRowR210(dst []byte, comps []uint16, width int) {
	for x := 0; x < width; x++ {
		w := uint32(comps[x*3+0])<<20 | uint32(comps[x*3+1])<<10 | uint32(comps[x*3+2])
		binary.BigEndian.PutUint32(dst[x*4:], w)
	}
}

// packRowR10X packs three 10-bit components MSB-justified into a 32-bit
// word: bits 31-22 R, 21-12 G, 11-2 B, low two bits zero. Byte order of
// the word distinguishes R10b from R10l.
func packRowR10X(dst []byte, comps []uint16, width int, order ByteOrder) {
	for x := 0; x < width; x++ {
		w := uint32(comps[x*3+0])<<22 | uint32(comps[x*3+1])<<12 | uint32(comps[x*3+2])<<2
		if order == BigEndian {
			binary.BigEndian.PutUint32(dst[x*4:], w)
		} else {
			binary.LittleEndian.PutUint32(dst[x*4:], w)
		}
	}
}

// packRow12Bit serializes 12-bit components as a contiguous bitstream with
// no padding between components. Big-endian fills each byte from its most
// significant bit down; little-endian fills from the least significant bit
// up, which swaps the byte order within each 12-bit unit without touching
// bit order. A partial byte at end of row is flushed zero-padded.
func packRow12Bit(dst []byte, comps []uint16, width int, order ByteOrder) {
	var acc uint32
	bits := 0
	di := 0
	if order == BigEndian {
		for i := 0; i < width*3; i++ {
			acc = acc<<12 | uint32(comps[i]&0xFFF)
			bits += 12
			for bits >= 8 {
				bits -= 8
				dst[di] = byte(acc >> bits)
				di++
			}
			acc &= 1<<bits - 1
		}
		if bits > 0 {
			dst[di] = byte(acc << (8 - bits))
			di++
		}
		return
	}
	for i := 0; i < width*3; i++ {
		acc |= uint32(comps[i]&0xFFF) << bits
		bits += 12
		for bits >= 8 {
			dst[di] = byte(acc)
			acc >>= 8
			bits -= 8
			di++
		}
	}
	if bits > 0 {
		dst[di] = byte(acc)
		di++
	}
}

// packRow2VUY packs 8-bit YUV 4:2:2 as U0 Y0 V0 Y1 macro-pixels. Chroma
// comes from the first pixel of each pair; a trailing odd pixel closes its
// group with duplicated luma.
func packRow2VUY(dst []byte, comps []uint16, width int) {
	for x := 0; x < width; x += 2 {
		y0 := byte(comps[x*3+0])
		u := byte(comps[x*3+1])
		v := byte(comps[x*3+2])
		y1 := y0
		if x+1 < width {
			y1 = byte(comps[(x+1)*3+0])
		}
		g := (x / 2) * 4
		dst[g+0] = u
		dst[g+1] = y0
		dst[g+2] = v
		dst[g+3] = y1
	}
}

// packRowV210 packs 10-bit YUV 4:2:2 in the 6-pixel/16-byte group layout:
// four little-endian 32-bit words carrying the component sequence
// Cb0 Y0 Cr0 / Y1 Cb2 Y2 / Cr2 Y3 Cb4 / Y4 Cr4 Y5. Pixels past the row
// width within the final group repeat the last pixel's components.
func packRowV210(dst []byte, comps []uint16, width int) {
	y := func(x int) uint32 {
		if x >= width {
			x = width - 1
		}
		return uint32(comps[x*3+0])
	}
	cb := func(x int) uint32 {
		if x >= width {
			x = width - 1
		}
		return uint32(comps[x*3+1])
	}
	cr := func(x int) uint32 {
		if x >= width {
			x = width - 1
		}
		return uint32(comps[x*3+2])
	}
	for x, di := 0, 0; x < width; x, di = x+6, di+16 {
		binary.LittleEndian.PutUint32(dst[di+0:], cb(x)|y(x)<<10|cr(x)<<20)
		binary.LittleEndian.PutUint32(dst[di+4:], y(x+1)|cb(x+2)<<10|y(x+2)<<20)
		binary.LittleEndian.PutUint32(dst[di+8:], cr(x+2)|y(x+3)<<10|cb(x+4)<<20)
		binary.LittleEndian.PutUint32(dst[di+12:], y(x+4)|cr(x+4)<<10|y(x+5)<<20)
	}
}

// packRowAy10 packs 10-bit YUVA 4:2:2 as one big-endian 32-bit word per
// pixel: bits 29-20 alpha (opaque, 1023), 19-10 luma, 9-0 chroma. Chroma
// alternates Cb/Cr across the pair, both sampled from the even pixel.
func packRowAy10(dst []byte, comps []uint16, width int) {
	const alpha = uint32(1023) << 20
	for x := 0; x < width; x++ {
		even := x &^ 1
		c := uint32(comps[even*3+1]) // Cb
		if x&1 == 1 {
			c = uint32(comps[even*3+2]) // Cr
		}
		w := alpha | uint32(comps[x*3+0])<<10 | c
		binary.BigEndian.PutUint32(dst[x*4:], w)
	}
}
