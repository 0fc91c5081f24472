package pixpack

import "fmt"

// PixelFormat identifies a wire-level frame layout. Values are the
// four-character codes the capture/playback drivers use on disk and on the
// wire, so logs and format listings line up with vendor tooling.
type PixelFormat uint32

func fourCC(s string) PixelFormat {
	return PixelFormat(uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3]))
}

// Supported pixel formats
const (
	// FormatRGB8 is 8-bit RGB, 3 bytes per pixel, no alpha
	FormatRGB8 = PixelFormat(24)
	// FormatARGB8 is 8-bit ARGB, alpha first, 4 bytes per pixel
	FormatARGB8 = PixelFormat(32)
)

var (
	// FormatBGRA8 is 8-bit BGRA ('BGRA'), 4 bytes per pixel
	FormatBGRA8 = fourCC("BGRA")
	// Format10BitRGB is 10-bit RGB ('r210'), one big-endian 32-bit word per pixel
	Format10BitRGB = fourCC("r210")
	// Format12BitRGB is big-endian 12-bit RGB ('R12B'), 8 pixels per 36 bytes
	Format12BitRGB = fourCC("R12B")
	// Format12BitRGBLE is little-endian 12-bit RGB ('R12L')
	Format12BitRGBLE = fourCC("R12L")
	// Format8BitYUV is 8-bit YUV 4:2:2 ('2vuy'), 2 pixels per 4 bytes
	Format8BitYUV = fourCC("2vuy")
	// Format10BitYUV is 10-bit YUV 4:2:2 ('v210'), 6 pixels per 16 bytes
	Format10BitYUV = fourCC("v210")
	// Format10BitRGBX is 10-bit RGB MSB-justified ('R10b'), big-endian word
	Format10BitRGBX = fourCC("R10b")
	// Format10BitRGBXLE is 10-bit RGB MSB-justified ('R10l'), little-endian word
	Format10BitRGBXLE = fourCC("R10l")
	// Format10BitYUVA is 10-bit YUVA 4:2:2 ('Ay10'), one word per pixel
	Format10BitYUVA = fourCC("Ay10")
)

// Subsampling describes chroma siting relative to luma
type Subsampling int

const (
	// Subsample444 - one chroma pair per pixel (or RGB, no chroma)
	Subsample444 Subsampling = iota
	// Subsample422 - one chroma pair shared by two horizontal pixels
	Subsample422
)

// ByteOrder selects byte ordering of multi-byte packed units
type ByteOrder int

const (
	// BigEndian - most significant byte first
	BigEndian ByteOrder = iota
	// LittleEndian - least significant byte first
	LittleEndian
)

// Descriptor carries the packing parameters for one pixel format.
// One descriptor per format, statically registered, never mutated.
type Descriptor struct {
	Format      PixelFormat
	Name        string      // human-readable, e.g. "10-bit YUV (v210)"
	Depth       int         // bits per component
	Subsampling Subsampling // 4:4:4 vs 4:2:2
	ByteOrder   ByteOrder
	HasAlpha    bool
	YUV         bool // components are Y/Cb/Cr rather than R/G/B
	GroupPixels int  // pixels per packing group
	GroupBytes  int  // bytes per packing group
}

// FourCC returns the format tag as its four ASCII characters, or the
// decimal value for the legacy numeric tags (24-bit RGB, 32-bit ARGB).
func (f PixelFormat) FourCC() string {
	if f < 0x20202020 {
		return fmt.Sprintf("%d", uint32(f))
	}
	return string([]byte{byte(f >> 24), byte(f >> 16), byte(f >> 8), byte(f)})
}

func (f PixelFormat) String() string {
	if d, ok := descriptors[f]; ok {
		return d.Name
	}
	return fmt.Sprintf("Unknown (%s)", f.FourCC())
}

// descriptors is the single registry of packing parameters. Adding a format
// means adding exactly one entry here plus its arm in the Pack dispatch.
var descriptors = map[PixelFormat]Descriptor{
	FormatRGB8: {
		Format: FormatRGB8, Name: "8-bit RGB (24)",
		Depth: 8, Subsampling: Subsample444, ByteOrder: BigEndian,
		GroupPixels: 1, GroupBytes: 3,
	},
	FormatARGB8: {
		Format: FormatARGB8, Name: "8-bit ARGB (32)",
		Depth: 8, Subsampling: Subsample444, ByteOrder: BigEndian, HasAlpha: true,
		GroupPixels: 1, GroupBytes: 4,
	},
	FormatBGRA8: {
		Format: FormatBGRA8, Name: "8-bit BGRA (BGRA)",
		Depth: 8, Subsampling: Subsample444, ByteOrder: LittleEndian, HasAlpha: true,
		GroupPixels: 1, GroupBytes: 4,
	},
	Format10BitRGB: {
		Format: Format10BitRGB, Name: "10-bit RGB (r210)",
		Depth: 10, Subsampling: Subsample444, ByteOrder: BigEndian,
		GroupPixels: 1, GroupBytes: 4,
	},
	Format12BitRGB: {
		Format: Format12BitRGB, Name: "12-bit RGB (R12B)",
		Depth: 12, Subsampling: Subsample444, ByteOrder: BigEndian,
		GroupPixels: 8, GroupBytes: 36,
	},
	Format12BitRGBLE: {
		Format: Format12BitRGBLE, Name: "12-bit RGB LE (R12L)",
		Depth: 12, Subsampling: Subsample444, ByteOrder: LittleEndian,
		GroupPixels: 8, GroupBytes: 36,
	},
	Format8BitYUV: {
		Format: Format8BitYUV, Name: "8-bit YUV (2vuy)",
		Depth: 8, Subsampling: Subsample422, ByteOrder: BigEndian, YUV: true,
		GroupPixels: 2, GroupBytes: 4,
	},
	Format10BitYUV: {
		Format: Format10BitYUV, Name: "10-bit YUV (v210)",
		Depth: 10, Subsampling: Subsample422, ByteOrder: LittleEndian, YUV: true,
		GroupPixels: 6, GroupBytes: 16,
	},
	Format10BitRGBX: {
		Format: Format10BitRGBX, Name: "10-bit RGBX (R10b)",
		Depth: 10, Subsampling: Subsample444, ByteOrder: BigEndian,
		GroupPixels: 1, GroupBytes: 4,
	},
	Format10BitRGBXLE: {
		Format: Format10BitRGBXLE, Name: "10-bit RGBX LE (R10l)",
		Depth: 10, Subsampling: Subsample444, ByteOrder: LittleEndian,
		GroupPixels: 1, GroupBytes: 4,
	},
	Format10BitYUVA: {
		Format: Format10BitYUVA, Name: "10-bit YUVA (Ay10)",
		Depth: 10, Subsampling: Subsample422, ByteOrder: BigEndian, HasAlpha: true, YUV: true,
		GroupPixels: 2, GroupBytes: 8,
	},
}

// formatOrder fixes the enumeration order for Formats(); map iteration
// order would leak into format indices reported to callers.
var formatOrder = []PixelFormat{
	Format8BitYUV,
	Format10BitYUV,
	Format10BitYUVA,
	FormatRGB8,
	FormatARGB8,
	FormatBGRA8,
	Format10BitRGB,
	Format12BitRGB,
	Format12BitRGBLE,
	Format10BitRGBXLE,
	Format10BitRGBX,
}

// Describe returns the descriptor for a format tag
func Describe(f PixelFormat) (Descriptor, error) {
	d, ok := descriptors[f]
	if !ok {
		return Descriptor{}, fmt.Errorf("describe %s: %w", f.FourCC(), ErrUnsupportedFormat)
	}
	return d, nil
}

// Formats returns all registered pixel formats in stable order
func Formats() []PixelFormat {
	out := make([]PixelFormat, len(formatOrder))
	copy(out, formatOrder)
	return out
}
