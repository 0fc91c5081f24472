package pixpack

import "errors"

// Error taxonomy for pack operations. All are reported synchronously from
// the entry points; none are retried internally since packing is a pure
// function of its inputs.
var (
	// ErrUnsupportedFormat - the tag is not in the registry or the packer
	ErrUnsupportedFormat = errors.New("pixpack: unsupported pixel format")
	// ErrInvalidDimension - width or height <= 0
	ErrInvalidDimension = errors.New("pixpack: invalid frame dimension")
	// ErrBufferTooSmall - destination shorter than rowStride * height
	ErrBufferTooSmall = errors.New("pixpack: destination buffer too small")
	// ErrSourceSizeMismatch - source sample count != width * height * 3
	ErrSourceSizeMismatch = errors.New("pixpack: source sample count mismatch")
)
