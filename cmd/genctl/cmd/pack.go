package cmd

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jpfielding/signalgen.go/pkg/pixpack"
	"github.com/spf13/cobra"
)

// NewPackCmd packs a raw RGB16 frame read from a file or stdin
func NewPackCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "pack a raw RGB16 frame into a pixel format",
		Long:  "read a full-range RGB16 frame (three little-endian 16-bit samples per pixel, row-major) and write the packed bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, _ := cmd.Flags().GetString("in")
			code, _ := cmd.Flags().GetString("format")
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			outPath, _ := cmd.Flags().GetString("out")

			format, err := formatByFourCC(code)
			if err != nil {
				return err
			}

			var in io.Reader
			inPath = strings.TrimPrefix(inPath, "file://")
			if inPath == "-" {
				in = os.Stdin
			} else {
				f, err := os.Open(inPath)
				if err != nil {
					return fmt.Errorf("failed to open file: %v", err)
				}
				in = f
				defer f.Close()
			}

			raw, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read input: %v", err)
			}
			if len(raw) != width*height*3*2 {
				return fmt.Errorf("input is %d bytes, want %d for %dx%d RGB16: %w",
					len(raw), width*height*3*2, width, height, pixpack.ErrSourceSizeMismatch)
			}
			src := make([]uint16, width*height*3)
			for i := range src {
				src[i] = binary.LittleEndian.Uint16(raw[i*2:])
			}

			stride, err := pixpack.RowStride(format, width)
			if err != nil {
				return err
			}
			dst := make([]byte, stride*height)
			if err := pixpack.Pack(dst, format, src, width, height, stride); err != nil {
				return err
			}

			out, err := openOut(outPath)
			if err != nil {
				return fmt.Errorf("open output: %v", err)
			}
			if out != os.Stdout {
				defer out.Close()
			}
			_, err = out.Write(dst)
			return err
		},
	}
	pf := cmd.Flags()
	pf.StringP("in", "i", "-", "raw RGB16 input file, - for stdin")
	pf.StringP("format", "f", "v210", "pixel format fourcc (see 'genctl formats')")
	pf.IntP("width", "w", 1920, "frame width in pixels")
	pf.IntP("height", "H", 1080, "frame height in pixels")
	pf.StringP("out", "o", "-", "output file, - for stdout")
	return cmd
}
