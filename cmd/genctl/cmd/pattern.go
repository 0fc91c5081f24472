package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jpfielding/signalgen.go/pkg/pattern"
	"github.com/jpfielding/signalgen.go/pkg/pixpack"
	"github.com/spf13/cobra"
)

// formatByFourCC resolves a pixel format from its four-character code
func formatByFourCC(code string) (pixpack.PixelFormat, error) {
	for _, f := range pixpack.Formats() {
		if f.FourCC() == code {
			return f, nil
		}
	}
	return 0, fmt.Errorf("format %q: %w", code, pixpack.ErrUnsupportedFormat)
}

// openOut opens the output target, "-" meaning stdout
func openOut(path string) (io.WriteCloser, error) {
	if path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

// NewPatternCmd generates a test pattern and packs it
func NewPatternCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "generate a packed test-pattern frame",
		Long:  "generate a test pattern (bars|gradient|checker|black|white), pack it into a pixel format, and write the raw frame bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("pattern")
			code, _ := cmd.Flags().GetString("format")
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			outPath, _ := cmd.Flags().GetString("out")

			gen := pattern.ByName(strings.ToLower(name))
			if gen == nil {
				return fmt.Errorf("unknown pattern %q", name)
			}
			format, err := formatByFourCC(code)
			if err != nil {
				return err
			}
			stride, err := pixpack.RowStride(format, width)
			if err != nil {
				return err
			}

			dst := make([]byte, stride*height)
			if err := pixpack.Pack(dst, format, gen(width, height), width, height, stride); err != nil {
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
	pf.StringP("pattern", "p", "bars", "pattern name (bars|gradient|checker|black|white)")
	pf.StringP("format", "f", "v210", "pixel format fourcc (see 'genctl formats')")
	pf.IntP("width", "w", 1920, "frame width in pixels")
	pf.IntP("height", "H", 1080, "frame height in pixels")
	pf.StringP("out", "o", "-", "output file, - for stdout")
	return cmd
}
