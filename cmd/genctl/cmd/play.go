package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jpfielding/signalgen.go/pkg/logging"
	"github.com/jpfielding/signalgen.go/pkg/pattern"
	"github.com/jpfielding/signalgen.go/pkg/signalgen"
	"github.com/spf13/cobra"
)

// NewPlayCmd runs the generator end to end against a file sink
func NewPlayCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "run the signal generator against a file sink",
		Long:  "enable output, create and schedule pattern frames with optional HDR metadata, and start playback against a file-backed sink",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("pattern")
			code, _ := cmd.Flags().GetString("format")
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			outPath, _ := cmd.Flags().GetString("out")
			frames, _ := cmd.Flags().GetInt("frames")
			logFile, _ := cmd.Flags().GetString("log-file")
			eotf, _ := cmd.Flags().GetInt("eotf")
			maxCLL, _ := cmd.Flags().GetUint16("max-cll")
			maxFALL, _ := cmd.Flags().GetUint16("max-fall")

			log := slog.Default()
			if logFile != "" {
				log = logging.Logger(logging.Rotating(logFile), true, slog.LevelInfo)
			}

			gen := pattern.ByName(strings.ToLower(name))
			if gen == nil {
				return fmt.Errorf("unknown pattern %q", name)
			}
			format, err := formatByFourCC(code)
			if err != nil {
				return err
			}

			out, err := openOut(outPath)
			if err != nil {
				return fmt.Errorf("open output: %v", err)
			}
			defer out.Close()

			sink := signalgen.NewFileOutput(out)
			g := signalgen.New(sink, signalgen.WithLogger(log))
			if err := g.SetFrameData(gen(width, height), width, height); err != nil {
				return err
			}

			idx := -1
			for i, f := range g.SupportedFormats() {
				if f == format {
					idx = i
				}
			}
			if idx < 0 {
				return fmt.Errorf("sink does not support %s", format)
			}
			if err := g.SetPixelFormatIndex(idx); err != nil {
				return err
			}

			if eotf >= 0 {
				err := g.SetHDRMetadata(signalgen.HDRMetadata{
					EOTF:    signalgen.EOTF(eotf),
					MaxCLL:  maxCLL,
					MaxFALL: maxFALL,
				})
				if err != nil {
					return err
				}
			}

			if err := g.StartOutput(); err != nil {
				return err
			}
			defer g.StopOutput()

			for i := 0; i < frames; i++ {
				if ctx.Err() != nil {
					break
				}
				if _, err := g.CreateFrame(); err != nil {
					return err
				}
				if err := g.ScheduleFrame(); err != nil {
					return err
				}
			}
			if err := g.StartPlayback(); err != nil {
				return err
			}
			log.InfoContext(ctx, "playback complete", "frames", sink.FramesWritten())
			return nil
		},
	}
	pf := cmd.Flags()
	pf.StringP("pattern", "p", "bars", "pattern name (bars|gradient|checker|black|white)")
	pf.StringP("format", "f", "v210", "pixel format fourcc (see 'genctl formats')")
	pf.IntP("width", "w", 1920, "frame width in pixels")
	pf.IntP("height", "H", 1080, "frame height in pixels")
	pf.StringP("out", "o", "out.raw", "output file for packed frames")
	pf.IntP("frames", "n", 30, "number of frames to schedule")
	pf.String("log-file", "", "rotating log file path (defaults to stderr)")
	pf.Int("eotf", -1, "CEA 861.3 EOTF type 0-7, -1 to omit HDR metadata")
	pf.Uint16("max-cll", 2000, "HDR maximum content light level, cd/m2")
	pf.Uint16("max-fall", 400, "HDR maximum frame-average light level, cd/m2")
	return cmd
}
