package cmd

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"screenops/display"
)

var (
	shotOutput   string
	shotDir      string
	shotName     string
	shotFormat   string
	shotQuality  int
	shotMaxWidth int
	shotMonitor  int
	shotAll      bool
	shotWindow   int
)

var shotCmd = &cobra.Command{
	Use:   "shot",
	Short: "Capture a display, all displays stitched, or a window to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		img, prefix, err := shotImage(cmd)
		if err != nil {
			return err
		}
		if shotMaxWidth > 0 {
			img = display.Shrink(img, shotMaxWidth)
		}

		var qualityPtr *int
		if cmd.Flags().Changed("quality") || isJPEGFormat(shotFormat) {
			qualityPtr = &shotQuality
		}
		payload, err := display.Encode(img, shotFormat, qualityPtr)
		if err != nil {
			return err
		}

		formatExt := "png"
		if payload.MimeType == "image/jpeg" {
			formatExt = "jpg"
		}
		outputPath, err := resolveOutputPath(shotOutput, shotDir, shotName, prefix, formatExt)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outputPath, payload.Data, 0o644); err != nil {
			return fmt.Errorf("write capture: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Capture saved to %s (%d bytes, %s)\n", outputPath, len(payload.Data), payload.MimeType)
		return nil
	},
}

func shotImage(cmd *cobra.Command) (image.Image, string, error) {
	switch {
	case shotAll:
		captures, err := captureAllFunc(enumerator)
		if err != nil {
			return nil, "", err
		}
		comp, err := display.Compose(captures)
		if err != nil {
			return nil, "", err
		}
		return comp.Image, "screens", nil
	case cmd.Flags().Changed("window"):
		bounds, err := windowBoundsFunc(shotWindow)
		if err != nil {
			return nil, "", err
		}
		img, err := captureRectFunc(bounds)
		if err != nil {
			return nil, "", err
		}
		return img, fmt.Sprintf("window-%d", shotWindow), nil
	default:
		capture, err := enumerator.CaptureMonitor(shotMonitor)
		if err != nil {
			return nil, "", err
		}
		return capture.Image, fmt.Sprintf("screen-%d", shotMonitor), nil
	}
}

func init() {
	shotCmd.Flags().StringVarP(&shotOutput, "output", "o", "", "full path for the capture (overrides directory/name)")
	shotCmd.Flags().StringVar(&shotDir, "dir", "", "directory to store the capture (default: screenops captures dir)")
	shotCmd.Flags().StringVar(&shotName, "name", "", "file name without extension")
	shotCmd.Flags().StringVarP(&shotFormat, "format", "f", "png", "image format: png or jpeg")
	shotCmd.Flags().IntVar(&shotQuality, "quality", 90, "image quality (for jpeg captures)")
	shotCmd.Flags().IntVar(&shotMaxWidth, "max-width", 0, "downscale the capture to at most this many pixels wide")
	shotCmd.Flags().IntVarP(&shotMonitor, "monitor", "m", 0, "monitor number to capture")
	shotCmd.Flags().BoolVarP(&shotAll, "all", "a", false, "capture every display stitched into one image")
	shotCmd.Flags().IntVarP(&shotWindow, "window", "w", 0, "window id to capture")

	RootCmd.AddCommand(shotCmd)
}
