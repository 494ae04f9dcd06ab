package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vdcut/cutlist"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.vdscript>",
	Short: "Convert a .vdscript cut list to a .llc project",
	Long: `Convert the VirtualDub.subset ranges of a .vdscript file into LosslessCut
cut segments.

Each range can be padded or trimmed at both boundaries before it is
converted to timestamps: positive --extra-start/--extra-end values add
frames, negative values remove them. A cut whose duration becomes
non-positive after adjustment is skipped with a warning. Set --fps to the
frame rate of the video the cuts belong to - every timestamp is only as
accurate as this value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			// Default to the input name with a .llc extension.
			output = strings.TrimSuffix(input, filepath.Ext(input)) + ".llc"
		}

		media, _ := cmd.Flags().GetString("media")
		fps, _ := cmd.Flags().GetFloat64("fps")
		extraStart, _ := cmd.Flags().GetInt("extra-start")
		extraEnd, _ := cmd.Flags().GetInt("extra-end")
		number, _ := cmd.Flags().GetBool("number")
		overwrite, _ := cmd.Flags().GetBool("overwrite")

		cfg := cutlist.Config{
			SourcePath:       input,
			DestPath:         output,
			MediaFilename:    media,
			FPS:              fps,
			ExtraFramesStart: extraStart,
			ExtraFramesEnd:   extraEnd,
			AddSegmentNumber: number,
			Overwrite:        overwrite,
		}

		result, err := cutlist.Run(cfg)
		if err != nil {
			return err
		}

		for _, skip := range result.Skipped {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", skip)
		}
		fmt.Printf("Wrote %s: %d segments (%d skipped)\n", output, len(result.Segments), len(result.Skipped))
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "Destination .llc path (default: input name with .llc extension)")
	convertCmd.Flags().StringP("media", "m", "", "Media filename embedded in the .llc (required)")
	convertCmd.Flags().Float64("fps", 0, "Frame rate of the video (required)")
	convertCmd.Flags().Int("extra-start", 0, "Frames to add (positive) or remove (negative) at the start of each cut")
	convertCmd.Flags().Int("extra-end", 0, "Frames to add (positive) or remove (negative) at the end of each cut")
	convertCmd.Flags().BoolP("number", "n", false, "Name segments \"segment 1\", \"segment 2\", ...")
	convertCmd.Flags().BoolP("overwrite", "f", false, "Replace the destination file if it exists")
	convertCmd.MarkFlagRequired("media")
	convertCmd.MarkFlagRequired("fps")
}
