package cmd

import (
	"fmt"

	"vdcut/cutlist"
	"vdcut/vdscript"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.vdscript>",
	Short: "List the cut ranges declared in a .vdscript",
	Long: `List the VirtualDub.subset ranges of a .vdscript file without converting
anything. Useful for checking a cut list before running convert. When --fps
is given, each range is also shown as timestamps.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fps, _ := cmd.Flags().GetFloat64("fps")
		if fps < 0 {
			return fmt.Errorf("--fps cannot be negative, got %g", fps)
		}

		ranges, err := vdscript.ParseFile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d ranges\n", args[0], len(ranges))
		totalFrames := 0
		for i, r := range ranges {
			if fps > 0 {
				fmt.Printf("%4d: frames %d-%d (%d frames, %.3fs-%.3fs)\n",
					i+1, r.Start, r.End, r.Frames(),
					cutlist.Seconds(r.Start, fps), cutlist.Seconds(r.End, fps))
			} else {
				fmt.Printf("%4d: frames %d-%d (%d frames)\n", i+1, r.Start, r.End, r.Frames())
			}
			totalFrames += r.Frames()
		}
		if fps > 0 {
			fmt.Printf("Total: %d frames (%.3fs)\n", totalFrames, cutlist.Seconds(totalFrames, fps))
		} else {
			fmt.Printf("Total: %d frames\n", totalFrames)
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().Float64("fps", 0, "Frame rate for timestamp display (optional)")
}
