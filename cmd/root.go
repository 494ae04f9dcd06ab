package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vdcut",
	Short: "Convert VirtualDub cut lists to LosslessCut projects",
	Long: `Vdcut converts the cut list of a VirtualDub or VirtualDub2 .vdscript file
into a LosslessCut .llc project. It is meant for workflows that cut a proxy
file in VirtualDub and then apply the same cuts losslessly to the original
high-resolution video.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(inspectCmd)
}
