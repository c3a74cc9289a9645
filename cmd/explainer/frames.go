package main

import (
	"github.com/spf13/cobra"

	"explainer/render"
)

var (
	frameCount   int
	framesOutput string
)

func init() {
	FramesCommand.Flags().IntVarP(&frameCount, "count", "n", 30, "number of frames")
	FramesCommand.Flags().StringVarP(&framesOutput, "output", "o", "", "output directory (defaults to <name>_frames)")

	RootCmd.AddCommand(&FramesCommand)
}

var FramesCommand = cobra.Command{
	Use:   "frames FILE",
	Short: "Render a sequence of frames",
	Long:  "Render N frames sweeping t from 0 to 1, moving nodes towards their move_to positions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d := loadDiagram(args[0])
		dir := framesOutput
		if dir == "" {
			dir = cfg.GetSavePath(baseName(args[0]) + "_frames")
		}

		paths, err := render.Frames(d, frameCount, dir, renderOptions())
		if err != nil {
			logger.Fatal("could not render frames:", err)
		}
		logger.Printf("wrote %d frames to %s", len(paths), dir)
	},
}
