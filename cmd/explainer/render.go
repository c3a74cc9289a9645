package main

import (
	"github.com/spf13/cobra"
)

var (
	renderOutput string
	renderT      float64
)

func init() {
	RenderCommand.Flags().StringVarP(&renderOutput, "output", "o", "", "output png (defaults to the diagram name)")
	RenderCommand.Flags().Float64Var(&renderT, "t", 0, "interpolation parameter in [0,1]")

	RootCmd.AddCommand(&RenderCommand)
}

var RenderCommand = cobra.Command{
	Use:   "render FILE",
	Short: "Render a diagram to PNG",
	Long:  "Render a diagram to PNG at a single point t of its motion",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if renderT < 0 || renderT > 1 {
			logger.Fatalf("t must be in [0,1], got %g", renderT)
		}

		d := loadDiagram(args[0])
		out := renderOutput
		if out == "" {
			out = cfg.GetSavePath(baseName(args[0]) + ".png")
		}

		if err := savePNG(d.At(renderT), out); err != nil {
			logger.Fatal("could not render:", err)
		}
		logger.Printf("wrote %s", out)
	},
}
