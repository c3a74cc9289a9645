package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"explainer/diagram"
)

var (
	pointsT    float64
	pointsCopy bool
)

func init() {
	PointsCommand.Flags().Float64Var(&pointsT, "t", 0, "interpolation parameter in [0,1]")
	PointsCommand.Flags().BoolVar(&pointsCopy, "copy", false, "also copy the output to the clipboard")

	RootCmd.AddCommand(&PointsCommand)
}

var PointsCommand = cobra.Command{
	Use:   "points FILE",
	Short: "Print arrow polylines",
	Long:  "Print the waypoints of every arrow, one arrow per line",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if pointsT < 0 || pointsT > 1 {
			logger.Fatalf("t must be in [0,1], got %g", pointsT)
		}

		d := loadDiagram(args[0]).At(pointsT)
		text := diagram.FormatPolylines(d)
		fmt.Fprint(cmd.OutOrStdout(), text)

		if pointsCopy {
			if err := clipboard.WriteAll(text); err != nil {
				logger.Error("could not copy to clipboard:", err)
				return
			}
			logger.Printf("copied %d arrows", len(d.Arrows()))
		}
	},
}
