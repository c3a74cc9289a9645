package main

import (
	"os"

	"github.com/spf13/cobra"

	"explainer/internal/tui"
	"explainer/log"
)

var previewLog string

func init() {
	PreviewCommand.Flags().StringVar(&previewLog, "log", "", "write logs to this file while the preview runs")

	RootCmd.AddCommand(&PreviewCommand)
}

var PreviewCommand = cobra.Command{
	Use:   "preview FILE",
	Short: "Preview and edit a diagram in the terminal",
	Long:  "Open an interactive terminal preview. Move nodes with m and hjkl, save with s, export with p",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d := loadDiagram(args[0])

		tuiLogger, closeLog, err := previewLogger(previewLog, args[0])
		if err != nil {
			logger.Fatal("could not open log file:", err)
		}
		defer closeLog()

		if err := tui.Run(d, args[0], cfg, tuiLogger); err != nil {
			logger.Fatal(err)
		}
	},
}

// previewLogger appends to path, or discards when path is empty. stderr
// belongs to the alternate screen while the preview runs.
func previewLogger(path, diagramFile string) (log.Logger, func(), error) {
	if path == "" {
		return log.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, func() {}, err
	}
	return log.New(env, f).WithField("file", diagramFile), func() { f.Close() }, nil
}
