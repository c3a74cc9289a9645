package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"explainer/config"
	"explainer/diagram"
	"explainer/log"
	"explainer/render"
)

var (
	// flags
	env        string
	configFile string

	logger log.Logger
	cfg    *config.Config
)

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "environment")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "rc file (defaults to ~/"+config.FileName+")")
}

var RootCmd = cobra.Command{
	Use:   "explainer",
	Short: "Lay out and render neural network explainer diagrams",
	Long:  "Lay out boxes, arrows and waveforms from a TOML diagram and render them to PNG, frames or the terminal",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.New(env, os.Stderr)

		if configFile == "" {
			cfg = config.Load()
			return
		}
		var err error
		cfg, err = config.LoadFile(configFile)
		if err != nil {
			logger.Fatal("could not read configuration file:", err)
		}
	},
}

// loadDiagram reads a diagram file and sizes its text with the real font.
// Canvas settings the file leaves at their defaults come from the rc file.
func loadDiagram(filename string) *diagram.Diagram {
	d, err := diagram.Load(filename)
	if err != nil {
		logger.Fatal(err)
	}

	m, err := render.NewFontMeasurer(cfg.FontSize)
	if err != nil {
		logger.Fatal("could not load font:", err)
	}
	d.SetMeasurer(m)

	if d.Width == diagram.DefaultWidth {
		d.Width = cfg.Width
	}
	if d.Height == diagram.DefaultHeight {
		d.Height = cfg.Height
	}
	if d.Background == diagram.DefaultBackground {
		d.Background = cfg.Background
	}

	logger.WithField("file", filename).Debugf("loaded %d nodes, %d arrows, %d curves",
		len(d.Nodes()), len(d.Arrows()), len(d.Curves()))
	return d
}

func renderOptions() render.Options {
	return render.Options{Theme: render.DefaultTheme.WithFontSize(cfg.FontSize)}
}

func savePNG(d *diagram.Diagram, filename string) error {
	return render.SavePNG(d, filename, renderOptions())
}

func baseName(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}
