package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const FileName = ".explainerrc"

type Config struct {
	SaveDirectory string
	Width         float64
	Height        float64
	Background    string
	Step          float64
	FontSize      float64
}

func Default() *Config {
	return &Config{
		SaveDirectory: "",
		Width:         1920,
		Height:        1080,
		Background:    "#141414",
		Step:          10,
		FontSize:      28,
	}
}

// Load reads ~/.explainerrc, falling back to defaults when it is missing.
func Load() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Default()
	}
	config, err := LoadFile(filepath.Join(homeDir, FileName))
	if err != nil {
		return Default()
	}
	return config
}

func LoadFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	homeDir, _ := os.UserHomeDir()
	return Parse(file, homeDir)
}

// Parse reads key = value lines. Unknown keys and unparsable numbers are
// ignored so an old rc file never stops the tool from starting.
func Parse(r io.Reader, homeDir string) (*Config, error) {
	config := Default()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "width":
			setFloat(&config.Width, value)
		case "height":
			setFloat(&config.Height, value)
		case "background", "bg":
			config.Background = value
		case "step":
			setFloat(&config.Step, value)
		case "fontsize", "font_size":
			setFloat(&config.FontSize, value)
		}
	}

	return config, scanner.Err()
}

func setFloat(dst *float64, value string) {
	if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
		*dst = f
	}
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
