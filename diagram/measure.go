package diagram

// Measurer reports the rendered size of lines of text.
type Measurer interface {
	Measure(lines []string) (w, h float64)
}

// MonoMeasurer assumes every rune occupies a fixed cell.
type MonoMeasurer struct {
	CharWidth  float64
	LineHeight float64
}

func (m MonoMeasurer) Measure(lines []string) (float64, float64) {
	var longest int
	for _, line := range lines {
		if l := len([]rune(line)); l > longest {
			longest = l
		}
	}
	return float64(longest) * m.CharWidth, float64(len(lines)) * m.LineHeight
}

// DefaultMeasurer approximates the 28px Go font the renderer uses.
var DefaultMeasurer Measurer = MonoMeasurer{CharWidth: 16, LineHeight: 32}
