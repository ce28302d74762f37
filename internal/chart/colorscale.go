package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Scale is a continuous color ramp through evenly spaced stops.
type Scale struct {
	Name  string
	stops []drawing.Color
}

var scales = map[string]Scale{
	"blues":   newScale("Blues", "f7fbff", "6baed6", "08306b"),
	"greens":  newScale("Greens", "f7fcf5", "74c476", "00441b"),
	"reds":    newScale("Reds", "fff5f0", "fb6a4a", "67000d"),
	"viridis": newScale("Viridis", "440154", "21918c", "fde725"),
}

func newScale(name string, hexStops ...string) Scale {
	stops := make([]drawing.Color, len(hexStops))
	for i, hex := range hexStops {
		stops[i] = drawing.ColorFromHex(hex)
	}
	return Scale{Name: name, stops: stops}
}

// LookupScale resolves a scale by case-insensitive name.
func LookupScale(name string) (Scale, bool) {
	scale, ok := scales[strings.ToLower(strings.TrimSpace(name))]
	return scale, ok
}

// ScaleNames lists the available scales.
func ScaleNames() []string {
	return []string{"Blues", "Greens", "Reds", "Viridis"}
}

// At returns the color at t, clamped to [0, 1].
func (s Scale) At(t float64) drawing.Color {
	if len(s.stops) == 0 {
		return drawing.ColorBlack
	}
	if math.IsNaN(t) || t <= 0 {
		return s.stops[0]
	}
	if t >= 1 {
		return s.stops[len(s.stops)-1]
	}
	pos := t * float64(len(s.stops)-1)
	idx := int(pos)
	frac := pos - float64(idx)
	from, to := s.stops[idx], s.stops[idx+1]
	return drawing.Color{
		R: lerp(from.R, to.R, frac),
		G: lerp(from.G, to.G, frac),
		B: lerp(from.B, to.B, frac),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func hexColor(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
