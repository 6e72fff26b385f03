package scalar

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ColorStop is one stop of a gradient.
type ColorStop struct {
	Offset float64 `json:"offset" yaml:"offset"`
	Color  string  `json:"color" yaml:"color"`
}

// LinearGradient describes an echarts.graphic.LinearGradient fill.
type LinearGradient struct {
	X, Y, X2, Y2 float64
	Stops        []ColorStop
	Global       bool
}

// Gradient builds a top-to-bottom gradient from colors. Each entry may be a
// color string, a ColorStop, a [offset, color] pair or a single-entry
// {offset: color} map. Plain colors get consecutive offsets. Offsets are
// rescaled into [0, 1] when any of them exceeds 1.
func Gradient(colors ...any) (LinearGradient, error) {
	g := LinearGradient{Y2: 1}
	next := 0.0
	for i, c := range colors {
		stop, err := toStop(c, next)
		if err != nil {
			return LinearGradient{}, fmt.Errorf("scalar: gradient stop %d: %w", i, err)
		}
		if _, plain := c.(string); plain {
			next++
		}
		g.Stops = append(g.Stops, stop)
	}

	maxOffset := 0.0
	for _, s := range g.Stops {
		maxOffset = math.Max(maxOffset, s.Offset)
	}
	if maxOffset > 1 {
		for i := range g.Stops {
			g.Stops[i].Offset = math.Round(g.Stops[i].Offset/maxOffset*100) / 100
		}
	}
	return g, nil
}

// Direction sets the gradient vector.
func (g LinearGradient) Direction(x, y, x2, y2 float64) LinearGradient {
	g.X, g.Y, g.X2, g.Y2 = x, y, x2, y2
	return g
}

// JS renders the constructor call.
func (g LinearGradient) JS() JSCode {
	stops := g.Stops
	if stops == nil {
		stops = []ColorStop{}
	}
	data, _ := json.Marshal(stops)
	return JSCode(fmt.Sprintf("new echarts.graphic.LinearGradient(%s,%s,%s,%s,%s,%t)",
		num(g.X), num(g.Y), num(g.X2), num(g.Y2), data, g.Global))
}

func toStop(c any, offset float64) (ColorStop, error) {
	switch v := c.(type) {
	case string:
		return ColorStop{Offset: offset, Color: v}, nil
	case ColorStop:
		return v, nil
	case []any:
		if len(v) != 2 {
			return ColorStop{}, fmt.Errorf("pair needs 2 items, got %d", len(v))
		}
		off, ok := toFloat(v[0])
		color, isStr := v[1].(string)
		if !ok || !isStr {
			return ColorStop{}, fmt.Errorf("pair must be [offset, color]")
		}
		return ColorStop{Offset: off, Color: color}, nil
	case map[string]any:
		if len(v) == 1 {
			for k, val := range v {
				if off, err := strconv.ParseFloat(k, 64); err == nil {
					if color, ok := val.(string); ok {
						return ColorStop{Offset: off, Color: color}, nil
					}
				}
			}
		}
		off, _ := toFloat(v["offset"])
		color, ok := v["color"].(string)
		if !ok {
			return ColorStop{}, fmt.Errorf("map stop needs a color")
		}
		return ColorStop{Offset: off, Color: color}, nil
	default:
		return ColorStop{}, fmt.Errorf("unsupported stop %T", c)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
