package cellgrid

import "math"

// LineChar returns the glyph that best follows a segment with the given
// direction in cell units. Rows grow downwards.
func LineChar(dxCells, dyCells float64) rune {
	if dxCells == 0 && dyCells == 0 {
		return '·'
	}
	angle := NormalizeAngle(math.Atan2(dyCells, dxCells))
	if angle >= math.Pi {
		angle -= math.Pi
	}

	// 4 sectors over a half turn
	sector := int(math.Round(angle/(math.Pi/4))) % 4

	switch sector {
	case 0:
		return '-'
	case 1: // Down and right
		return '\\'
	case 2:
		return '|'
	default: // Up and right
		return '/'
	}
}

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func cellDistance(px, py, x, y float64) float64 {
	dx := px - x
	dy := py - y
	return math.Sqrt(dx*dx + dy*dy)
}
