package number

import (
	"math"
	"strconv"
)

var epsilon = 0.000001

func FloatToStr(f float64, places int) string {
	return strconv.FormatFloat(f, 'f', places, 64)
}

func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

// Clamp bounds f to [min, max].
func Clamp(f, min, max float64) float64 {
	if f < min {
		return min
	}

	if f > max {
		return max
	}

	return f
}

func ClampInt(i, min, max int) int {
	if i < min {
		return min
	}

	if i > max {
		return max
	}

	return i
}
