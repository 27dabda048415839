package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

const (
	Epsilon1  = 0.1
	Epsilon2  = 0.01
	Epsilon3  = 0.001
	Epsilon4  = 0.0001
	Epsilon5  = 0.00001
	Epsilon6  = 0.000001
	Epsilon7  = 0.0000001
	Epsilon8  = 0.00000001
	Epsilon9  = 0.000000001
	Epsilon10 = 0.0000000001
	Epsilon11 = 0.00000000001
	Epsilon12 = 0.000000000001
	Epsilon13 = 0.0000000000001
	Epsilon14 = 0.00000000000001
	Epsilon15 = 0.000000000000001
	Epsilon16 = 0.0000000000000001
	Epsilon17 = 0.00000000000000001
	Epsilon18 = 0.000000000000000001
	Epsilon19 = 0.0000000000000000001
	Epsilon20 = 0.00000000000000000001
	Epsilon21 = 0.000000000000000000001
)

const (
	/** @brief An approximate representation of PI. */
	Pi = m.Pi
	/** @brief One divided by PI. */
	OneOverPi      = 1.0 / Pi
	PiOverTwo      = Pi / 2.0
	PiOverThree    = Pi / 3.0
	PiOverFour     = Pi / 4.0
	PiOverSix      = Pi / 6.0
	ThreePiOverTwo = 3.0 * Pi / 2.0
	/** @brief PI multiplied by 2. */
	TwoPi        = 2.0 * Pi
	OneOverTwoPi = 1.0 / TwoPi
	/** @brief A multiplier used to convert degrees to radians. */
	RadiansPerDegree = Pi / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	DegreesPerRadian    = 180.0 / Pi
	RadiansPerArcSecond = RadiansPerDegree / 3600.0
)

/**
 * @brief Converts degrees to radians.
 */
func ToRadians(degrees float64) float64 {
	return degrees * RadiansPerDegree
}

/**
 * @brief Converts radians to degrees.
 */
func ToDegrees(radians float64) float64 {
	return radians * DegreesPerRadian
}

// Sign returns 1, -1 or 0 depending on the sign of value. NaN is returned unchanged.
func Sign(value float64) float64 {
	switch {
	case value > 0:
		return 1
	case value < 0:
		return -1
	}
	return value
}

// SignNotZero returns 1 for values >= 0 and -1 otherwise.
func SignNotZero(value float64) float64 {
	if value < 0.0 {
		return -1.0
	}
	return 1.0
}

// Mod returns the remainder of n / d with the sign of the divisor.
func Mod(n, d float64) float64 {
	if Sign(n) == Sign(d) && m.Abs(n) < m.Abs(d) {
		return n
	}
	return m.Mod(m.Mod(n, d)+d, d)
}

// NegativePiToPi wraps angle into the range [-PI, PI].
func NegativePiToPi(angle float64) float64 {
	if angle >= -Pi && angle <= Pi {
		return angle
	}
	return ZeroToTwoPi(angle+Pi) - Pi
}

// ZeroToTwoPi wraps angle into the range [0, 2PI].
func ZeroToTwoPi(angle float64) float64 {
	if angle >= 0 && angle <= TwoPi {
		return angle
	}
	mod := Mod(angle, TwoPi)
	if m.Abs(mod) < Epsilon14 && m.Abs(angle) > Epsilon14 {
		return TwoPi
	}
	return mod
}

// ConvertLongitudeRange converts a longitude in radians to the range [-PI, PI).
func ConvertLongitudeRange(angle float64) float64 {
	simplified := angle - m.Floor(angle/TwoPi)*TwoPi
	if simplified < -Pi {
		return simplified + TwoPi
	}
	if simplified >= Pi {
		return simplified - TwoPi
	}
	return simplified
}

/**
 * @brief Linear interpolation between p and q.
 * @param time The interpolation parameter, usually in [0, 1].
 */
func Lerp(p, q, time float64) float64 {
	return (1.0-time)*p + time*q
}

// Clamp limits value to [low, high]. Integers and floats alike.
func Clamp[T constraints.Ordered](value, low, high T) T {
	return min(max(value, low), high)
}

// AcosClamped clamps value to [-1, 1] before taking the arc cosine.
func AcosClamped(value float64) float64 {
	return m.Acos(Clamp(value, -1.0, 1.0))
}

// AsinClamped clamps value to [-1, 1] before taking the arc sine.
func AsinClamped(value float64) float64 {
	return m.Asin(Clamp(value, -1.0, 1.0))
}

/**
 * @brief Determines if two values are equal using an absolute or relative tolerance test.
 * Exact equality short-circuits, so infinities compare equal to themselves.
 * @param relativeEpsilon Maximum inclusive delta relative to the larger magnitude.
 * @param absoluteEpsilon Maximum inclusive absolute delta.
 */
func EqualsEpsilon(left, right, relativeEpsilon, absoluteEpsilon float64) bool {
	if left == right {
		return true
	}
	absDiff := m.Abs(left - right)
	return absDiff <= absoluteEpsilon ||
		absDiff <= relativeEpsilon*m.Max(m.Abs(left), m.Abs(right))
}
