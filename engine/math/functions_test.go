package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRadiansAndDegrees(t *testing.T) {
	assert.InDelta(t, Pi, ToRadians(180), Epsilon15)
	assert.InDelta(t, 90.0, ToDegrees(PiOverTwo), Epsilon12)
	assert.InDelta(t, 37.5, ToDegrees(ToRadians(37.5)), Epsilon12)
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(3))
	assert.Equal(t, -1.0, Sign(-0.5))
	assert.Equal(t, 0.0, Sign(0))
	assert.True(t, m.IsNaN(Sign(m.NaN())))

	assert.Equal(t, 1.0, SignNotZero(0))
	assert.Equal(t, -1.0, SignNotZero(-2))
}

func TestMod(t *testing.T) {
	assert.Equal(t, 1.0, Mod(1, 3))
	assert.Equal(t, 2.0, Mod(-1, 3))
	assert.Equal(t, 0.0, Mod(6, 3))
	assert.Equal(t, -2.0, Mod(1, -3))
}

func TestAngleWrapping(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(float64) float64
		angle float64
		want  float64
	}{
		{"negative pi to pi in range", NegativePiToPi, 1.0, 1.0},
		{"negative pi to pi above", NegativePiToPi, Pi + 1.0, -Pi + 1.0},
		{"negative pi to pi below", NegativePiToPi, -Pi - 1.0, Pi - 1.0},
		{"zero to two pi negative", ZeroToTwoPi, -1.0, TwoPi - 1.0},
		{"zero to two pi multiple", ZeroToTwoPi, 2 * TwoPi, TwoPi},
		{"longitude range pi", ConvertLongitudeRange, Pi, -Pi},
		{"longitude range wrap", ConvertLongitudeRange, ToRadians(190), ToRadians(-170)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.fn(tt.angle), Epsilon12)
		})
	}
}

func TestLerpAndClamp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
	assert.Equal(t, 1.0, Clamp(3.0, -1.0, 1.0))
	assert.Equal(t, -1, Clamp(-7, -1, 1))
	assert.Equal(t, 0.0, AcosClamped(1.0000001))
	assert.InDelta(t, -PiOverTwo, AsinClamped(-1.5), Epsilon15)
}

func TestEqualsEpsilon(t *testing.T) {
	assert.True(t, EqualsEpsilon(1.0, 1.0+Epsilon8, 0, Epsilon7))
	assert.False(t, EqualsEpsilon(1.0, 1.1, 0, Epsilon7))
	assert.True(t, EqualsEpsilon(1e9, 1e9+1, Epsilon7, 0))
	assert.True(t, EqualsEpsilon(m.Inf(1), m.Inf(1), 0, 0))
	assert.False(t, EqualsEpsilon(m.NaN(), m.NaN(), Epsilon1, Epsilon1))
}
