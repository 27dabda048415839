package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func toQuat(q Quaternion) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func fromQuat(q mgl64.Quat) Quaternion {
	return Quaternion{q.V[0], q.V[1], q.V[2], q.W}
}

func TestQuaternionAgainstMathgl(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		axis := mgl64.Vec3{rng.Float64() - 0.5, rng.Float64() - 0.5, rng.Float64() - 0.5}.Normalize()
		angle := (rng.Float64()*2 - 1) * Pi
		q := QuaternionFromAxisAngle(fromVec3(axis), angle)
		assert.True(t, fromQuat(mgl64.QuatRotate(angle, axis)).EqualsEpsilon(q, Epsilon14))

		other := QuaternionFromAxisAngle(Cartesian3UnitY, angle/3)
		want := fromQuat(toQuat(q).Mul(toQuat(other)))
		assert.True(t, want.EqualsEpsilon(q.Multiply(other), Epsilon14), "%s != %s", want, q.Multiply(other))
	}
}

func TestQuaternionInverse(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4)
	assert.True(t, q.Multiply(q.Inverse()).EqualsEpsilon(QuaternionIdentity, Epsilon14))
	assert.Equal(t, Quaternion{-1, -2, -3, 4}, q.Conjugate())
	assert.InDelta(t, 1.0, q.Normalize().Magnitude(), Epsilon14)
	assert.Equal(t, 30.0, q.Dot(q))

	packed := q.Pack(nil, 2)
	assert.Equal(t, q, UnpackQuaternion(packed, 2))
}

func TestHeadingPitchRollDirections(t *testing.T) {
	// Positive heading turns clockwise when seen from above.
	q := QuaternionFromHeadingPitchRoll(HeadingPitchRollFromDegrees(90, 0, 0))
	v := toQuat(q).Rotate(mgl64.Vec3{1, 0, 0})
	assert.True(t, fromVec3(v).EqualsEpsilon(Cartesian3{0, -1, 0}, 0, Epsilon14), "%v", v)

	// Positive pitch raises the nose.
	q = QuaternionFromHeadingPitchRoll(HeadingPitchRollFromDegrees(0, 90, 0))
	v = toQuat(q).Rotate(mgl64.Vec3{1, 0, 0})
	assert.True(t, fromVec3(v).EqualsEpsilon(Cartesian3{0, 0, 1}, 0, Epsilon14), "%v", v)

	// Roll is a plain rotation about x.
	q = QuaternionFromHeadingPitchRoll(HeadingPitchRollFromDegrees(0, 0, 90))
	v = toQuat(q).Rotate(mgl64.Vec3{0, 1, 0})
	assert.True(t, fromVec3(v).EqualsEpsilon(Cartesian3{0, 0, 1}, 0, Epsilon14), "%v", v)
}

func TestHeadingPitchRollRoundTrip(t *testing.T) {
	tests := []HeadingPitchRoll{
		HeadingPitchRollFromDegrees(0, 0, 0),
		HeadingPitchRollFromDegrees(45, 0, 0),
		HeadingPitchRollFromDegrees(-120, 30, 10),
		HeadingPitchRollFromDegrees(170, -80, -175),
		NewHeadingPitchRoll(1, -1, 0.5),
	}
	for _, hpr := range tests {
		t.Run(hpr.String(), func(t *testing.T) {
			got := HeadingPitchRollFromQuaternion(hpr.ToQuaternion())
			assert.True(t, got.EqualsEpsilon(hpr, 0, Epsilon11), "%s != %s", got, hpr)
		})
	}
}

func TestHeadingPitchRollPack(t *testing.T) {
	hpr := NewHeadingPitchRoll(1, 2, 3)
	packed := hpr.Pack([]float64{7}, 1)
	assert.Equal(t, []float64{7, 1, 2, 3}, packed)
	assert.Equal(t, hpr, UnpackHeadingPitchRoll(packed, 1))
	assert.True(t, hpr.Equals(NewHeadingPitchRoll(1, 2, 3)))
	assert.False(t, hpr.Equals(NewHeadingPitchRoll(1, 2, 3.1)))
}
