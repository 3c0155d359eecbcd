package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const floatDelta = 0.000001

func TestMagAndMagSq(t *testing.T) {
	v := MakeVector2(3, 4)

	assert.InDelta(t, 5.0, v.Mag(), floatDelta)
	assert.InDelta(t, 25.0, v.MagSq(), floatDelta)
	assert.InDelta(t, v.Mag()*v.Mag(), v.MagSq(), floatDelta)
}

func TestNormalize(t *testing.T) {
	v := MakeVector2(10, 0).Normalize()
	assert.InDelta(t, 1.0, v.Mag(), floatDelta)
	assert.InDelta(t, 1.0, v.GetX(), floatDelta)

	// the null vector cannot be normalized; it passes through untouched
	nullvec := MakeNullVector2().Normalize()
	assert.True(t, nullvec.IsNull())
}

func TestSetMag(t *testing.T) {
	v := MakeVector2(3, 4).SetMag(10)

	assert.InDelta(t, 10.0, v.Mag(), floatDelta)
	assert.InDelta(t, 6.0, v.GetX(), floatDelta)
	assert.InDelta(t, 8.0, v.GetY(), floatDelta)
}

func TestLimit(t *testing.T) {
	assert.InDelta(t, 5.0, MakeVector2(30, 40).Limit(5).Mag(), floatDelta)
	assert.InDelta(t, 5.0, MakeVector2(3, 4).Limit(10).Mag(), floatDelta)
}

func TestClampMag(t *testing.T) {
	type testCase struct {
		Name        string
		Subject     Vector2
		Min         float64
		Max         float64
		ExpectedMag float64
	}

	examples := []testCase{
		{
			Name:        "Should cap a magnitude above the ceiling",
			Subject:     MakeVector2(30, 40),
			Min:         0.5,
			Max:         5,
			ExpectedMag: 5,
		},
		{
			Name:        "Should raise a magnitude below the floor",
			Subject:     MakeVector2(0.03, 0.04),
			Min:         0.5,
			Max:         5,
			ExpectedMag: 0.5,
		},
		{
			Name:        "Should keep a magnitude within bounds",
			Subject:     MakeVector2(3, 4),
			Min:         0.5,
			Max:         5,
			ExpectedMag: 5,
		},
		{
			Name:        "Should let the null vector pass through",
			Subject:     MakeNullVector2(),
			Min:         0.5,
			Max:         5,
			ExpectedMag: 0,
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			clamped := example.Subject.ClampMag(example.Min, example.Max)

			assert.InDelta(t, example.ExpectedMag, clamped.Mag(), floatDelta)

			if !example.Subject.IsNull() {
				// direction is preserved
				assert.InDelta(t, 0.0, example.Subject.SignedAngleWith(clamped), floatDelta)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a := MakeVector2(0, 0)
	b := MakeVector2(10, 20)

	assert.True(t, a.Lerp(b, 0).Equals(a))
	assert.True(t, a.Lerp(b, 1).Equals(b))
	assert.True(t, a.Lerp(b, 0.5).Equals(MakeVector2(5, 10)))
}

func TestAngle(t *testing.T) {
	assert.InDelta(t, 0.0, MakeVector2(0, 1).Angle(), floatDelta)
	assert.InDelta(t, math.Pi/2, MakeVector2(1, 0).Angle(), floatDelta)
	assert.InDelta(t, math.Pi, MakeVector2(0, -1).Angle(), floatDelta)
	assert.InDelta(t, 3*math.Pi/2, MakeVector2(-1, 0).Angle(), floatDelta)

	// angle of the null vector is 0 by convention
	assert.InDelta(t, 0.0, MakeNullVector2().Angle(), floatDelta)
}

func TestSetAngleRoundTrip(t *testing.T) {
	v := MakeVector2(3, 4).SetAngle(math.Pi / 3)

	assert.InDelta(t, math.Pi/3, v.Angle(), floatDelta)
	assert.InDelta(t, 5.0, v.Mag(), floatDelta)
}

func TestMakeVector2FromAngle(t *testing.T) {
	north := MakeVector2FromAngle(0)
	assert.InDelta(t, 0.0, north.GetX(), floatDelta)
	assert.InDelta(t, 1.0, north.GetY(), floatDelta)

	east := MakeVector2FromAngle(math.Pi / 2)
	assert.InDelta(t, 1.0, east.GetX(), floatDelta)
	assert.InDelta(t, 0.0, east.GetY(), floatDelta)
}

func TestRotate(t *testing.T) {
	rotated := MakeVector2(0, 1).Rotate(math.Pi / 2)

	assert.InDelta(t, 1.0, rotated.GetX(), floatDelta)
	assert.InDelta(t, 0.0, rotated.GetY(), floatDelta)

	// magnitude is preserved
	assert.InDelta(t, 5.0, MakeVector2(3, 4).Rotate(1.234).Mag(), floatDelta)

	full := MakeVector2(3, 4).Rotate(2 * math.Pi)
	assert.True(t, full.Equals(MakeVector2(3, 4)))
}

func TestSignedAngleWith(t *testing.T) {
	north := MakeVector2(0, 1)
	east := MakeVector2(1, 0)
	west := MakeVector2(-1, 0)

	assert.InDelta(t, math.Pi/2, north.SignedAngleWith(east), floatDelta)
	assert.InDelta(t, -math.Pi/2, north.SignedAngleWith(west), floatDelta)
	assert.InDelta(t, 0.0, north.SignedAngleWith(north), floatDelta)
}

func TestDistanceTo(t *testing.T) {
	assert.InDelta(t, 5.0, MakeVector2(1, 1).DistanceTo(MakeVector2(4, 5)), floatDelta)
	assert.InDelta(t, 0.0, MakeVector2(1, 1).DistanceTo(MakeVector2(1, 1)), floatDelta)
}

func TestIsNullAndEquals(t *testing.T) {
	assert.True(t, MakeNullVector2().IsNull())
	assert.True(t, MakeVector2(0.0000001, 0).IsNull())
	assert.False(t, MakeVector2(0.1, 0).IsNull())

	assert.True(t, MakeVector2(1, 2).Equals(MakeVector2(1, 2)))
	assert.True(t, MakeVector2(1, 2).Equals(MakeVector2(1.0000001, 2)))
	assert.False(t, MakeVector2(1, 2).Equals(MakeVector2(1.1, 2)))
}

func TestMarshalJSON(t *testing.T) {
	data, err := MakeVector2(1, 2.5).MarshalJSON()

	assert.NoError(t, err)
	assert.Equal(t, "[1.0000,2.5000]", string(data))
}

func TestValueSemantics(t *testing.T) {
	a := MakeVector2(1, 2)
	b := a.Add(MakeVector2(10, 10))

	// operations return copies, the receiver is left untouched
	assert.True(t, a.Equals(MakeVector2(1, 2)))
	assert.True(t, b.Equals(MakeVector2(11, 12)))
}
