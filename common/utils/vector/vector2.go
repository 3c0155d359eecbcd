package vector

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/herdarena/herdarena/common/utils/number"
)

type Vector2 struct {
	x float64
	y float64
}

func MakeVector2(x float64, y float64) Vector2 {
	return Vector2{x, y}
}

// Returns a random unit vector
func MakeRandomVector2() Vector2 {
	radians := rand.Float64() * math.Pi * 2
	return MakeVector2(
		math.Cos(radians),
		math.Sin(radians),
	)
}

// Returns a null vector2
func MakeNullVector2() Vector2 {
	return MakeVector2(0, 0)
}

// Returns a unit vector pointing along the given heading; heading 0 is the
// arena north, increasing clockwise (same convention as Angle).
func MakeVector2FromAngle(radians float64) Vector2 {
	return MakeVector2(
		math.Sin(radians),
		math.Cos(radians),
	)
}

func (v Vector2) Get() (float64, float64) {
	return v.x, v.y
}

func (v Vector2) GetX() float64 {
	return v.x
}

func (v Vector2) GetY() float64 {
	return v.y
}

var floatformat = byte('f')

func (v Vector2) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = strconv.AppendFloat(b, v.x, floatformat, 4, 64)
	b = append(b, byte(','))
	b = strconv.AppendFloat(b, v.y, floatformat, 4, 64)
	return append(b, byte(']')), nil
}

func (a Vector2) Add(b Vector2) Vector2 {
	a.x += b.x
	a.y += b.y
	return a
}

func (a Vector2) Sub(b Vector2) Vector2 {
	a.x -= b.x
	a.y -= b.y
	return a
}

func (a Vector2) MultScalar(f float64) Vector2 {
	a.x *= f
	a.y *= f
	return a
}

func (a Vector2) DivScalar(f float64) Vector2 {
	a.x /= f
	a.y /= f
	return a
}

func (a Vector2) Mag() float64 {
	return math.Sqrt(a.MagSq())
}

// MagSq is the quadrance of the vector; use it for distance comparisons,
// it spares the sqrt.
func (a Vector2) MagSq() float64 {
	return (a.x*a.x + a.y*a.y)
}

func (a Vector2) SetMag(mag float64) Vector2 {
	return a.Normalize().MultScalar(mag)
}

func (a Vector2) Normalize() Vector2 {
	mag := a.Mag()
	if mag > 0 {
		return a.DivScalar(mag)
	}
	return a
}

func (a Vector2) Limit(max float64) Vector2 {

	mSq := a.MagSq()

	if mSq > max*max {
		return a.Normalize().MultScalar(max)
	}

	return a
}

// ClampMag brings the magnitude into [min, max], keeping the direction.
// The null vector passes through untouched; a min of 0 disables the floor.
func (a Vector2) ClampMag(min float64, max float64) Vector2 {

	mSq := a.MagSq()

	if mSq > max*max {
		return a.SetMag(max)
	}

	if mSq < min*min {
		return a.SetMag(min)
	}

	return a
}

// Lerp interpolates linearly towards b; t=0 keeps a, t=1 lands on b.
func (a Vector2) Lerp(b Vector2, t float64) Vector2 {
	return a.Add(b.Sub(a).MultScalar(t))
}

func (a Vector2) SetAngle(radians float64) Vector2 {
	mag := a.Mag()
	a.x = math.Sin(radians) * mag
	a.y = math.Cos(radians) * mag

	return a
}

func (a Vector2) Angle() float64 {
	if a.x == 0 && a.y == 0 {
		return 0
	}

	angle := math.Atan2(a.y, a.x)

	// Quart de tour à gauche
	angle = math.Pi/2.0 - angle

	if angle < 0 {
		angle += 2 * math.Pi
	}

	return angle
}

// Rotate turns the vector by the given angle, clockwise positive (same
// convention as Angle); the magnitude is preserved.
func (a Vector2) Rotate(radians float64) Vector2 {
	cos := math.Cos(radians)
	sin := math.Sin(radians)

	return MakeVector2(
		a.x*cos+a.y*sin,
		a.y*cos-a.x*sin,
	)
}

// SignedAngleWith measures the rotation from a to b, in (-π, π]; positive
// means b lies clockwise of a.
func (a Vector2) SignedAngleWith(b Vector2) float64 {
	return math.Atan2(b.Cross(a), a.Dot(b))
}

func (a Vector2) DistanceTo(b Vector2) float64 {
	return b.Sub(a).Mag()
}

func (a Vector2) Cross(v Vector2) float64 {
	return a.x*v.y - a.y*v.x
}

func (a Vector2) Dot(v Vector2) float64 {
	return a.x*v.x + a.y*v.y
}

func (a Vector2) IsNull() bool {
	return isZero(a.x) && isZero(a.y)
}

func (a Vector2) Equals(b Vector2) bool {
	return b.Sub(a).IsNull()
}

func (a Vector2) String() string {
	return "<Vector2(" + number.FloatToStr(a.x, 5) + ", " + number.FloatToStr(a.y, 5) + ")>"
}

var epsilon float64 = 0.000001

func isZero(f float64) bool {
	return math.Abs(f) < epsilon
}
