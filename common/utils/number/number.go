package number

import (
	"math"
	"strconv"
	"time"
)

var epsilon float64 = 0.000001

func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

func DegreeToRadian(degree float64) float64 {
	return degree * (math.Pi / 180.0)
}

func RadianToDegree(radian float64) float64 {
	return radian * (180.0 / math.Pi)
}

func Clamp(f float64, min float64, max float64) float64 {
	if f < min {
		return min
	}

	if f > max {
		return max
	}

	return f
}

// Map re-maps a number from one range to another.
func Map(value float64, istart float64, istop float64, ostart float64, ostop float64) float64 {
	return ostart + (ostop-ostart)*((value-istart)/(istop-istart))
}

func ToFixed(val float64, places int) (newVal float64) {
	roundOn := 0.5
	var round float64
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	if div >= roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	newVal = round / pow
	return
}

func FloatToStr(f float64, places int) string {
	return strconv.FormatFloat(f, 'f', places, 64)
}

func DiffMs(b time.Time, a time.Time) float64 {
	return float64(b.UnixNano()-a.UnixNano()) / 1000000.0
}

func DurationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1000000.0
}
