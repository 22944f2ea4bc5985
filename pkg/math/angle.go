package math

import "github.com/chewxy/math32"

// Common angles in radians.
const (
	Pi     = math32.Pi
	HalfPi = math32.Pi / 2
)

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Spherical converts spherical coordinates to a cartesian offset.
// phi is the polar angle from +Y, theta the azimuth around Y measured from +Z.
func Spherical(radius, phi, theta float32) Vec3 {
	sinPhi := math32.Sin(phi)
	return Vec3{
		X: radius * sinPhi * math32.Sin(theta),
		Y: radius * math32.Cos(phi),
		Z: radius * sinPhi * math32.Cos(theta),
	}
}

// ToSpherical is the inverse of Spherical.
// A zero vector yields all-zero coordinates.
func ToSpherical(v Vec3) (radius, phi, theta float32) {
	radius = v.Length()
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math32.Atan2(v.X, v.Z)
	phi = math32.Acos(Clamp(v.Y/radius, -1, 1))
	return radius, phi, theta
}

// FacingEuler returns the Euler XYZ rotation that turns +Z toward dir.
// A zero dir yields no rotation.
func FacingEuler(dir Vec3) Vec3 {
	d := dir.Normalize()
	if d == (Vec3{}) {
		return Vec3{}
	}
	return V3(math32.Atan2(-d.Y, d.Z), math32.Asin(Clamp(d.X, -1, 1)), 0)
}
