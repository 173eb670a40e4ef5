package globe

import "math"

// Vec3 is a point in 3D space. Surface samples are unit-length vectors
// with z along the polar axis; after rotation, y points at the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Scale returns the vector scaled by f.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

// Normalize returns the unit vector in the same direction. The zero
// vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	m := math.Sqrt(v.Dot(v))
	if m == 0 {
		return v
	}
	return v.Scale(1 / m)
}

// ToCartesian converts latitude/longitude in degrees to a point on the
// unit sphere. Longitude 0 faces the viewer (+y) with east to the
// right, so an unrotated globe shows the prime meridian centered.
func ToCartesian(lat, lon float64) Vec3 {
	latRad := lat * math.Pi / 180
	lonRad := lon * math.Pi / 180
	return Vec3{
		X: math.Cos(latRad) * math.Sin(lonRad),
		Y: math.Cos(latRad) * math.Cos(lonRad),
		Z: math.Sin(latRad),
	}
}

// ToLatLon converts a unit-length vector back to latitude/longitude in
// degrees. At the poles (x=y=0) longitude is 0 by convention.
func ToLatLon(v Vec3) (lat, lon float64) {
	z := v.Z
	if z > 1 {
		z = 1
	} else if z < -1 {
		z = -1
	}
	lat = math.Asin(z) * 180 / math.Pi
	if v.X == 0 && v.Y == 0 {
		return lat, 0
	}
	lon = math.Atan2(v.X, v.Y) * 180 / math.Pi
	return lat, lon
}

// Rotate spins a point about the polar axis by theta radians. The z
// coordinate is held fixed.
func Rotate(v Vec3, theta float64) Vec3 {
	sin, cos := math.Sincos(theta)
	return rotateZ(v, sin, cos)
}

// rotateZ is Rotate with the sine and cosine precomputed, for tight
// per-frame loops.
func rotateZ(v Vec3, sin, cos float64) Vec3 {
	return Vec3{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
		Z: v.Z,
	}
}
