package latmat

import "gonum.org/v1/gonum/floats/scalar"

// Mat3i is a 3×3 integer matrix in row-major [row][col] order. Lattice
// rotations live here: integer entries, determinant ±1.
type Mat3i [3][3]int

// Mat3 is a 3×3 real matrix (Cartesian rotations).
type Mat3 [3][3]float64

// Vec3 is a real 3-vector (wavevectors, fractional translations).
type Vec3 [3]float64

// Vec3i is an integer 3-vector (plane-wave G indices).
type Vec3i [3]int

// Identity returns the 3×3 integer identity.
func Identity() Mat3i {
	return Mat3i{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// IsIdentity reports whether m equals the identity exactly.
func (m Mat3i) IsIdentity() bool {
	return m == Identity()
}

// Det computes the determinant by cofactor expansion along the first row.
func (m Mat3i) Det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Mul returns the product m·o.
func (m Mat3i) Mul(o Mat3i) Mat3i {
	var out Mat3i
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}

	return out
}

// MulVec applies m to a real column vector.
func (m Mat3i) MulVec(v Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		out[i] = float64(m[i][0])*v[0] + float64(m[i][1])*v[1] + float64(m[i][2])*v[2]
	}

	return out
}

// MulVecI applies m to an integer column vector.
func (m Mat3i) MulVecI(v Vec3i) Vec3i {
	var out Vec3i
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}

	return out
}

// Transpose returns mᵀ.
func (m Mat3i) Transpose() Mat3i {
	var out Mat3i
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}

	return out
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v − w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Neg returns −v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Dot returns the scalar product v·w.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// DotI returns the scalar product of v with an integer vector.
func (v Vec3) DotI(w Vec3i) float64 {
	return v[0]*float64(w[0]) + v[1]*float64(w[1]) + v[2]*float64(w[2])
}

// AddI returns v + w with w integer.
func (v Vec3) AddI(w Vec3i) Vec3 {
	return Vec3{v[0] + float64(w[0]), v[1] + float64(w[1]), v[2] + float64(w[2])}
}

// ToVec3 widens an integer vector to floats.
func (v Vec3i) ToVec3() Vec3 {
	return Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// IsIntegral reports whether every component of v lies within tol of an
// integer. It is the "equal modulo a reciprocal lattice vector" test used
// throughout the little-group machinery.
func (v Vec3) IsIntegral(tol float64) bool {
	for i := 0; i < 3; i++ {
		r := v[i] - float64(nearestInt(v[i]))
		if !scalar.EqualWithinAbs(r, 0, tol) {
			return false
		}
	}

	return true
}

// Round returns the nearest integer vector and the L1 distance to it.
func (v Vec3) Round() (Vec3i, float64) {
	var out Vec3i
	var dist float64
	for i := 0; i < 3; i++ {
		out[i] = nearestInt(v[i])
		d := v[i] - float64(out[i])
		if d < 0 {
			d = -d
		}
		dist += d
	}

	return out, dist
}

// nearestInt rounds half away from zero, matching Fortran NINT semantics.
func nearestInt(x float64) int {
	if x >= 0 {
		return int(x + 0.5)
	}

	return int(x - 0.5)
}
