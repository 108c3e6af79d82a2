package material

import (
	"math"

	"github.com/df07/go-pathtrace-shading/pkg/core"
)

// FresnelDielectric returns the unpolarized Fresnel reflectance at a dielectric boundary.
// cosi is the cosine between the travel direction and the outward normal: positive
// means the ray is leaving the interior, so the indices are swapped. Total internal
// reflection returns exactly 1.
func FresnelDielectric(cosi, etai, etat float64) float64 {
	if cosi > 0 {
		etai, etat = etat, etai
	}
	cosi = math.Abs(cosi)

	sint := (etai / etat) * math.Sqrt(math.Max(0, 1-cosi*cosi))
	if sint >= 1 {
		return 1
	}
	cost := math.Sqrt(math.Max(0, 1-sint*sint))

	rParl := ((etat * cosi) - (etai * cost)) / ((etat * cosi) + (etai * cost))
	rPerp := ((etai * cosi) - (etat * cost)) / ((etai * cosi) + (etat * cost))
	return (rParl*rParl + rPerp*rPerp) / 2
}

// Reflect mirrors v about the normal n: v - 2·dot(v,n)·n
func Reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit vector v through a surface with unit normal n facing against v,
// where eta is the ratio of incident to transmitted index. It reports false on
// total internal reflection.
func Refract(v, n core.Vec3, eta float64) (core.Vec3, bool) {
	cosi := n.Dot(v)
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.Vec3{}, false
	}
	return v.Multiply(eta).Subtract(n.Multiply(eta*cosi + math.Sqrt(k))), true
}
