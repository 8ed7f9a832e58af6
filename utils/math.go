package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// BoneOrientation builds the world rotation of a bone whose Y axis runs
// along dir, twisted by roll around that axis.
func BoneOrientation(dir mgl32.Vec3, roll float32) mgl32.Quat {
	if dir.Len() < 1e-8 {
		return mgl32.QuatIdent()
	}
	d := dir.Normalize()
	swing := mgl32.QuatBetweenVectors(mgl32.Vec3{0, 1, 0}, d)
	return mgl32.QuatRotate(roll, d).Mul(swing).Normalize()
}

// result in radians
func QuatToEuler(q mgl32.Quat) (e mgl32.Vec3) {
	sinr_cosp := float64(2 * (q.W*q.X() + q.Y()*q.Z()))
	cosr_cosp := float64(1 - 2*(q.X()*q.X()+q.Y()*q.Y()))

	e[0] = float32(math.Atan2(sinr_cosp, cosr_cosp))

	sinp := float64(2 * (q.W*q.Y() - q.Z()*q.X()))
	if math.Abs(sinp) >= 1 {
		e[1] = math.Pi / 2
		if sinp < 0 {
			e[1] *= -1
		}
	} else {
		e[1] = float32(math.Asin(sinp))
	}

	siny_cosp := float64(2 * (q.W*q.Z() + q.X()*q.Y()))
	cosy_cosp := float64(1 - 2*(q.Y()*q.Y()+q.Z()*q.Z()))
	e[2] = float32(math.Atan2(siny_cosp, cosy_cosp))

	return e
}
