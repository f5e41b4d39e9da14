package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := LookAt(Vec3{1, 2, 3}, Vec3{}, Vec3UnitY)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := Vec3{3, 10, -4}
	m := LookAt(eye, Vec3{}, Vec3UnitY)

	got := m.TransformVec3(eye)
	if !got.ApproxEqual(Vec3{}, 1e-4) {
		t.Errorf("LookAt should move the eye to the origin, got %v", got)
	}
}

func TestInverse(t *testing.T) {
	view := LookAt(Vec3{0, 10, 10}, Vec3{}, Vec3UnitY)
	proj := Perspective(float32(math.Pi/3), 16.0/9.0, 0.1, 100)
	vp := proj.Mul(view)

	product := vp.Mul(vp.Inverse())
	id := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(product[i]-id[i])) > 1e-3 {
			t.Errorf("M * M^-1 element %d: got %f, want %f", i, product[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	var zero Mat4
	if zero.Inverse() != Identity() {
		t.Error("singular matrix should invert to identity")
	}
}

func TestBasisColumns(t *testing.T) {
	x := Vec3{0, 0, -1}
	y := Vec3{0, 1, 0}
	z := Vec3{1, 0, 0}
	m := Basis(x, y, z)

	if m.Col(0) != x || m.Col(1) != y || m.Col(2) != z {
		t.Errorf("Basis columns = %v %v %v, want %v %v %v", m.Col(0), m.Col(1), m.Col(2), x, y, z)
	}
	if m[15] != 1 {
		t.Errorf("Basis [15] should be 1, got %f", m[15])
	}
}

func TestRotationRoundTrip(t *testing.T) {
	axes := []Vec3{
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
		Vec3{X: 1, Y: 1, Z: 1}.Normalize(),
	}
	angles := []float32{0.3, 1.2, math.Pi / 2, math.Pi * 0.95}

	for _, axis := range axes {
		for _, angle := range angles {
			q := QuatFromAxisAngle(axis, angle)
			got := q.ToMat4().Rotation()

			// q and -q encode the same rotation.
			if d := math.Abs(float64(got.Dot(q))); d < 0.999 {
				t.Errorf("Rotation() of axis %v angle %v: got %+v, want %+v", axis, angle, got, q)
			}
		}
	}
}
