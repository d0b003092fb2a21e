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
	m := Translate(V3(1, 2, 3))
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(V3(5, 10, 15))

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
	if m.Translation() != V3(5, 10, 15) {
		t.Errorf("Translation() = %v", m.Translation())
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		p    Vec3
		want Vec3
	}{
		{"translate", Translate(V3(10, 20, 30)), V3(1, 2, 3), V3(11, 22, 33)},
		{"scale", Scale(V3(2, 2, 2)), V3(1, 2, 3), V3(2, 4, 6)},
		{"non-uniform scale", Scale(V3(4, 0.25, 0.25)), V3(1, 1, 1), V3(4, 0.25, 0.25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); got != tt.want {
				t.Errorf("TransformPoint: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(V3(10, 20, 30))
	if got := m.TransformDirection(UnitX); got != UnitX {
		t.Errorf("TransformDirection: got %v, want %v", got, UnitX)
	}
}

func TestCompose(t *testing.T) {
	// Scale first, then rotate 90 degrees about Y, then translate.
	m := Compose(V3(1, 0, 0), QuatFromAxisAngle(UnitY, float32(math.Pi/2)), V3(2, 1, 1))
	got := m.TransformPoint(UnitX)

	// (1,0,0) -> (2,0,0) -> (0,0,-2) -> (1,0,-2)
	want := V3(1, 0, -2)
	if abs(got.X-want.X) > 0.001 || abs(got.Y-want.Y) > 0.001 || abs(got.Z-want.Z) > 0.001 {
		t.Errorf("Compose: got %v, want %v", got, want)
	}
}

func TestInverse(t *testing.T) {
	m := Compose(V3(3, -2, 5), QuatFromAxisAngle(V3(0, 1, 1), 0.7), V3(4, 0.25, 0.25))
	product := m.Mul(m.Inverse())
	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(product[i]-id[i]) > 0.001 {
			t.Errorf("M * M^-1 element %d: got %f, want %f", i, product[i], id[i])
		}
	}
}

func TestNormalMatrixUndoesNonUniformScale(t *testing.T) {
	// A surface tilted 45 degrees in XY, squashed along Y.
	m := Scale(V3(1, 0.5, 1))
	tangent := m.TransformDirection(V3(1, -1, 0))
	normal := m.NormalMatrix().TransformDirection(V3(1, 1, 0))

	if d := tangent.Dot(normal); abs(d) > 0.0001 {
		t.Errorf("normal should stay perpendicular to the surface, dot = %f", d)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

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

func TestLookAt(t *testing.T) {
	eye := V3(50, 0, 0)
	m := LookAt(eye, Vec3{}, UnitY)

	// The eye maps to the view-space origin.
	got := m.TransformPoint(eye)
	if got.Length() > 0.001 {
		t.Errorf("LookAt should map eye to origin, got %v", got)
	}
	// The target sits straight ahead on -Z.
	target := m.TransformPoint(Vec3{})
	if abs(target.Z+50) > 0.001 || abs(target.X) > 0.001 || abs(target.Y) > 0.001 {
		t.Errorf("LookAt target: got %v, want (0, 0, -50)", target)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestRadians(t *testing.T) {
	if got := Radians(180); abs(got-3.1415927) > 1e-6 {
		t.Errorf("Radians(180) = %v", got)
	}
	if got := Radians(90); abs(got-1.5707964) > 1e-6 {
		t.Errorf("Radians(90) = %v", got)
	}
}
