package docimage

import "testing"

func TestNewWhiteFillsWhite(t *testing.T) {
	img := NewWhite(4, 3)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.At(x, y)
			if r != 255 || g != 255 || b != 255 {
				t.Fatalf("At(%d,%d) = (%d,%d,%d), want (255,255,255)", x, y, r, g, b)
			}
		}
	}
}

func TestSetAtRoundTrip(t *testing.T) {
	img := New(5, 5)
	img.Set(2, 3, 10, 20, 30)
	r, g, b := img.At(2, 3)
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("At(2,3) = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
	// Neighboring pixels must stay untouched.
	r, g, b = img.At(2, 2)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("At(2,2) = (%d,%d,%d), want (0,0,0)", r, g, b)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	img := New(2, 2)
	img.Set(0, 0, 1, 2, 3)
	clone := img.Clone()
	clone.Set(0, 0, 9, 9, 9)

	r, g, b := img.At(0, 0)
	if r != 1 || g != 2 || b != 3 {
		t.Errorf("original mutated by clone: At(0,0) = (%d,%d,%d), want (1,2,3)", r, g, b)
	}
}

func TestStdImageRoundTrip(t *testing.T) {
	img := New(3, 2)
	img.Set(1, 1, 5, 6, 7)
	out := FromStdImage(img.ToStdImage())
	if out.Width != img.Width || out.Height != img.Height {
		t.Fatalf("round-trip dims = (%d,%d), want (%d,%d)", out.Width, out.Height, img.Width, img.Height)
	}
	r, g, b := out.At(1, 1)
	if r != 5 || g != 6 || b != 7 {
		t.Errorf("round-trip At(1,1) = (%d,%d,%d), want (5,6,7)", r, g, b)
	}
}

func TestMaskCountNonZero(t *testing.T) {
	m := NewMask(3, 3)
	m.Set(0, 0, 255)
	m.Set(1, 1, 255)
	if n := m.CountNonZero(); n != 2 {
		t.Errorf("CountNonZero() = %d, want 2", n)
	}
}

func TestMaskStdImageRoundTripBinarizes(t *testing.T) {
	m := NewMask(2, 2)
	m.Set(0, 0, 255)
	out := MaskFromStdImage(m.ToStdImage())
	if out.At(0, 0) != 255 {
		t.Errorf("At(0,0) = %d, want 255", out.At(0, 0))
	}
	if out.At(1, 1) != 0 {
		t.Errorf("At(1,1) = %d, want 0", out.At(1, 1))
	}
}
