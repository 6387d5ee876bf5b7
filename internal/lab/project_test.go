package lab

import "testing"

func TestProjectWhiteIsSingularity(t *testing.T) {
	alpha, beta, l, isWhite := Project(255, 255, 255)
	if !isWhite {
		t.Fatalf("Project(255,255,255): isWhite=false, want true")
	}
	if alpha != 0 || beta != 0 || l != 0 {
		t.Errorf("Project(255,255,255) = (%d,%d,%d), want (0,0,0)", alpha, beta, l)
	}
}

func TestProjectGraysAreNearOrigin(t *testing.T) {
	for _, v := range []uint8{0, 64, 128, 200} {
		alpha, beta, _, isWhite := Project(v, v, v)
		if isWhite {
			t.Fatalf("Project(%d,%d,%d): isWhite=true, want false", v, v, v)
		}
		if alpha != 0 || beta != 0 {
			t.Errorf("Project(%d,%d,%d) = (%d,%d), want (0,0)", v, v, v, alpha, beta)
		}
	}
}

func TestPhiWraps(t *testing.T) {
	cases := []struct{ alpha, beta, want int }{
		{1, 0, 0},
		{0, -1, 90},
		{-1, 0, 180},
		{0, 1, 270},
	}
	for _, c := range cases {
		got := Phi(c.alpha, c.beta)
		if got != c.want {
			t.Errorf("Phi(%d,%d) = %d, want %d", c.alpha, c.beta, got, c.want)
		}
	}
}

func TestProjectDistinctHuesSeparateInPhi(t *testing.T) {
	rAlpha, rBeta, _, _ := Project(255, 0, 0)
	gAlpha, gBeta, _, _ := Project(0, 255, 0)
	bAlpha, bBeta, _, _ := Project(0, 0, 255)

	rPhi := Phi(rAlpha, rBeta)
	gPhi := Phi(gAlpha, gBeta)
	bPhi := Phi(bAlpha, bBeta)

	if rPhi == gPhi || gPhi == bPhi || rPhi == bPhi {
		t.Errorf("primaries did not separate in phi: r=%d g=%d b=%d", rPhi, gPhi, bPhi)
	}
}
