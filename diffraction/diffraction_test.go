package diffraction

import (
	"math"
	"testing"

	"github.com/trentholliday/p452/path"
)

func flatPath(totalKm float64, n int) path.Path {
	pts := make([]path.ProfilePoint, n)
	step := totalKm / float64(n-1)
	for i := 0; i < n; i++ {
		pts[i] = path.ProfilePoint{DistanceKm: float64(i) * step, HeightASLm: 0, Zone: path.Inland}
	}
	p, err := path.NewPath(pts)
	if err != nil {
		panic(err)
	}
	return p
}

func TestPredict_RejectsOutOfRangeTimePercent(t *testing.T) {
	p := flatPath(50, 11)
	if _, err := Predict(p, 50, 50, 2, 8500, 0, 60, 10, Horizontal); err == nil {
		t.Errorf("expected an error for p=60")
	}
	if _, err := Predict(p, 50, 50, 2, 8500, 0, 0.0001, 10, Horizontal); err == nil {
		t.Errorf("expected an error for p=0.0001")
	}
}

func TestPredict_FlatLowPathHasNearZeroLoss(t *testing.T) {
	// A flat path with high antennas well clear of the horizon should incur
	// essentially no diffraction loss at the median radius.
	p := flatPath(30, 4)
	res, err := Predict(p, 100, 100, 2, 8500, 0, 50, 10, Horizontal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.LossMedianDB < 0 {
		t.Errorf("diffraction loss should not be negative, got %f", res.LossMedianDB)
	}
	if res.LossMedianDB > 5 {
		t.Errorf("a clear low-path geometry should have near-zero diffraction loss, got %f", res.LossMedianDB)
	}
}

func TestPredict_ObstructedPathIncursLoss(t *testing.T) {
	// A single tall obstruction midway should force substantial knife-edge
	// diffraction loss relative to the clear path above.
	pts := []path.ProfilePoint{
		{DistanceKm: 0, HeightASLm: 100, Zone: path.Inland},
		{DistanceKm: 10, HeightASLm: 300, Zone: path.Inland},
		{DistanceKm: 20, HeightASLm: 100, Zone: path.Inland},
		{DistanceKm: 30, HeightASLm: 100, Zone: path.Inland},
	}
	p, err := path.NewPath(pts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := Predict(p, 110, 110, 2, 8500, 0, 50, 10, Horizontal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.LossMedianDB <= 0 {
		t.Errorf("an obstructed path should incur positive diffraction loss, got %f", res.LossMedianDB)
	}
}

func TestPredict_AtFiftyPercentMedianEqualsP(t *testing.T) {
	p := flatPath(30, 4)
	res, err := Predict(p, 100, 100, 2, 8500, 0, 50, 10, Horizontal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.LossMedianDB-res.LossPDB) > 1e-12 {
		t.Errorf("at p=50, LossPDB should equal LossMedianDB exactly, got %f vs %f", res.LossPDB, res.LossMedianDB)
	}
}

func TestKnifeEdgeLossDB_ZeroAtThreshold(t *testing.T) {
	// At nu = -0.78 the knife-edge term is finite and about 0.004 dB, so it
	// joins the L_uc = 0 branch below the threshold without a jump.
	got := knifeEdgeLossDB(-0.78)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("knifeEdgeLossDB(-0.78) = %f, want a finite value", got)
	}
	if math.Abs(got) > 0.01 {
		t.Errorf("knifeEdgeLossDB(-0.78) = %f, want ~0 at the threshold", got)
	}
}

func TestFirstTermSphericalLossDB_IncreasesWithDistance(t *testing.T) {
	near := firstTermSphericalLossDB(2, 50, 50, 50, 8500, 0, Horizontal)
	far := firstTermSphericalLossDB(2, 200, 50, 50, 8500, 0, Horizontal)
	if far <= near {
		t.Errorf("first-term loss should increase with distance: near=%f far=%f", near, far)
	}
}

func TestFirstTermSphericalLossDB_PolarizationBranchesRun(t *testing.T) {
	for _, pol := range []Polarization{Horizontal, Vertical, Circular} {
		got := firstTermSphericalLossDB(2, 100, 50, 50, 8500, 0.5, pol)
		if math.IsNaN(got) {
			t.Errorf("polarization %v produced NaN", pol)
		}
	}
}
