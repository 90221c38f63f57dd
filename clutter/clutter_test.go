package clutter

import (
	"math"
	"testing"

	"github.com/trentholliday/p452/path"
)

func straightPath(totalKm float64, n int) path.Path {
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

func TestNominalHeightGainStage_NoClutterIsNoOp(t *testing.T) {
	p := straightPath(10, 11)
	var stage NominalHeightGainStage
	out, err := stage.Apply(2.0, p, 10, 10, NoClutter, NoClutter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TxClutterLossDB != 0 || out.RxClutterLossDB != 0 {
		t.Errorf("NoClutter should add no loss, got tx=%f rx=%f", out.TxClutterLossDB, out.RxClutterLossDB)
	}
	if out.EffectiveTxHeightM != 10 || out.EffectiveRxHeightM != 10 {
		t.Errorf("NoClutter should leave antenna heights unchanged")
	}
}

func TestNominalHeightGainStage_UrbanAddsLoss(t *testing.T) {
	p := straightPath(10, 11)
	var stage NominalHeightGainStage
	out, err := stage.Apply(2.0, p, 5, 5, Urban, Urban)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TxClutterLossDB <= 0 || out.RxClutterLossDB <= 0 {
		t.Errorf("Urban clutter with a 5m antenna below the 20m nominal height should add positive loss, got tx=%f rx=%f", out.TxClutterLossDB, out.RxClutterLossDB)
	}
	if out.EffectiveTxHeightM != 20 || out.EffectiveRxHeightM != 20 {
		t.Errorf("effective antenna height should be substituted with the Urban nominal height (20m), got tx=%f rx=%f", out.EffectiveTxHeightM, out.EffectiveRxHeightM)
	}
}

func TestNominalHeightGainStage_TallAntennaSkipsClutter(t *testing.T) {
	p := straightPath(10, 11)
	var stage NominalHeightGainStage
	out, err := stage.Apply(2.0, p, 50, 50, Urban, Urban)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TxClutterLossDB != 0 || out.RxClutterLossDB != 0 {
		t.Errorf("antenna taller than the nominal clutter height should add no loss")
	}
}

func TestNominalHeightGainStage_EffectivePathStartsAtZero(t *testing.T) {
	p := straightPath(10, 11)
	var stage NominalHeightGainStage
	out, err := stage.Apply(2.0, p, 5, 5, Urban, Urban)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(out.EffectivePath.First().DistanceKm) > 1e-12 {
		t.Errorf("effective sub-path should be re-zeroed at its first point, got %f", out.EffectivePath.First().DistanceKm)
	}
}
