package basicloss

import (
	"math"
	"testing"

	"github.com/trentholliday/p452/gas"
)

func TestPredict_AtP50_MultipathTermIsZero(t *testing.T) {
	var link gas.DefaultLink
	res, err := Predict(link, 100, 10, 10, 2, 288.15, 1013, 0, 50, 15, 20, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.LB0pDB-res.LBfsgDB) > 1e-12 {
		t.Errorf("at p=50, LB0p should equal LBfsg exactly, got diff %f", res.LB0pDB-res.LBfsgDB)
	}
}

func TestPredict_CorrectionNegativeBelow50(t *testing.T) {
	var link gas.DefaultLink
	res, err := Predict(link, 100, 10, 10, 2, 288.15, 1013, 0, 10, 15, 20, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.LB0pDB >= res.LBfsgDB {
		t.Errorf("multipath correction should be negative for p<50: LB0p=%f LBfsg=%f", res.LB0pDB, res.LBfsgDB)
	}
}

func TestMultipathFocusingCorrectionDB_ZeroAtFifty(t *testing.T) {
	if got := multipathFocusingCorrectionDB(50, 20, 20); math.Abs(got) > 1e-12 {
		t.Errorf("E_sp(50) should be 0, got %f", got)
	}
}

func TestFlatLand5km_MatchesValidationTarget(t *testing.T) {
	var link gas.DefaultLink
	// FlatLand5km: d=5km, f=2GHz, p=50, H=10m both ends, over sea.
	res, err := Predict(link, 5, 10, 10, 2, 288.15, 1013, 1.0, 50, 1, 2.5, 2.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.LBfsgDB-112.5) > 2.0 {
		t.Errorf("LBfsg = %f, want ~112.5 dB (FlatLand5km)", res.LBfsgDB)
	}
}
